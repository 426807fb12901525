package main

// Offline scoring tool. Runs the deterministic calculators against local
// files without the HTTP API:
//   go run ./cmd/scorecli keywords --resume resume.pdf --job job.txt
//   go run ./cmd/scorecli score --input score_input.json
//   go run ./cmd/scorecli voice --resume resume.txt
//   go run ./cmd/scorecli compare --ideal 78 --personalized 85 --strength 60

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"careervault-backend/internal/extract"
	"careervault-backend/internal/scoring"
)

func main() {
	root := &cobra.Command{
		Use:           "scorecli",
		Short:         "Score resumes against job descriptions from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newKeywordsCmd(), newScoreCmd(), newVoiceCmd(), newCompareCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newKeywordsCmd() *cobra.Command {
	var resumePath, jobPath string

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Extract keywords from a job description and match them against a resume",
		RunE: func(cmd *cobra.Command, args []string) error {
			resume, err := readText(cmd.Context(), resumePath)
			if err != nil {
				return err
			}
			job, err := readText(cmd.Context(), jobPath)
			if err != nil {
				return err
			}

			jobKeywords := scoring.Extract(job)
			resumeKeywords := scoring.Extract(resume)
			result := scoring.MatchKeywords(jobKeywords, resumeKeywords)
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&resumePath, "resume", "", "path to the resume file (pdf, docx, or txt)")
	cmd.Flags().StringVar(&jobPath, "job", "", "path to the job description file")
	_ = cmd.MarkFlagRequired("resume")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}

// scoreInput is the JSON shape accepted by the score subcommand.
type scoreInput struct {
	ResumePath       string                    `json:"resumePath"`
	ResumeContent    string                    `json:"resumeContent"`
	KeywordDecisions []scoring.KeywordDecision `json:"keywordDecisions"`
	Requirements     []scoring.JDRequirement   `json:"requirements"`
	Evidence         []scoring.EvidenceClaim   `json:"evidence"`
}

func newScoreCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Run the deterministic resume score from a JSON input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(inputPath)
			if err != nil {
				return err
			}
			var in scoreInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return fmt.Errorf("parse %s: %w", inputPath, err)
			}

			content := in.ResumeContent
			if content == "" && in.ResumePath != "" {
				content, err = readText(cmd.Context(), in.ResumePath)
				if err != nil {
					return err
				}
			}

			breakdown := scoring.CalculateResumeScore(in.KeywordDecisions, in.Requirements, in.Evidence, content)
			return printJSON(breakdown)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to the JSON scoring input")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newVoiceCmd() *cobra.Command {
	var resumePath string

	cmd := &cobra.Command{
		Use:   "voice",
		Short: "Score how human a resume reads",
		RunE: func(cmd *cobra.Command, args []string) error {
			resume, err := readText(cmd.Context(), resumePath)
			if err != nil {
				return err
			}
			return printJSON(map[string]int{"voiceScore": scoring.HumanVoiceScore(resume)})
		},
	}

	cmd.Flags().StringVar(&resumePath, "resume", "", "path to the resume file (pdf, docx, or txt)")
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var ideal, personalized, strength int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Recommend which resume version to send",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(scoring.CompareVersions(ideal, personalized, strength))
		},
	}

	cmd.Flags().IntVar(&ideal, "ideal", 0, "score of the ideal version")
	cmd.Flags().IntVar(&personalized, "personalized", 0, "score of the personalized version")
	cmd.Flags().IntVar(&strength, "strength", 0, "overall resume strength")
	return cmd
}

func readText(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := extract.TextFromBytes(ctx, data, "", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return text, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
