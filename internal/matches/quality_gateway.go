package matches

import (
	"context"
	"encoding/json"
	"fmt"

	"careervault-backend/internal/llm"
	"careervault-backend/internal/scoring/quality"
)

// SectionAnalyzer adapts an llm.Client to the quality.Analyzer capability.
// It shapes the payload and parses the structured response; transport and
// retries stay inside the client.
type SectionAnalyzer struct {
	Client llm.Client
}

// AnalyzeSection delegates to the LLM client and decodes its JSON evaluation.
func (a *SectionAnalyzer) AnalyzeSection(ctx context.Context, input quality.Input) (quality.Result, error) {
	raw, err := a.Client.ScoreSection(ctx, llm.SectionInput{
		Content:      input.Content,
		Requirements: input.Requirements,
		ATSKeywords:  input.ATSKeywords,
		Seniority:    input.JobAnalysis.Seniority,
		Industry:     input.JobAnalysis.Industry,
		JobTitle:     input.JobAnalysis.JobTitle,
	})
	if err != nil {
		return quality.Result{}, err
	}

	var wire struct {
		OverallScore         int      `json:"overallScore"`
		ATSMatchPercentage   int      `json:"atsMatchPercentage"`
		RequirementsCoverage int      `json:"requirementsCoverage"`
		CompetitiveStrength  int      `json:"competitiveStrength"`
		Strengths            []string `json:"strengths"`
		Weaknesses           []string `json:"weaknesses"`
		KeywordsMatched      []string `json:"keywordsMatched"`
		KeywordsMissing      []string `json:"keywordsMissing"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return quality.Result{}, fmt.Errorf("quality result parse: %w", err)
	}

	return quality.Result{
		OverallScore:         wire.OverallScore,
		ATSMatchPercentage:   wire.ATSMatchPercentage,
		RequirementsCoverage: wire.RequirementsCoverage,
		CompetitiveStrength:  wire.CompetitiveStrength,
		Strengths:            wire.Strengths,
		Weaknesses:           wire.Weaknesses,
		Keywords: quality.ResultKeywords{
			Matched: wire.KeywordsMatched,
			Missing: wire.KeywordsMissing,
		},
	}, nil
}
