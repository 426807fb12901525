package openai

import (
	"fmt"
	"strings"

	"careervault-backend/internal/llm"
)

const sectionSystemPrompt = `You are an expert resume reviewer and former technical recruiter.
Evaluate the given resume section against the job requirements and ATS keywords.
Respond with a single JSON object and nothing else, using exactly these fields:
{
  "overallScore": <integer 0-100>,
  "atsMatchPercentage": <integer 0-100>,
  "requirementsCoverage": <integer 0-100>,
  "competitiveStrength": <integer 1-5>,
  "strengths": [<strings>],
  "weaknesses": [<strings>],
  "keywordsMatched": [<strings>],
  "keywordsMissing": [<strings>]
}`

// BuildSectionPrompt assembles the chat messages for a section quality
// evaluation.
func BuildSectionPrompt(input llm.SectionInput) []chatMessage {
	var b strings.Builder

	if input.JobTitle != "" || input.Seniority != "" || input.Industry != "" {
		b.WriteString("Job context:\n")
		if input.JobTitle != "" {
			fmt.Fprintf(&b, "- Title: %s\n", input.JobTitle)
		}
		if input.Seniority != "" {
			fmt.Fprintf(&b, "- Seniority: %s\n", input.Seniority)
		}
		if input.Industry != "" {
			fmt.Fprintf(&b, "- Industry: %s\n", input.Industry)
		}
		b.WriteString("\n")
	}

	if len(input.Requirements) > 0 {
		b.WriteString("Job requirements:\n")
		for _, req := range input.Requirements {
			fmt.Fprintf(&b, "- %s\n", req)
		}
		b.WriteString("\n")
	}

	if len(input.ATSKeywords) > 0 {
		fmt.Fprintf(&b, "ATS keywords: %s\n\n", strings.Join(input.ATSKeywords, ", "))
	}

	b.WriteString("Resume section:\n")
	b.WriteString(input.Content)

	return []chatMessage{
		{Role: "system", Content: sectionSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// buildRepairPrompt asks the model to fix its own malformed JSON output.
func buildRepairPrompt(raw []byte) []chatMessage {
	return []chatMessage{
		{Role: "system", Content: "You repair malformed JSON. Respond with the corrected JSON object only."},
		{Role: "user", Content: "Fix this JSON so it parses, preserving all values:\n" + string(raw)},
	}
}
