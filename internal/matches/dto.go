package matches

import (
	"time"

	"careervault-backend/internal/scoring"
)

type keywordDecisionDTO struct {
	Keyword  string `json:"keyword"`
	Decision string `json:"decision"`
}

type requirementDTO struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type evidenceDTO struct {
	ID         string `json:"id,omitempty"`
	ClaimText  string `json:"claimText"`
	Confidence string `json:"confidence"`
	IsActive   bool   `json:"isActive"`
	Source     string `json:"source,omitempty"`
}

type scoreRequest struct {
	JobTitle         string               `json:"jobTitle"`
	Content          string               `json:"content"`
	DocumentID       string               `json:"documentId"`
	KeywordDecisions []keywordDecisionDTO `json:"keywordDecisions"`
	Requirements     []requirementDTO     `json:"requirements"`
	Evidence         []evidenceDTO        `json:"evidence"`
}

func (r scoreRequest) toInput() ScoreInput {
	decisions := make([]scoring.KeywordDecision, 0, len(r.KeywordDecisions))
	for _, d := range r.KeywordDecisions {
		decisions = append(decisions, scoring.KeywordDecision{Keyword: d.Keyword, Decision: d.Decision})
	}
	requirements := make([]scoring.JDRequirement, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		requirements = append(requirements, scoring.JDRequirement{Text: req.Text, Category: req.Category})
	}
	evidence := make([]scoring.EvidenceClaim, 0, len(r.Evidence))
	for _, e := range r.Evidence {
		evidence = append(evidence, scoring.EvidenceClaim{
			ID:         e.ID,
			ClaimText:  e.ClaimText,
			Confidence: e.Confidence,
			IsActive:   e.IsActive,
			Source:     e.Source,
		})
	}
	return ScoreInput{
		JobTitle:     r.JobTitle,
		Content:      r.Content,
		Decisions:    decisions,
		Requirements: requirements,
		Evidence:     evidence,
	}
}

type scoreResponse struct {
	ID              string               `json:"id"`
	JobTitle        string               `json:"jobTitle,omitempty"`
	Score           int                  `json:"score"`
	Breakdown       scoring.SubScores    `json:"breakdown"`
	Details         scoring.ScoreDetails `json:"details"`
	HumanVoiceScore int                  `json:"humanVoiceScore"`
	CreatedAt       time.Time            `json:"createdAt"`
}

func toScoreResponse(outcome ScoreOutcome) scoreResponse {
	return scoreResponse{
		ID:              outcome.Record.ID,
		JobTitle:        outcome.Record.JobTitle,
		Score:           outcome.Record.Score,
		Breakdown:       outcome.Breakdown.Breakdown,
		Details:         outcome.Breakdown.Details,
		HumanVoiceScore: outcome.Record.VoiceScore,
		CreatedAt:       outcome.Record.CreatedAt,
	}
}

type keywordsRequest struct {
	JobDescription string `json:"jobDescription"`
	ResumeText     string `json:"resumeText"`
}

type keywordsResponse struct {
	JobKeywords    scoring.KeywordSet   `json:"jobKeywords"`
	ResumeKeywords scoring.KeywordSet   `json:"resumeKeywords"`
	Match          scoring.KeywordMatch `json:"match"`
}

type qualityRequest struct {
	Content      string   `json:"content"`
	ATSKeywords  []string `json:"atsKeywords"`
	Requirements []string `json:"requirements"`
	Seniority    string   `json:"seniority"`
	Industry     string   `json:"industry"`
	JobTitle     string   `json:"jobTitle"`
}

type compareRequest struct {
	IdealScore        int `json:"idealScore"`
	PersonalizedScore int `json:"personalizedScore"`
	ResumeStrength    int `json:"resumeStrength"`
}
