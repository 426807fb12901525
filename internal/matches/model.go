package matches

import "time"

// MatchScore is one persisted resume/job scoring run.
type MatchScore struct {
	ID                string
	UserID            string
	JobTitle          string
	Score             int
	KeywordScore      int
	RequirementScore  int
	EvidenceScore     int
	VoiceScore        int
	MatchedKeywords   int
	TotalKeywords     int
	MetRequirements   int
	TotalRequirements int
	VerifiedClaims    int
	TotalClaims       int
	CreatedAt         time.Time
}
