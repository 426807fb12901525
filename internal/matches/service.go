package matches

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"careervault-backend/internal/scoring"
	"careervault-backend/internal/scoring/quality"
	"careervault-backend/internal/shared/metrics"
	"careervault-backend/internal/usage"
)

// ScoreInput carries everything needed for one deterministic scoring run.
type ScoreInput struct {
	JobTitle     string
	Content      string
	Decisions    []scoring.KeywordDecision
	Requirements []scoring.JDRequirement
	Evidence     []scoring.EvidenceClaim
}

// ScoreOutcome pairs the persisted record with the full breakdown.
type ScoreOutcome struct {
	Record    MatchScore
	Breakdown scoring.ScoreBreakdown
}

// Service contains business logic for match scoring.
type Service struct {
	Repo    Repo
	Usage   *usage.Service
	Quality *quality.Scorer
}

// ScoreResume runs the deterministic calculator and human-voice heuristic
// over the input, persists the result, and consumes one unit of the user's
// scoring quota.
func (s *Service) ScoreResume(ctx context.Context, userID string, input ScoreInput) (ScoreOutcome, error) {
	if strings.TrimSpace(input.Content) == "" {
		return ScoreOutcome{}, ErrInvalidInput
	}

	if s.Usage != nil {
		ok, _, err := s.Usage.CanConsume(ctx, userID, 1)
		if err != nil {
			return ScoreOutcome{}, err
		}
		if !ok {
			return ScoreOutcome{}, ErrLimitExceeded
		}
	}

	started := time.Now()
	breakdown := scoring.CalculateResumeScore(input.Decisions, input.Requirements, input.Evidence, input.Content)
	voice := scoring.HumanVoiceScore(input.Content)
	metrics.ObserveScoreDurationMs(float64(time.Since(started)) / float64(time.Millisecond))

	record := MatchScore{
		ID:                uuid.NewString(),
		UserID:            userID,
		JobTitle:          strings.TrimSpace(input.JobTitle),
		Score:             breakdown.Score,
		KeywordScore:      breakdown.Breakdown.KeywordScore,
		RequirementScore:  breakdown.Breakdown.RequirementScore,
		EvidenceScore:     breakdown.Breakdown.EvidenceScore,
		VoiceScore:        voice,
		MatchedKeywords:   breakdown.Details.MatchedKeywords,
		TotalKeywords:     breakdown.Details.TotalKeywords,
		MetRequirements:   breakdown.Details.MetRequirements,
		TotalRequirements: breakdown.Details.TotalRequirements,
		VerifiedClaims:    breakdown.Details.VerifiedClaims,
		TotalClaims:       breakdown.Details.TotalClaims,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		metrics.IncScoreRunFailed()
		return ScoreOutcome{}, err
	}

	if s.Usage != nil {
		if _, err := s.Usage.Consume(ctx, userID, 1); err != nil {
			return ScoreOutcome{}, err
		}
	}

	metrics.IncScoreRun()
	return ScoreOutcome{Record: record, Breakdown: breakdown}, nil
}

// KeywordComparison is the outcome of extracting and matching keywords
// between a job description and a resume.
type KeywordComparison struct {
	JobKeywords    scoring.KeywordSet
	ResumeKeywords scoring.KeywordSet
	Match          scoring.KeywordMatch
}

// MatchKeywords extracts keyword sets from both texts and compares them.
func (s *Service) MatchKeywords(jobDescription, resumeText string) KeywordComparison {
	jd := scoring.Extract(jobDescription)
	resume := scoring.Extract(resumeText)
	return KeywordComparison{
		JobKeywords:    jd,
		ResumeKeywords: resume,
		Match:          scoring.MatchKeywords(jd, resume),
	}
}

// SectionQuality evaluates one section through the quality orchestrator.
// The orchestrator owns caching and the zero-confidence fallback, so this
// never returns an error for capability failures.
func (s *Service) SectionQuality(ctx context.Context, input quality.Input) (quality.Result, error) {
	if strings.TrimSpace(input.Content) == "" {
		return quality.Result{}, ErrInvalidInput
	}
	return s.Quality.Score(ctx, input), nil
}

// Compare recommends one of two scored resume variants.
func (s *Service) Compare(idealScore, personalizedScore, resumeStrength int) scoring.Comparison {
	return scoring.CompareVersions(idealScore, personalizedScore, resumeStrength)
}

// Get returns one score run scoped to the user.
func (s *Service) Get(ctx context.Context, userID, id string) (MatchScore, error) {
	if strings.TrimSpace(id) == "" {
		return MatchScore{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// List returns score history for the user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]MatchScore, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
