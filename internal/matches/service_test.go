package matches

import (
	"context"
	"errors"
	"testing"

	"careervault-backend/internal/scoring"
	"careervault-backend/internal/usage"
)

func newTestService() *Service {
	return &Service{
		Repo:  NewMemoryRepo(),
		Usage: usage.NewService(),
	}
}

func TestScoreResumeRejectsEmptyContent(t *testing.T) {
	svc := newTestService()

	_, err := svc.ScoreResume(context.Background(), "guest:abc", ScoreInput{Content: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestScoreResumePersistsAndConsumesQuota(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	outcome, err := svc.ScoreResume(ctx, "guest:abc", ScoreInput{
		JobTitle: "Backend Engineer",
		Content:  "Shipped Python services on AWS with measurable latency wins.",
		Decisions: []scoring.KeywordDecision{
			{Keyword: "python", Decision: scoring.DecisionAdd},
		},
	})
	if err != nil {
		t.Fatalf("ScoreResume: %v", err)
	}
	if outcome.Record.ID == "" {
		t.Fatal("expected a generated record id")
	}
	if outcome.Record.Score != outcome.Breakdown.Score {
		t.Fatalf("record score %d diverges from breakdown %d", outcome.Record.Score, outcome.Breakdown.Score)
	}

	stored, err := svc.Get(ctx, "guest:abc", outcome.Record.ID)
	if err != nil {
		t.Fatalf("Get persisted record: %v", err)
	}
	if stored.JobTitle != "Backend Engineer" {
		t.Fatalf("unexpected stored job title %q", stored.JobTitle)
	}

	u, err := svc.Usage.Get(ctx, "guest:abc")
	if err != nil {
		t.Fatalf("usage get: %v", err)
	}
	if u.Used != 1 {
		t.Fatalf("expected one consumed run, got %d", u.Used)
	}
}

func TestScoreResumeEnforcesQuota(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	input := ScoreInput{Content: "Python engineer"}
	u, err := svc.Usage.Get(ctx, "guest:limited")
	if err != nil {
		t.Fatalf("usage get: %v", err)
	}
	for i := 0; i < u.Limit; i++ {
		if _, err := svc.ScoreResume(ctx, "guest:limited", input); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	_, err = svc.ScoreResume(ctx, "guest:limited", input)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded after %d runs, got %v", u.Limit, err)
	}
}

func TestScoreResumeOtherUsersUnaffected(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.ScoreResume(ctx, "guest:a", ScoreInput{Content: "Go developer"}); err != nil {
		t.Fatalf("ScoreResume: %v", err)
	}

	scores, err := svc.List(ctx, "guest:b", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("user b should have no history, got %d", len(scores))
	}
}
