package quality

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

type fakeAnalyzer struct {
	calls  int
	result Result
	err    error
}

func (f *fakeAnalyzer) AnalyzeSection(ctx context.Context, input Input) (Result, error) {
	f.calls++
	if f.err != nil {
		return Result{}, f.err
	}
	return f.result, nil
}

func testInput() Input {
	return Input{
		Content:      "Led migration of the billing platform to event-driven processing.",
		ATSKeywords:  []string{"Kafka", "Go"},
		Requirements: []string{"event-driven architecture"},
		JobAnalysis:  JobAnalysis{Seniority: "senior", JobTitle: "Backend Engineer"},
	}
}

func TestScoreCachesWithinTTL(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }

	analyzer := &fakeAnalyzer{result: Result{OverallScore: 82, CompetitiveStrength: 4}}
	scorer := NewScorer(analyzer, DefaultTTL, clock)

	first := scorer.Score(context.Background(), testInput())
	second := scorer.Score(context.Background(), testInput())

	if analyzer.calls != 1 {
		t.Fatalf("analyzer called %d times, want 1 (second call should hit cache)", analyzer.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached result differs:\n%+v\n%+v", first, second)
	}

	// Advance past the TTL; the entry is lazily evicted and recomputed.
	current = current.Add(DefaultTTL + time.Minute)
	scorer.Score(context.Background(), testInput())
	if analyzer.calls != 2 {
		t.Fatalf("analyzer called %d times after TTL expiry, want 2", analyzer.calls)
	}
}

func TestScoreDistinctInputsDistinctEntries(t *testing.T) {
	analyzer := &fakeAnalyzer{result: Result{OverallScore: 70, CompetitiveStrength: 3}}
	scorer := NewScorer(analyzer, 0, nil)

	in := testInput()
	scorer.Score(context.Background(), in)

	other := testInput()
	other.Content = "Completely different section content."
	scorer.Score(context.Background(), other)

	if analyzer.calls != 2 {
		t.Fatalf("analyzer called %d times, want 2 for distinct inputs", analyzer.calls)
	}
}

func TestScoreFallbackNeverFabricates(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("upstream exploded")}
	scorer := NewScorer(analyzer, 0, nil)

	result := scorer.Score(context.Background(), testInput())

	if result.OverallScore != 0 {
		t.Fatalf("overallScore = %d, want 0 on failure", result.OverallScore)
	}
	if result.ATSMatchPercentage != 0 || result.RequirementsCoverage != 0 {
		t.Fatalf("expected zeroed percentages, got %+v", result)
	}
	if result.CompetitiveStrength != 1 {
		t.Fatalf("competitiveStrength = %d, want floor of 1", result.CompetitiveStrength)
	}
	if len(result.Strengths) != 0 {
		t.Fatalf("expected no strengths, got %v", result.Strengths)
	}
	if len(result.Weaknesses) != 1 {
		t.Fatalf("expected one weakness explaining the failure, got %v", result.Weaknesses)
	}
}

func TestScoreFailureNotCached(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("transient")}
	scorer := NewScorer(analyzer, 0, nil)

	scorer.Score(context.Background(), testInput())

	// The capability recovers; the next call must reach it again.
	analyzer.err = nil
	analyzer.result = Result{OverallScore: 64, CompetitiveStrength: 3}
	result := scorer.Score(context.Background(), testInput())

	if analyzer.calls != 2 {
		t.Fatalf("analyzer called %d times, want 2 (failures are not cached)", analyzer.calls)
	}
	if result.OverallScore != 64 {
		t.Fatalf("overallScore = %d, want 64 after recovery", result.OverallScore)
	}
}

func TestFailureReasonClassification(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		fragment string
	}{
		{name: "timeout", err: errors.New("context deadline exceeded"), fragment: "timed out"},
		{name: "rate_limited", err: errors.New("openai error: 429 Too Many Requests"), fragment: "rate limited"},
		{name: "payment", err: errors.New("status 402: payment required"), fragment: "billing"},
		{name: "generic", err: errors.New("connection reset by peer"), fragment: "unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reason := failureReason(tc.err)
			if !containsFold(reason, tc.fragment) {
				t.Fatalf("reason %q does not mention %q", reason, tc.fragment)
			}
		})
	}
}

func TestNormalizeResultClamps(t *testing.T) {
	r := normalizeResult(Result{
		OverallScore:         130,
		ATSMatchPercentage:   -5,
		RequirementsCoverage: 100,
		CompetitiveStrength:  0,
	})
	if r.OverallScore != 100 || r.ATSMatchPercentage != 0 || r.CompetitiveStrength != 1 {
		t.Fatalf("clamping failed: %+v", r)
	}
	if r.Strengths == nil || r.Weaknesses == nil || r.Keywords.Matched == nil || r.Keywords.Missing == nil {
		t.Fatalf("nil slices not normalized: %+v", r)
	}
}

func containsFold(s, fragment string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(fragment))
}
