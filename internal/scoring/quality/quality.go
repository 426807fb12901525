// Package quality composes keyword match and requirement coverage with an
// external AI section-quality capability, behind a bounded TTL cache. The AI
// call is the only non-deterministic part of the scoring engine; everything
// here degrades to a documented zero-confidence fallback when it fails.
package quality

import (
	"context"
	"sync"
	"time"

	"careervault-backend/internal/shared/metrics"
	"careervault-backend/internal/shared/telemetry"
	"careervault-backend/internal/shared/util"
)

// DefaultTTL is how long a computed quality result stays valid in the cache.
const DefaultTTL = 30 * time.Minute

// JobAnalysis carries optional job context forwarded to the AI capability.
type JobAnalysis struct {
	Seniority string `json:"seniority,omitempty"`
	Industry  string `json:"industry,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
}

// Input identifies one section-quality evaluation. The cache key is derived
// from every field, so two equal inputs share a cached result.
type Input struct {
	Content      string      `json:"content"`
	ATSKeywords  []string    `json:"atsKeywords"`
	Requirements []string    `json:"requirements"`
	JobAnalysis  JobAnalysis `json:"jobAnalysis"`
}

// ResultKeywords lists matched and missing ATS keywords as reported by the
// AI capability.
type ResultKeywords struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Result is a section quality evaluation. Numeric fields are 0-100 except
// CompetitiveStrength, a 1-5 star rating.
type Result struct {
	OverallScore         int            `json:"overallScore"`
	ATSMatchPercentage   int            `json:"atsMatchPercentage"`
	RequirementsCoverage int            `json:"requirementsCoverage"`
	CompetitiveStrength  int            `json:"competitiveStrength"`
	Strengths            []string       `json:"strengths"`
	Weaknesses           []string       `json:"weaknesses"`
	Keywords             ResultKeywords `json:"keywords"`
}

// Analyzer is the external AI capability that evaluates section quality.
// Implementations own their transport, timeouts and retries; the scorer only
// consumes the structured result or error.
type Analyzer interface {
	AnalyzeSection(ctx context.Context, input Input) (Result, error)
}

type cacheEntry struct {
	value     Result
	expiresAt time.Time
}

// Scorer evaluates section quality through an Analyzer with a TTL cache.
// Construct one per process (or per test); the cache is owned by the
// instance, not the package.
type Scorer struct {
	analyzer Analyzer
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewScorer builds a Scorer. A zero ttl falls back to DefaultTTL and a nil
// now falls back to time.Now.
func NewScorer(analyzer Analyzer, ttl time.Duration, now func() time.Time) *Scorer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Scorer{
		analyzer: analyzer,
		ttl:      ttl,
		now:      now,
		cache:    make(map[string]cacheEntry),
	}
}

// Score returns the quality evaluation for the input. Cache hits inside the
// TTL are returned verbatim with no recomputation. On a miss the Analyzer is
// invoked; failures never propagate, they become the zero-confidence
// fallback so a 0 always reads as "could not evaluate", not "evaluated as
// poor". Concurrent calls with the same key are not de-duplicated.
func (s *Scorer) Score(ctx context.Context, input Input) Result {
	key, err := util.HashCanonical(input)
	if err != nil {
		// Input is plain strings and slices; this cannot realistically fail,
		// but an unkeyable input just skips the cache.
		key = ""
	}

	if key != "" {
		if cached, ok := s.lookup(key); ok {
			metrics.IncQualityCacheHit()
			return cached
		}
		metrics.IncQualityCacheMiss()
	}

	result, err := s.analyzer.AnalyzeSection(ctx, input)
	if err != nil {
		metrics.IncQualityAIFailure()
		telemetry.Warn("quality.analyzer_failed", map[string]any{"err": err.Error()})
		return Fallback(err)
	}
	result = normalizeResult(result)

	if key != "" {
		s.store(key, result)
	}
	return result
}

// lookup returns a live cached result and lazily evicts an expired one.
func (s *Scorer) lookup(key string) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[key]
	if !ok {
		return Result{}, false
	}
	if s.now().After(entry.expiresAt) {
		delete(s.cache, key)
		return Result{}, false
	}
	return entry.value, true
}

func (s *Scorer) store(key string, value Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{value: value, expiresAt: s.now().Add(s.ttl)}
}

// normalizeResult clamps numeric fields to their documented ranges and
// replaces nil slices so results serialize as [] rather than null.
func normalizeResult(r Result) Result {
	r.OverallScore = clamp(r.OverallScore, 0, 100)
	r.ATSMatchPercentage = clamp(r.ATSMatchPercentage, 0, 100)
	r.RequirementsCoverage = clamp(r.RequirementsCoverage, 0, 100)
	r.CompetitiveStrength = clamp(r.CompetitiveStrength, 1, 5)
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Weaknesses == nil {
		r.Weaknesses = []string{}
	}
	if r.Keywords.Matched == nil {
		r.Keywords.Matched = []string{}
	}
	if r.Keywords.Missing == nil {
		r.Keywords.Missing = []string{}
	}
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
