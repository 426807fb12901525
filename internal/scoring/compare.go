package scoring

// Version recommendations.
const (
	RecommendIdeal        = "ideal"
	RecommendPersonalized = "personalized"
	RecommendBlend        = "blend"
)

// Comparator thresholds. These are part of the behavioral contract and must
// not drift between releases.
const (
	minResumeStrength  = 40
	recommendThreshold = 10
)

// Comparison is the outcome of comparing two scored resume variants.
type Comparison struct {
	Recommendation  string `json:"recommendation"`
	Reason          string `json:"reason"`
	ScoreDifference int    `json:"scoreDifference"`
}

// CompareVersions picks which of two scored variants to recommend. A weak
// source resume (strength below minResumeStrength) always falls back to the
// ideal version: there is not enough real data to trust personalization.
func CompareVersions(idealScore, personalizedScore, resumeStrength int) Comparison {
	diff := personalizedScore - idealScore

	switch {
	case resumeStrength < minResumeStrength:
		return Comparison{
			Recommendation:  RecommendIdeal,
			Reason:          "Resume strength is too low to personalize reliably; use the ideal version as a foundation.",
			ScoreDifference: diff,
		}
	case diff > recommendThreshold:
		return Comparison{
			Recommendation:  RecommendPersonalized,
			Reason:          "The personalized version scores meaningfully higher against this job.",
			ScoreDifference: diff,
		}
	case diff < -recommendThreshold:
		return Comparison{
			Recommendation:  RecommendIdeal,
			Reason:          "The ideal version scores meaningfully higher against this job.",
			ScoreDifference: diff,
		}
	default:
		return Comparison{
			Recommendation:  RecommendBlend,
			Reason:          "Both versions score similarly; blend the strongest content from each.",
			ScoreDifference: diff,
		}
	}
}
