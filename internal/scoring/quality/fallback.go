package quality

import "strings"

// Fallback converts an Analyzer failure into the zero-confidence result:
// every score at its floor and a weakness naming why evaluation was not
// possible. Returning a fabricated plausible score here would be worse than
// returning nothing.
func Fallback(err error) Result {
	return Result{
		OverallScore:         0,
		ATSMatchPercentage:   0,
		RequirementsCoverage: 0,
		CompetitiveStrength:  1,
		Strengths:            []string{},
		Weaknesses:           []string{failureReason(err)},
		Keywords: ResultKeywords{
			Matched: []string{},
			Missing: []string{},
		},
	}
}

// failureReason classifies the error by message sniffing. Transports differ
// in how they surface status codes, so substring matching is the least bad
// common denominator.
func failureReason(err error) string {
	if err == nil {
		return "Quality analysis is unavailable right now. Try again shortly."
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "Quality analysis timed out before completing. Try again shortly."
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "rate-limit"):
		return "Quality analysis is rate limited. Wait a minute and try again."
	case strings.Contains(msg, "402") || strings.Contains(msg, "payment") || strings.Contains(msg, "billing"):
		return "Quality analysis is unavailable: the AI provider reported a billing problem."
	default:
		return "Quality analysis is unavailable right now. Try again shortly."
	}
}
