package scoring

import "regexp"

// Human-voice scoring constants.
const (
	voiceBase         = 100
	voiceNeutral      = 50
	voiceMinLength    = 50
	clichePenalty     = 5
	specificityReward = 3
)

// clichePatterns are phrases characteristic of templated, AI-generated
// resume copy. Each occurrence costs clichePenalty points.
var clichePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bleverag(?:e|es|ed|ing)\b`),
	regexp.MustCompile(`(?i)\bsynerg(?:y|ies|istic)\b`),
	regexp.MustCompile(`(?i)\bseamless(?:ly)?\b`),
	regexp.MustCompile(`(?i)\bresults?-driven\b`),
	regexp.MustCompile(`(?i)\bdynamic\b`),
	regexp.MustCompile(`(?i)\bpassionate\b`),
	regexp.MustCompile(`(?i)\bproven track record\b`),
	regexp.MustCompile(`(?i)\bthink(?:ing)? outside the box\b`),
	regexp.MustCompile(`(?i)\bgo-getter\b`),
	regexp.MustCompile(`(?i)\bcutting-edge\b`),
	regexp.MustCompile(`(?i)\bdetail-oriented\b`),
}

// specificityPatterns reward concrete, quantified language. Each occurrence
// earns specificityReward points.
var specificityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d[\d,]*(?:\.\d+)?\s*(?:[kKmMbB])?`),
	regexp.MustCompile(`\b\d+(?:\.\d+)?%`),
	regexp.MustCompile(`(?i)\bteam of \d+\b`),
	regexp.MustCompile(`(?i)\b(?:increased|decreased|reduced|grew|improved|saved|generated|delivered)\b[^.\n]*?\d`),
}

// HumanVoiceScore estimates how non-templated a piece of text sounds.
// Texts under voiceMinLength characters carry too little signal and
// short-circuit to a neutral score. Deterministic, pure, no I/O.
func HumanVoiceScore(content string) int {
	if len(content) < voiceMinLength {
		return voiceNeutral
	}

	score := voiceBase
	for _, re := range clichePatterns {
		score -= clichePenalty * len(re.FindAllStringIndex(content, -1))
	}
	for _, re := range specificityPatterns {
		score += specificityReward * len(re.FindAllStringIndex(content, -1))
	}
	return clampScore(score)
}
