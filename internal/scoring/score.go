package scoring

import (
	"math"
	"strings"
)

// Fixed component weights for the overall score.
const (
	weightKeywords     = 0.30
	weightRequirements = 0.50
	weightEvidence     = 0.20
)

// CalculateResumeScore combines keyword-decision coverage, weighted
// requirement coverage and evidence confidence into one bounded score.
// It is pure: inputs are never mutated and no I/O happens here.
func CalculateResumeScore(decisions []KeywordDecision, requirements []JDRequirement, evidence []EvidenceClaim, content string) ScoreBreakdown {
	normalized := Normalize(content)

	keywordScore, matched, totalKeywords := scoreKeywords(decisions, normalized)
	requirementScore, met, totalReqs := scoreRequirements(requirements, evidence, normalized)
	evidenceScore, verified := scoreEvidence(evidence)

	overall := int(math.Round(float64(keywordScore)*weightKeywords +
		float64(requirementScore)*weightRequirements +
		float64(evidenceScore)*weightEvidence))
	overall = clampScore(overall)

	return ScoreBreakdown{
		Score: overall,
		Breakdown: SubScores{
			KeywordScore:     keywordScore,
			RequirementScore: requirementScore,
			EvidenceScore:    evidenceScore,
		},
		Details: ScoreDetails{
			MatchedKeywords:   matched,
			TotalKeywords:     totalKeywords,
			MetRequirements:   met,
			TotalRequirements: totalReqs,
			VerifiedClaims:    verified,
			TotalClaims:       len(evidence),
		},
	}
}

// scoreKeywords checks approved keywords for literal word-boundary presence
// in the normalized content. Zero approved keywords means nothing to satisfy,
// which scores 100.
func scoreKeywords(decisions []KeywordDecision, normalizedContent string) (score, matched, total int) {
	for _, d := range decisions {
		if d.Decision != DecisionAdd {
			continue
		}
		keyword := Normalize(d.Keyword)
		if keyword == "" {
			continue
		}
		total++
		re, err := wordPattern(keyword)
		if err != nil {
			continue
		}
		if re.MatchString(normalizedContent) {
			matched++
		}
	}
	if total == 0 {
		return 100, 0, 0
	}
	return int(math.Round(float64(matched) / float64(total) * 100)), matched, total
}

// scoreRequirements accumulates category weight for each met requirement.
// A requirement is met when an evidence claim and the requirement contain
// one another after normalization, or when any requirement word longer than
// three characters appears in the content. Evidence matching here ignores
// the is_active flag; activity only gates the evidence sub-score.
func scoreRequirements(requirements []JDRequirement, evidence []EvidenceClaim, normalizedContent string) (score, met, total int) {
	earned := 0
	totalWeight := 0
	for _, req := range requirements {
		weight := RequirementWeight(req.Category)
		totalWeight += weight
		total++
		if requirementMet(req, evidence, normalizedContent) {
			earned += weight
			met++
		}
	}
	if totalWeight == 0 {
		return 100, 0, 0
	}
	return int(math.Round(float64(earned) / float64(totalWeight) * 100)), met, total
}

func requirementMet(req JDRequirement, evidence []EvidenceClaim, normalizedContent string) bool {
	reqText := Normalize(req.Text)
	if reqText == "" {
		return false
	}
	for _, claim := range evidence {
		claimText := Normalize(claim.ClaimText)
		if claimText == "" {
			continue
		}
		if strings.Contains(claimText, reqText) || strings.Contains(reqText, claimText) {
			return true
		}
	}
	for _, word := range strings.Fields(reqText) {
		if len(word) > 3 && strings.Contains(normalizedContent, word) {
			return true
		}
	}
	return false
}

// scoreEvidence weights active claims by confidence. With zero active claims
// the score is a neutral 50: absence of evidence is neither proof nor
// disproof.
func scoreEvidence(evidence []EvidenceClaim) (score, verified int) {
	sum := 0.0
	for _, claim := range evidence {
		if !claim.IsActive {
			continue
		}
		verified++
		if w, ok := confidenceWeights[claim.Confidence]; ok {
			sum += w
		} else {
			sum += confidenceWeights[ConfidenceLow]
		}
	}
	if verified == 0 {
		return 50, 0
	}
	return int(math.Round(sum / float64(verified) * 100)), verified
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
