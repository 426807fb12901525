package scoring

// KeywordSet holds categorized terms extracted from one text blob. Terms keep
// their original casing for display; comparisons are case-insensitive.
type KeywordSet struct {
	HardSkills []string `json:"hardSkills"`
	SoftSkills []string `json:"softSkills"`
	JobTitles  []string `json:"jobTitles"`
	Education  []string `json:"education"`
	Other      []string `json:"other"`
}

// KeywordMatchResult reports found/missing terms for one category.
type KeywordMatchResult struct {
	Found           []string `json:"found"`
	Missing         []string `json:"missing"`
	MatchPercentage int      `json:"matchPercentage"`
}

// KeywordMatch is the per-category and overall outcome of comparing a job
// description keyword set against a resume keyword set.
type KeywordMatch struct {
	HardSkills KeywordMatchResult `json:"hardSkills"`
	SoftSkills KeywordMatchResult `json:"softSkills"`
	Education  KeywordMatchResult `json:"education"`
	Overall    KeywordMatchResult `json:"overall"`
}

// Decision values for a candidate keyword. Only DecisionAdd counts toward the
// keyword sub-score; everything else is excluded until resolved.
const (
	DecisionAdd     = "add"
	DecisionNotTrue = "not_true"
	DecisionIgnore  = "ignore"
	DecisionPending = "pending"
)

// KeywordDecision is a user or AI adjudication of one candidate keyword.
type KeywordDecision struct {
	Keyword  string `json:"keyword"`
	Decision string `json:"decision"`
}

// Requirement categories extracted from a job description.
const (
	CategoryHardSkill      = "hard_skill"
	CategoryTool           = "tool"
	CategoryDomain         = "domain"
	CategoryResponsibility = "responsibility"
	CategoryOutcome        = "outcome"
	CategoryEducation      = "education"
	CategoryTitle          = "title"
	CategorySoftSkill      = "soft_skill"
)

// requirementWeights maps a requirement category to its importance weight in
// the weighted coverage score. Unknown categories fall back to weight 1.
var requirementWeights = map[string]int{
	CategoryHardSkill:      3,
	CategoryResponsibility: 3,
	CategoryTool:           2,
	CategoryDomain:         2,
	CategoryOutcome:        2,
	CategoryEducation:      2,
	CategoryTitle:          1,
	CategorySoftSkill:      1,
}

// RequirementWeight returns the importance weight for a requirement category.
func RequirementWeight(category string) int {
	if w, ok := requirementWeights[category]; ok {
		return w
	}
	return 1
}

// JDRequirement is one atomic requirement extracted from a job description.
type JDRequirement struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Evidence confidence levels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

var confidenceWeights = map[string]float64{
	ConfidenceHigh:   1.0,
	ConfidenceMedium: 0.7,
	ConfidenceLow:    0.4,
}

// EvidenceClaim is a factual claim supporting resume content. Inactive claims
// are excluded from the evidence sub-score.
type EvidenceClaim struct {
	ID         string `json:"id,omitempty"`
	ClaimText  string `json:"claimText"`
	Confidence string `json:"confidence"`
	IsActive   bool   `json:"isActive"`
	Source     string `json:"source,omitempty"`
}

// ScoreBreakdown is the output of the deterministic score calculator.
// It is created fresh per invocation and never mutated.
type ScoreBreakdown struct {
	Score     int          `json:"score"`
	Breakdown SubScores    `json:"breakdown"`
	Details   ScoreDetails `json:"details"`
}

// SubScores are the independently computed component scores, each 0-100.
type SubScores struct {
	KeywordScore     int `json:"keywordScore"`
	RequirementScore int `json:"requirementScore"`
	EvidenceScore    int `json:"evidenceScore"`
}

// ScoreDetails exposes the counts behind each sub-score.
type ScoreDetails struct {
	MatchedKeywords   int `json:"matchedKeywords"`
	TotalKeywords     int `json:"totalKeywords"`
	MetRequirements   int `json:"metRequirements"`
	TotalRequirements int `json:"totalRequirements"`
	VerifiedClaims    int `json:"verifiedClaims"`
	TotalClaims       int `json:"totalClaims"`
}
