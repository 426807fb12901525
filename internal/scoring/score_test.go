package scoring

import (
	"reflect"
	"testing"
)

func TestCalculateResumeScoreKeywordComponent(t *testing.T) {
	decisions := []KeywordDecision{
		{Keyword: "Python", Decision: DecisionAdd},
		{Keyword: "Kubernetes", Decision: DecisionAdd},
		{Keyword: "Java", Decision: DecisionNotTrue},
		{Keyword: "Rust", Decision: DecisionPending},
	}
	content := "Built Python services deployed to production."

	result := CalculateResumeScore(decisions, nil, nil, content)

	if result.Details.TotalKeywords != 2 {
		t.Fatalf("total keywords = %d, want 2 (only add decisions count)", result.Details.TotalKeywords)
	}
	if result.Details.MatchedKeywords != 1 {
		t.Fatalf("matched keywords = %d, want 1", result.Details.MatchedKeywords)
	}
	if result.Breakdown.KeywordScore != 50 {
		t.Fatalf("keyword score = %d, want 50", result.Breakdown.KeywordScore)
	}
}

func TestCalculateResumeScoreKeywordWordBoundary(t *testing.T) {
	decisions := []KeywordDecision{{Keyword: "Go", Decision: DecisionAdd}}

	miss := CalculateResumeScore(decisions, nil, nil, "Worked with MongoDB daily.")
	if miss.Breakdown.KeywordScore != 0 {
		t.Fatalf("expected no match inside MongoDB, got score %d", miss.Breakdown.KeywordScore)
	}

	hit := CalculateResumeScore(decisions, nil, nil, "Worked with Go daily.")
	if hit.Breakdown.KeywordScore != 100 {
		t.Fatalf("expected word-boundary match, got score %d", hit.Breakdown.KeywordScore)
	}
}

func TestCalculateResumeScoreKeywordMonotonicity(t *testing.T) {
	decisions := []KeywordDecision{
		{Keyword: "terraform", Decision: DecisionAdd},
		{Keyword: "ansible", Decision: DecisionAdd},
	}
	before := CalculateResumeScore(decisions, nil, nil, "Automated infra with terraform.")
	after := CalculateResumeScore(decisions, nil, nil, "Automated infra with terraform and ansible.")

	if after.Breakdown.KeywordScore < before.Breakdown.KeywordScore {
		t.Fatalf("adding a missing keyword decreased the score: %d -> %d",
			before.Breakdown.KeywordScore, after.Breakdown.KeywordScore)
	}
}

func TestCalculateResumeScoreRequirements(t *testing.T) {
	requirements := []JDRequirement{
		{Text: "5 years building distributed systems", Category: CategoryHardSkill},
		{Text: "Kubernetes administration", Category: CategoryTool},
		{Text: "Quantum teleportation", Category: CategoryDomain},
	}
	evidence := []EvidenceClaim{
		{ClaimText: "Kubernetes administration", Confidence: ConfidenceHigh, IsActive: false},
	}
	content := "Eight years designing distributed data pipelines."

	result := CalculateResumeScore(nil, requirements, evidence, content)

	// hard_skill (3) met via content word, tool (2) met via inactive evidence
	// containment, domain (2) unmet: 5/7 weight.
	if result.Breakdown.RequirementScore != 71 {
		t.Fatalf("requirement score = %d, want 71", result.Breakdown.RequirementScore)
	}
	if result.Details.MetRequirements != 2 || result.Details.TotalRequirements != 3 {
		t.Fatalf("met/total = %d/%d, want 2/3", result.Details.MetRequirements, result.Details.TotalRequirements)
	}
}

func TestCalculateResumeScoreAllRequirementsMet(t *testing.T) {
	requirements := []JDRequirement{
		{Text: "python services", Category: CategoryHardSkill},
		{Text: "docker containers", Category: CategoryTool},
		{Text: "bachelor degree", Category: CategoryEducation},
	}
	content := "python services in docker containers, bachelor degree in CS"

	result := CalculateResumeScore(nil, requirements, nil, content)
	if result.Breakdown.RequirementScore != 100 {
		t.Fatalf("requirement score = %d, want 100 when every requirement is met", result.Breakdown.RequirementScore)
	}
}

func TestCalculateResumeScoreEvidenceNeutrality(t *testing.T) {
	evidence := []EvidenceClaim{
		{ClaimText: "inactive claim", Confidence: ConfidenceHigh, IsActive: false},
	}
	result := CalculateResumeScore(nil, nil, evidence, "some content")

	if result.Breakdown.EvidenceScore != 50 {
		t.Fatalf("evidence score = %d, want neutral 50 with zero active claims", result.Breakdown.EvidenceScore)
	}
	if result.Details.VerifiedClaims != 0 || result.Details.TotalClaims != 1 {
		t.Fatalf("verified/total = %d/%d, want 0/1", result.Details.VerifiedClaims, result.Details.TotalClaims)
	}
}

func TestCalculateResumeScoreEvidenceWeights(t *testing.T) {
	evidence := []EvidenceClaim{
		{ClaimText: "shipped the billing migration", Confidence: ConfidenceHigh, IsActive: true},
		{ClaimText: "led the platform team", Confidence: ConfidenceMedium, IsActive: true},
		{ClaimText: "mentored two juniors", Confidence: ConfidenceLow, IsActive: true},
	}
	result := CalculateResumeScore(nil, nil, evidence, "content")

	// (1.0 + 0.7 + 0.4) / 3 = 70
	if result.Breakdown.EvidenceScore != 70 {
		t.Fatalf("evidence score = %d, want 70", result.Breakdown.EvidenceScore)
	}
}

func TestCalculateResumeScoreEmptyInputs(t *testing.T) {
	result := CalculateResumeScore(nil, nil, nil, "")

	expected := ScoreBreakdown{
		Score: 90, // 100*0.3 + 100*0.5 + 50*0.2
		Breakdown: SubScores{
			KeywordScore:     100,
			RequirementScore: 100,
			EvidenceScore:    50,
		},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf("result = %+v, want %+v", result, expected)
	}
}

func TestCalculateResumeScoreDoesNotMutateInputs(t *testing.T) {
	decisions := []KeywordDecision{{Keyword: "Go", Decision: DecisionAdd}}
	requirements := []JDRequirement{{Text: "golang experience", Category: CategoryHardSkill}}
	evidence := []EvidenceClaim{{ClaimText: "golang experience", Confidence: ConfidenceHigh, IsActive: true}}

	decisionsCopy := append([]KeywordDecision(nil), decisions...)
	requirementsCopy := append([]JDRequirement(nil), requirements...)
	evidenceCopy := append([]EvidenceClaim(nil), evidence...)

	CalculateResumeScore(decisions, requirements, evidence, "ships Go services")

	if !reflect.DeepEqual(decisions, decisionsCopy) ||
		!reflect.DeepEqual(requirements, requirementsCopy) ||
		!reflect.DeepEqual(evidence, evidenceCopy) {
		t.Fatalf("inputs were mutated")
	}
}
