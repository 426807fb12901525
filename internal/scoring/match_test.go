package scoring

import "testing"

func TestMatchKeywordsBidirectionalContainment(t *testing.T) {
	jd := KeywordSet{HardSkills: []string{"Python", "Kubernetes"}}
	resume := KeywordSet{HardSkills: []string{"Python 3", "Docker"}}

	result := MatchKeywords(jd, resume)

	if len(result.HardSkills.Found) != 1 || result.HardSkills.Found[0] != "Python" {
		t.Fatalf("found = %v, want [Python]", result.HardSkills.Found)
	}
	if len(result.HardSkills.Missing) != 1 || result.HardSkills.Missing[0] != "Kubernetes" {
		t.Fatalf("missing = %v, want [Kubernetes]", result.HardSkills.Missing)
	}
	if result.HardSkills.MatchPercentage != 50 {
		t.Fatalf("percentage = %d, want 50", result.HardSkills.MatchPercentage)
	}

	// Containment works the other way around too.
	reversed := MatchKeywords(
		KeywordSet{HardSkills: []string{"Python 3"}},
		KeywordSet{HardSkills: []string{"Python"}},
	)
	if reversed.HardSkills.MatchPercentage != 100 {
		t.Fatalf("reversed percentage = %d, want 100", reversed.HardSkills.MatchPercentage)
	}
}

func TestMatchKeywordsVacuousCategory(t *testing.T) {
	result := MatchKeywords(KeywordSet{}, KeywordSet{HardSkills: []string{"Go"}})

	for name, r := range map[string]KeywordMatchResult{
		"hardSkills": result.HardSkills,
		"softSkills": result.SoftSkills,
		"education":  result.Education,
		"overall":    result.Overall,
	} {
		if r.MatchPercentage != 100 {
			t.Fatalf("%s percentage = %d, want 100 for empty JD category", name, r.MatchPercentage)
		}
		if len(r.Found) != 0 || len(r.Missing) != 0 {
			t.Fatalf("%s expected empty found/missing, got %v / %v", name, r.Found, r.Missing)
		}
	}
}

func TestMatchKeywordsOverallWeightedByTermCount(t *testing.T) {
	jd := KeywordSet{
		HardSkills: []string{"Go", "Rust", "Python", "Java"},
		SoftSkills: []string{"leadership"},
	}
	resume := KeywordSet{
		HardSkills: []string{"Go"},
		SoftSkills: []string{"leadership"},
	}

	result := MatchKeywords(jd, resume)

	// 2 of 5 JD terms matched: 40%, not the 62% a naive average of the
	// category percentages (25% and 100%) would give.
	if result.Overall.MatchPercentage != 40 {
		t.Fatalf("overall percentage = %d, want 40", result.Overall.MatchPercentage)
	}
	if len(result.Overall.Found) != 2 || len(result.Overall.Missing) != 3 {
		t.Fatalf("overall found/missing = %v / %v", result.Overall.Found, result.Overall.Missing)
	}
}

func TestMatchKeywordsExcludesTitlesFromOverall(t *testing.T) {
	jd := KeywordSet{
		HardSkills: []string{"Go"},
		JobTitles:  []string{"Engineering Manager"},
		Other:      []string{"hybrid"},
	}
	resume := KeywordSet{HardSkills: []string{"Go"}}

	result := MatchKeywords(jd, resume)
	if result.Overall.MatchPercentage != 100 {
		t.Fatalf("overall percentage = %d, want 100 (titles and other excluded)", result.Overall.MatchPercentage)
	}
}

func TestMatchPercentageBounds(t *testing.T) {
	cases := []struct {
		jd     []string
		resume []string
	}{
		{jd: nil, resume: nil},
		{jd: []string{"a"}, resume: nil},
		{jd: []string{"a", "b", "c"}, resume: []string{"a"}},
		{jd: []string{"a"}, resume: []string{"a", "b"}},
	}
	for _, tc := range cases {
		r := matchCategory(tc.jd, tc.resume)
		if r.MatchPercentage < 0 || r.MatchPercentage > 100 {
			t.Fatalf("percentage out of bounds: %d for jd=%v resume=%v", r.MatchPercentage, tc.jd, tc.resume)
		}
	}
}
