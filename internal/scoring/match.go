package scoring

import (
	"math"
	"strings"
)

// MatchKeywords compares a job description keyword set against a resume
// keyword set, category by category. Titles and the "other" bucket are
// excluded from the weighted overall result: title phrasing varies too much
// between postings and resumes to count against the candidate.
func MatchKeywords(jd, resume KeywordSet) KeywordMatch {
	hard := matchCategory(jd.HardSkills, resume.HardSkills)
	soft := matchCategory(jd.SoftSkills, resume.SoftSkills)
	edu := matchCategory(jd.Education, resume.Education)

	overall := KeywordMatchResult{
		Found:   []string{},
		Missing: []string{},
	}
	for _, r := range []KeywordMatchResult{hard, soft, edu} {
		overall.Found = append(overall.Found, r.Found...)
		overall.Missing = append(overall.Missing, r.Missing...)
	}
	overall.MatchPercentage = percentage(len(overall.Found), len(overall.Found)+len(overall.Missing))

	return KeywordMatch{
		HardSkills: hard,
		SoftSkills: soft,
		Education:  edu,
		Overall:    overall,
	}
}

// matchCategory marks a JD term as found when it and some resume term contain
// one another as case-insensitive substrings. The containment is deliberately
// bidirectional to tolerate phrasing differences ("Python" vs "Python 3").
func matchCategory(jdTerms, resumeTerms []string) KeywordMatchResult {
	result := KeywordMatchResult{
		Found:   []string{},
		Missing: []string{},
	}

	lowered := make([]string, 0, len(resumeTerms))
	for _, term := range resumeTerms {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(term)))
	}

	for _, jdTerm := range jdTerms {
		needle := strings.ToLower(strings.TrimSpace(jdTerm))
		if needle == "" {
			continue
		}
		found := false
		for _, hay := range lowered {
			if hay == "" {
				continue
			}
			if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
				found = true
				break
			}
		}
		if found {
			result.Found = append(result.Found, jdTerm)
		} else {
			result.Missing = append(result.Missing, jdTerm)
		}
	}

	result.MatchPercentage = percentage(len(result.Found), len(result.Found)+len(result.Missing))
	return result
}

// percentage returns round(part/total*100), or 100 on an empty total: an
// empty JD category requires nothing, so nothing is missing.
func percentage(part, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
