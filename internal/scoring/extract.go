package scoring

import (
	"regexp"
	"strings"
)

// maxHardSkills bounds extractor output on pathological inputs.
const maxHardSkills = 50

var capitalizedWordPattern = regexp.MustCompile(`\b[A-Z][A-Za-z0-9+#]+\b`)

// Extractor classifies raw text into keyword categories using a vocabulary.
// It is safe for concurrent use once constructed.
type Extractor struct {
	vocab    Vocabulary
	titleRe  *regexp.Regexp
	eduRes   []vocabPattern
	skillRes []vocabPattern
}

type vocabPattern struct {
	term string
	re   *regexp.Regexp
}

// NewExtractor builds an Extractor from the given vocabulary. Terms that do
// not compile into a pattern are skipped rather than failing construction.
func NewExtractor(vocab Vocabulary) *Extractor {
	e := &Extractor{vocab: vocab}

	if len(vocab.TitleIndicators) > 0 {
		quoted := make([]string, 0, len(vocab.TitleIndicators))
		for _, indicator := range vocab.TitleIndicators {
			quoted = append(quoted, regexp.QuoteMeta(indicator))
		}
		expr := `(?i)\b(?:\w+[ \t]+)?(?:` + strings.Join(quoted, "|") + `)\b(?:[ \t]+\w+)?`
		if re, err := regexp.Compile(expr); err == nil {
			e.titleRe = re
		}
	}

	for _, term := range vocab.Education {
		if re, err := wordPattern(term); err == nil {
			e.eduRes = append(e.eduRes, vocabPattern{term: term, re: re})
		}
	}

	hardLists := [][]string{vocab.Languages, vocab.Frameworks, vocab.Tools}
	for _, list := range hardLists {
		for _, term := range list {
			if re, err := wordPattern(term); err == nil {
				e.skillRes = append(e.skillRes, vocabPattern{term: term, re: re})
			}
		}
	}

	return e
}

var defaultExtractor = NewExtractor(DefaultVocabulary())

// Extract classifies text with the default vocabulary.
func Extract(text string) KeywordSet {
	return defaultExtractor.Extract(text)
}

// Extract classifies raw text into a KeywordSet. Empty or near-empty input
// yields empty categories, never an error.
func (e *Extractor) Extract(text string) KeywordSet {
	set := KeywordSet{
		HardSkills: []string{},
		SoftSkills: []string{},
		JobTitles:  []string{},
		Education:  []string{},
		Other:      []string{},
	}
	if len(strings.TrimSpace(text)) < 2 {
		return set
	}

	normalized := Normalize(text)

	// Soft skills: substring match against the vocabulary.
	for _, term := range e.vocab.SoftSkills {
		if strings.Contains(normalized, Normalize(term)) {
			set.SoftSkills = append(set.SoftSkills, term)
		}
	}

	// Education: word-boundary match against degree and certification names.
	for _, vp := range e.eduRes {
		if vp.re.MatchString(text) {
			set.Education = append(set.Education, vp.term)
		}
	}

	// Job titles: an indicator noun with an optional word on either side.
	if e.titleRe != nil {
		seen := make(map[string]bool)
		for _, span := range e.titleRe.FindAllString(text, -1) {
			trimmed := strings.TrimSpace(span)
			if len(trimmed) <= 3 {
				continue
			}
			key := strings.ToLower(trimmed)
			if seen[key] {
				continue
			}
			seen[key] = true
			set.JobTitles = append(set.JobTitles, trimmed)
		}
	}

	set.HardSkills = e.extractHardSkills(text, set.SoftSkills, set.Education)
	return set
}

// extractHardSkills unions capitalized words with the language, framework and
// tool vocabularies, excluding anything already classified as a soft skill or
// education term.
func (e *Extractor) extractHardSkills(text string, softSkills, education []string) []string {
	excluded := make(map[string]bool, len(softSkills)+len(education))
	for _, term := range softSkills {
		excluded[strings.ToLower(term)] = true
	}
	for _, term := range education {
		excluded[strings.ToLower(term)] = true
	}

	out := []string{}
	seen := make(map[string]bool)
	add := func(term string) {
		if len(out) >= maxHardSkills {
			return
		}
		key := strings.ToLower(term)
		if seen[key] || excluded[key] {
			return
		}
		seen[key] = true
		out = append(out, term)
	}

	for _, word := range capitalizedWordPattern.FindAllString(text, -1) {
		add(word)
	}
	for _, vp := range e.skillRes {
		if vp.re.MatchString(text) {
			add(vp.term)
		}
	}
	return out
}
