package scoring

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces punctuation with spaces, collapses runs
// of whitespace and trims. It is total and idempotent, so every matcher can
// compare normalized forms directly.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	lowered = nonWordPattern.ReplaceAllString(lowered, " ")
	lowered = whitespacePattern.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(lowered)
}

// wordPattern compiles a case-insensitive pattern matching term on word
// boundaries. Boundary assertions are only emitted next to word characters;
// a term like "b.s." or "c++" would otherwise never match at its edges.
func wordPattern(term string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(term)
	runes := []rune(term)
	expr := "(?i)"
	if len(runes) > 0 && isWordRune(runes[0]) {
		expr += `\b`
	}
	expr += quoted
	if len(runes) > 0 && isWordRune(runes[len(runes)-1]) {
		expr += `\b`
	}
	return regexp.Compile(expr)
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
