package catalog

import "strings"

// Normalize lower-cases text and strips every character that is not an ASCII
// letter, digit, or whitespace. Accented characters are removed, not
// transliterated, so "PREÇO" normalizes to "preo". Surrounding and repeated
// whitespace collapses to single spaces.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits the normalized form of text into a set of
// whitespace-delimited tokens. Duplicates collapse; order is irrelevant.
func Tokenize(text string) map[string]struct{} {
	fields := strings.Fields(Normalize(text))
	tokens := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		tokens[field] = struct{}{}
	}
	return tokens
}
