package wordfall

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds case and strips combining marks so that "Áso" and
// "aso" compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// Resolve returns the first falling target whose text matches the
// submission after normalization, or nil.
func Resolve(submission string, targets []*Target) *Target {
	want := Normalize(strings.TrimSpace(submission))
	if want == "" {
		return nil
	}
	for _, t := range targets {
		if t.State != StateFalling {
			continue
		}
		if Normalize(t.Text) == want {
			return t
		}
	}
	return nil
}

// PrefixHighlight flags the leading runes of text covered by the active
// input when the normalized text starts with the normalized input.
func PrefixHighlight(text, active string) []bool {
	letters := []rune(text)
	flags := make([]bool, len(letters))
	if active == "" {
		return flags
	}

	if !strings.HasPrefix(Normalize(text), Normalize(active)) {
		return flags
	}

	n := len([]rune(active))
	for i := range flags {
		if i < n {
			flags[i] = true
		}
	}
	return flags
}
