package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var trailingWSRx = regexp.MustCompile(`[ \t]+\n`)

// normalizeSpace collapses all whitespace runs into single spaces and trims.
// Used wherever pattern matching must ignore line wrapping.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripNoise is the line-preserving profile: it keeps line boundaries (they
// carry meaning for heading and table-row detection) but drops embedded NULs
// and trailing whitespace left behind by table-to-text conversion.
func stripNoise(s string) string {
	s = strings.ReplaceAll(s, "\x00", " ")
	return trailingWSRx.ReplaceAllString(s, "\n")
}

// clip collapses whitespace and bounds the result, appending an ellipsis when
// the text was cut.
func clip(s string, maxLen int) string {
	s = normalizeSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return strings.TrimRight(truncBytes(s, maxLen-3), " ") + "..."
}

// truncBytes cuts s at the byte bound, stepping back to a rune boundary so
// the result stays valid UTF-8.
func truncBytes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// containsAny reports whether the lowercased haystack contains any needle.
func containsAny(low string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(low, n) {
			return true
		}
	}
	return false
}

// appendUniqueFold appends v unless an equal item (case-insensitive) exists.
func appendUniqueFold(list []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	for _, existing := range list {
		if strings.EqualFold(existing, v) {
			return list
		}
	}
	return append(list, v)
}

// dedupeFold removes case-insensitive duplicates preserving first-seen order
// and caps the result at max items.
func dedupeFold(items []string, max int) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		k := strings.ToLower(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
		if len(out) >= max {
			break
		}
	}
	return out
}
