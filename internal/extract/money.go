package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	moneyTokenRx  = regexp.MustCompile(`(?i)\$?\s*\d[\d\s.,]{0,18}\s*(?:\$|cad|usd|c\$|dollars?)?`)
	moneyMarkerRx = regexp.MustCompile(`(?i)\$|cad|usd|c\$|dollar`)
)

// parseAmount reads a numeric token in FR or EN formatting into whole units.
// Separator policy: a trailing comma followed by exactly two digits is a
// decimal part and is dropped; a single dot followed by exactly two digits is
// likewise decimal; every other comma, dot or space is a grouping separator.
func parseAmount(token string) (int64, bool) {
	s := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == ',' {
			return r
		}
		return -1
	}, token)
	if s == "" {
		return 0, false
	}

	if i := strings.LastIndex(s, ","); i != -1 && len(s)-i-1 == 2 {
		s = s[:i]
	}
	if i := strings.LastIndex(s, "."); i != -1 && len(s)-i-1 == 2 && strings.Count(s, ".") == 1 {
		s = s[:i]
	}

	s = strings.NewReplacer(",", "", ".", "").Replace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// pickEstimatedValue scans windows around budget anchors for currency-bearing
// amounts. A token qualifies when it carries its own currency marker, or when
// the whole window does. Among plausible candidates the largest wins; a huge
// stray number can beat the real budget, which is accepted as the cost of
// never preferring an immaterial small figure over the contract ceiling.
func (l *Lexicon) pickEstimatedValue(text string) string {
	window, ok := findAnchorWindow(text, l.Value.Anchors, 200, 1200)
	if !ok {
		return ""
	}

	windowHasMarker := moneyMarkerRx.MatchString(window)

	var best int64 = -1
	for _, tok := range moneyTokenRx.FindAllString(window, -1) {
		if !moneyMarkerRx.MatchString(tok) && !windowHasMarker {
			continue
		}
		v, ok := parseAmount(tok)
		if !ok || v < l.Value.Min || v > l.Value.Max {
			continue
		}
		if v > best {
			best = v
		}
	}
	if best < 0 {
		return ""
	}
	return fmt.Sprintf("%d CAD", best)
}
