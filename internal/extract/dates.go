package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateNumRx   = regexp.MustCompile(`\b(20\d{2})[-/](\d{1,2})[-/](\d{1,2})\b`)
	dateSlashRx = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	// Month-name dates are matched loosely and validated against the locale
	// tables, so adding a locale means adding a table, not a regex.
	dateWordFRRx = regexp.MustCompile(`\b(\d{1,2})\s+([a-zà-ÿ]+)\s+(20\d{2})\b`)
	dateWordENRx = regexp.MustCompile(`\b([a-z]+)\s+(\d{1,2}),?\s+(20\d{2})\b`)
)

// toISO validates a year/month/day triple by real calendar construction.
// Invalid combinations (Feb 30, month 13) are rejected, not reported.
func toISO(y, m, d int) (string, bool) {
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

// findDateCandidates returns the calendar-valid, plausibility-filtered ISO
// dates found in a fragment, order-preserving and duplicate-free.
//
// Recognized formats: numeric ISO, slash/dash numeric (fixed day-month-year
// convention, 2-digit years normalized by adding 2000), FR month names, and
// EN "Month D, YYYY". The day-month-year reading of slash dates is a
// deliberate policy: these documents are predominantly Canadian FR/EN and no
// contextual disambiguation is attempted.
func (l *Lexicon) findDateCandidates(fragment string) []string {
	var out []string

	push := func(y, m, d int) {
		if !l.yearPlausible(y) {
			return
		}
		if iso, ok := toISO(y, m, d); ok {
			out = append(out, iso)
		}
	}

	for _, m := range dateNumRx.FindAllStringSubmatch(fragment, -1) {
		push(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	for _, m := range dateSlashRx.FindAllStringSubmatch(fragment, -1) {
		d, mo, y := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if y < 100 {
			y += 2000
		}
		push(y, mo, d)
	}

	low := strings.ToLower(fragment)

	for _, m := range dateWordFRRx.FindAllStringSubmatch(low, -1) {
		if mo, ok := l.Months.FR[m[2]]; ok {
			push(atoi(m[3]), mo, atoi(m[1]))
		}
	}

	for _, m := range dateWordENRx.FindAllStringSubmatch(low, -1) {
		if mo, ok := l.Months.EN[m[1]]; ok {
			push(atoi(m[3]), mo, atoi(m[2]))
		}
	}

	return dedupeFold(out, len(out)+1)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// pickDateByAnchors returns the first date candidate inside the window around
// the highest-priority anchor that matches, or "" when none does.
func (l *Lexicon) pickDateByAnchors(text string, anchors []string) string {
	window, ok := findAnchorWindow(text, anchors, 250, 1200)
	if !ok {
		return ""
	}
	cands := l.findDateCandidates(window)
	if len(cands) == 0 {
		return ""
	}
	return cands[0]
}

const closingFallbackScan = 20000

// pickClosingDate anchors first; when no anchor matches it falls back to the
// earliest-positioned plausible date in the document head.
func (l *Lexicon) pickClosingDate(text string) string {
	if d := l.pickDateByAnchors(text, l.DateAnchors.Closing); d != "" {
		return d
	}
	head := text
	if len(head) > closingFallbackScan {
		head = head[:closingFallbackScan]
	}
	cands := l.findDateCandidates(head)
	if len(cands) == 0 {
		return ""
	}
	return cands[0]
}

// extractKeyDates resolves the five fixed roles independently. Absence is
// valid and common; each role carries at most one date.
func (l *Lexicon) extractKeyDates(text string) KeyDates {
	return KeyDates{
		Closing:           optional(l.pickClosingDate(text)),
		QuestionsDeadline: optional(l.pickDateByAnchors(text, l.DateAnchors.QuestionsDeadline)),
		SiteVisit:         optional(l.pickDateByAnchors(text, l.DateAnchors.SiteVisit)),
		AddendaDeadline:   optional(l.pickDateByAnchors(text, l.DateAnchors.AddendaDeadline)),
		Opening:           optional(l.pickDateByAnchors(text, l.DateAnchors.Opening)),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
