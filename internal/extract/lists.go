package extract

import (
	"regexp"
	"strings"
)

const (
	listScanBudget = 120
	listItemCap    = 40
)

var (
	bulletRx       = regexp.MustCompile(`^(?:[-•*]|\d+[.)])\s+`)
	capsHeadingRx  = regexp.MustCompile(`^[A-Z0-9ÉÈÀÙÂÊÎÔÛ][A-Z\sÉÈÀÙÂÊÎÔÛ\-]{10,}$`)
	weightSignalRx = regexp.MustCompile(`\b\d{1,3}\s*%|\bpond|\bpoids|\bpoints\b`)
)

// extractListUnderHeading locates the first line containing one of the
// heading phrases and walks the lines after it. Bulleted and numbered lines
// open items; short unmarked lines are merged onto the open item (wrapped
// text); longer unmarked lines are accepted standalone only when they carry
// a list keyword, which recovers tabular content without swallowing prose.
// The walk stops at a blank line once items exist, at an all-caps section
// heading, or at the scan budget.
func (l *Lexicon) extractListUnderHeading(text string, headings []string) []string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		ll := strings.ToLower(strings.TrimSpace(line))
		if containsAny(ll, headings) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var items []string
	limit := start + 1 + listScanBudget
	if limit > len(lines) {
		limit = len(lines)
	}
	for j := start + 1; j < limit; j++ {
		raw := strings.TrimSpace(lines[j])
		if raw == "" {
			if len(items) > 0 {
				break
			}
			continue
		}

		if capsHeadingRx.MatchString(raw) {
			break
		}

		switch {
		case bulletRx.MatchString(raw):
			item := truncBytes(normalizeSpace(bulletRx.ReplaceAllString(raw, "")), 380)
			items = append(items, item)
		case len(items) > 0 && len(raw) < 220:
			merged := normalizeSpace(items[len(items)-1] + " " + raw)
			items[len(items)-1] = truncBytes(merged, 520)
		default:
			if len(raw) >= 35 && len(raw) <= 240 && containsAny(strings.ToLower(raw), l.ListKeywords) {
				items = append(items, truncBytes(normalizeSpace(raw), 380))
			}
		}
	}

	return dedupeFold(items, listItemCap)
}

func (l *Lexicon) extractDeliverables(text string) []string {
	return l.extractListUnderHeading(text, l.Headings.Deliverables)
}

// extractEvaluationCriteria surfaces weight-bearing items first; evaluators
// read the scored criteria before the descriptive ones.
func (l *Lexicon) extractEvaluationCriteria(text string) []string {
	items := l.extractListUnderHeading(text, l.Headings.EvaluationCriteria)
	if len(items) == 0 {
		return items
	}
	var weighted, rest []string
	for _, it := range items {
		if weightSignalRx.MatchString(strings.ToLower(it)) {
			weighted = append(weighted, it)
		} else {
			rest = append(rest, it)
		}
	}
	out := append(weighted, rest...)
	if len(out) > listItemCap {
		out = out[:listItemCap]
	}
	return out
}

func (l *Lexicon) extractSubmissionDocuments(text string) []string {
	return l.extractListUnderHeading(text, l.Headings.SubmissionDocuments)
}

const mandatoryItemCap = 60

// extractMandatoryRequirements keys on the "Essentiel (obligatoire)" style
// table row that tender grids use to flag eliminatory requirements. The
// requirement text itself sits on the one or two lines before the marker
// row, so those are concatenated and bounds-checked. When no such row exists
// anywhere, any line pairing an obligation verb with a mandatory marker is
// accepted as a weaker fallback.
func extractMandatoryRequirements(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}

	var out []string
	for i, l := range lines {
		low := strings.ToLower(l)
		frRow := strings.Contains(low, "essentiel") && strings.Contains(low, "oblig")
		enRow := strings.Contains(low, "essential") && strings.Contains(low, "mandat")
		if !frRow && !enRow {
			continue
		}
		var prev, prev2 string
		if i >= 1 {
			prev = lines[i-1]
		}
		if i >= 2 {
			prev2 = lines[i-2]
		}
		cand := prev
		if len(prev) < 50 && prev2 != "" && len(prev2) < 250 {
			cand = prev2 + " " + prev
		}
		cand = normalizeSpace(cand)
		if len(cand) >= 20 && len(cand) <= 450 {
			out = append(out, cand)
		}
	}

	if len(out) == 0 {
		for _, l := range lines {
			low := strings.ToLower(l)
			marker := strings.Contains(low, "obligatoire") || strings.Contains(low, "must") || strings.Contains(low, "shall")
			verb := strings.Contains(low, "doit") || strings.Contains(low, "must") || strings.Contains(low, "shall")
			if marker && verb && len(l) >= 30 && len(l) <= 280 {
				out = append(out, normalizeSpace(l))
			}
		}
	}

	return dedupeFold(out, mandatoryItemCap)
}
