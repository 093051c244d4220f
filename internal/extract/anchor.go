package extract

import "strings"

// findAnchorWindow scans anchors in the caller's priority order (not by text
// position) and returns the raw text window around the first anchor found
// anywhere in the document. The first anchor in caller order wins, which
// trades recall for precision: callers list their most specific phrases
// first. Returns ok=false when no anchor matches; this is not an error.
//
// The anchor index comes from the lowercased copy, whose byte offsets can
// drift past len(text) when case folding changes rune width, so both bounds
// are clamped before slicing.
func findAnchorWindow(text string, anchors []string, before, after int) (string, bool) {
	low := strings.ToLower(text)
	for _, a := range anchors {
		idx := strings.Index(low, strings.ToLower(a))
		if idx == -1 {
			continue
		}
		start, end := clampWindow(idx-before, idx+after, len(text))
		return text[start:end], true
	}
	return "", false
}

// clampWindow bounds a [start, end) window to a string of n bytes, keeping
// start <= end.
func clampWindow(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}

// findSnippet is findAnchorWindow with the window collapsed to a single
// readable line, bounded for report display.
func findSnippet(text string, anchors []string, before, after int) (string, bool) {
	w, ok := findAnchorWindow(text, anchors, before, after)
	if !ok {
		return "", false
	}
	return clip(w, 1400), true
}
