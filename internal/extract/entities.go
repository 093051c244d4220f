package extract

import (
	"regexp"
	"strings"
)

const buyerStructuralScan = 40000

var urlRx = regexp.MustCompile(`https?://`)

// pickBuyer is two-phase. Phase 1 inspects the lines around organizational
// anchors and accepts only institutional-shaped names that clear the
// denylist, which filters table artifacts like "Essentiel (obligatoire)".
// Phase 2 falls back to structural name patterns over the document head.
func (l *Lexicon) pickBuyer(text string) string {
	low := strings.ToLower(text)

	for _, a := range l.Buyer.Anchors {
		idx := strings.Index(low, a)
		if idx == -1 {
			continue
		}
		start, end := clampWindow(idx-200, idx+800, len(text))
		for _, line := range strings.Split(text[start:end], "\n") {
			cand := normalizeSpace(line)
			if len(cand) < 6 || len(cand) > 140 {
				continue
			}
			cl := strings.ToLower(cand)
			if containsAny(cl, l.Buyer.Denylist) {
				continue
			}
			if urlRx.MatchString(cl) {
				continue
			}
			if l.buyerShape.MatchString(cl) {
				return cand
			}
		}
	}

	sample := text
	if len(sample) > buyerStructuralScan {
		sample = sample[:buyerStructuralScan]
	}
	for _, rx := range l.buyerPatterns {
		m := rx.FindStringSubmatch(sample)
		if m == nil {
			continue
		}
		cand := normalizeSpace(m[1])
		if cand == "" || len(cand) > 140 {
			continue
		}
		if containsAny(strings.ToLower(cand), l.Buyer.Denylist) {
			continue
		}
		return cand
	}

	return ""
}

var referenceRxs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:no\.?|num(?:éro)?|réf(?:érence)?|reference|solicitation)\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9\-_/]{3,})`),
	regexp.MustCompile(`(?i)\b(?:ao|rfp|rfq|rfi|aoi)\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9\-_/]{3,})`),
}

func extractReferenceNumber(text string) string {
	for _, rx := range referenceRxs {
		if m := rx.FindStringSubmatch(text); m != nil {
			return truncBytes(m[1], 80)
		}
	}
	return ""
}

// extractContractType is a first-match classifier over the ordered type
// table; the table lists the long FR phrases before the short acronyms.
func (l *Lexicon) extractContractType(text string) string {
	low := strings.ToLower(text)
	for _, ct := range l.ContractTypes {
		if strings.Contains(low, ct.Needle) {
			return ct.Label
		}
	}
	return ""
}

// extractLanguage classifies the snippet around language anchors as FR, EN or
// FR/EN. Both markers present means bilingual even without the word itself.
func (l *Lexicon) extractLanguage(text string) string {
	snip, ok := findSnippet(text, l.LanguageAnchors, 200, 900)
	if !ok {
		return ""
	}
	low := strings.ToLower(snip)
	frenchHit := strings.Contains(low, "français") || strings.Contains(low, "francais")
	englishHit := strings.Contains(low, "anglais") || strings.Contains(low, "english")
	switch {
	case strings.Contains(low, "biling") || (frenchHit && englishHit):
		return "FR/EN"
	case frenchHit:
		return "FR"
	case englishHit:
		return "EN"
	}
	return ""
}

func (l *Lexicon) extractScopeSummary(text string) string {
	snip, _ := findSnippet(text, l.ScopeAnchors, 200, 2200)
	return snip
}

var (
	emailRx  = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	phoneRx  = regexp.MustCompile(`(?:\+?1[\s\-.])?\(?\d{3}\)?[\s\-.]\d{3}[\s\-.]\d{4}`)
	postalRx = regexp.MustCompile(`(?i)\b[abceghj-nprstvxy]\d[abceghj-nprstvxy][ \-]?\d[abceghj-nprstvxy]\d\b`)
)

func extractEmails(fragment string) []string {
	return dedupeFold(emailRx.FindAllString(fragment, -1), 10)
}

func extractPhones(fragment string) []string {
	var out []string
	for _, p := range phoneRx.FindAllString(fragment, -1) {
		out = append(out, normalizeSpace(p))
	}
	return dedupeFold(out, 10)
}

// extractContacts captures emails and phone numbers near contact anchors.
func (l *Lexicon) extractContacts(text string) (emails, phones []string) {
	snip, ok := findSnippet(text, l.ContactAnchors, 250, 1600)
	if !ok {
		return nil, nil
	}
	return extractEmails(snip), extractPhones(snip)
}

// extractSubmissionInfo captures the submission window and pulls out
// platform names, emails and a postal-code-bearing address line.
func (l *Lexicon) extractSubmissionInfo(text string) Submission {
	window, ok := findAnchorWindow(text, l.SubmissionAnchors, 250, 1500)
	if !ok {
		return Submission{Platforms: []string{}, Emails: []string{}}
	}

	low := strings.ToLower(window)
	var platforms []string
	for _, p := range l.Platforms {
		if strings.Contains(low, p) {
			platforms = appendUniqueFold(platforms, strings.ToUpper(p))
		}
	}
	if len(platforms) > 6 {
		platforms = platforms[:6]
	}
	if platforms == nil {
		platforms = []string{}
	}

	addr := ""
	for _, line := range strings.Split(window, "\n") {
		if postalRx.MatchString(line) {
			addr = clip(line, 200)
			break
		}
	}

	emails := extractEmails(window)
	if emails == nil {
		emails = []string{}
	}

	return Submission{
		Snippet:     clip(window, 1400),
		Platforms:   platforms,
		Emails:      emails,
		AddressHint: addr,
	}
}

// extractSecurityTerms returns the clearance-related lines near security
// anchors. These feed both the fit penalty and the risk list.
func (l *Lexicon) extractSecurityTerms(text string) []string {
	window, ok := findAnchorWindow(text, l.SecurityAnchors, 200, 1200)
	if !ok {
		return nil
	}
	var out []string
	for _, line := range strings.Split(window, "\n") {
		cand := normalizeSpace(line)
		if len(cand) < 20 || len(cand) > 260 {
			continue
		}
		if containsAny(strings.ToLower(cand), l.SecurityAnchors) {
			out = append(out, cand)
		}
	}
	return dedupeFold(out, 15)
}
