// Package extract turns raw tender-document text into a structured,
// confidence-scored record: key dates, buyer, estimated value, requirement
// and deliverable lists, contacts, and the derived go/no-go artifacts.
//
// Everything is deterministic anchor-and-pattern matching over FR/EN text.
// "Not found" is a normal outcome throughout: scalar fields come back empty
// or nil and list fields come back empty, never as errors.
package extract

import "time"

const textSampleLen = 1200

// Analyze runs the full extraction pipeline over one document's combined
// text. It is a pure function of its inputs; callers own identity,
// timestamps and storage of the result.
func Analyze(text string, opts Options) Result {
	lex := DefaultLexicon()

	text = stripNoise(text)
	textChars := len(text)

	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	f := Fields{
		ReferenceNumber: extractReferenceNumber(text),
		Buyer:           lex.pickBuyer(text),
		EstimatedValue:  lex.pickEstimatedValue(text),
		ContractType:    lex.extractContractType(text),
		Language:        lex.extractLanguage(text),
		KeyDates:        lex.extractKeyDates(text),
		ScopeSummary:    lex.extractScopeSummary(text),

		MandatoryRequirements: extractMandatoryRequirements(text),
		SubmissionDocuments:   lex.extractSubmissionDocuments(text),
		Deliverables:          lex.extractDeliverables(text),
		EvaluationCriteria:    lex.extractEvaluationCriteria(text),

		Submission:    lex.extractSubmissionInfo(text),
		SecurityTerms: lex.extractSecurityTerms(text),
	}
	f.ContactEmails, f.ContactPhones = lex.extractContacts(text)

	ensureLists(&f)

	var warnings []string
	if opts.Registry != nil {
		warnings = applyRegistry(&f, opts.Registry)
	}
	f.ClosingDate = f.KeyDates.Closing

	fit := lex.computeFit(f, opts.Profile, now)
	confidence := computeConfidence(textChars, f)

	sample := truncBytes(text, textSampleLen)
	if warnings == nil {
		warnings = []string{}
	}

	return Result{
		Summary:             buildSummary(textChars, f),
		Fields:              f,
		Fit:                 fit,
		ComplianceChecklist: buildComplianceChecklist(f),
		ProposalOutline:     buildProposalOutline(f),
		Risks:               buildRisks(f),
		NextActions:         buildNextActions(f),
		Confidence:          confidence,
		Warnings:            warnings,
		TextChars:           textChars,
		TextSample:          sample,
	}
}

// ensureLists keeps list fields as empty arrays rather than nulls so JSON
// consumers never branch on absence.
func ensureLists(f *Fields) {
	if f.MandatoryRequirements == nil {
		f.MandatoryRequirements = []string{}
	}
	if f.SubmissionDocuments == nil {
		f.SubmissionDocuments = []string{}
	}
	if f.Deliverables == nil {
		f.Deliverables = []string{}
	}
	if f.EvaluationCriteria == nil {
		f.EvaluationCriteria = []string{}
	}
	if f.ContactEmails == nil {
		f.ContactEmails = []string{}
	}
	if f.ContactPhones == nil {
		f.ContactPhones = []string{}
	}
	if f.SecurityTerms == nil {
		f.SecurityTerms = []string{}
	}
}

// applyRegistry backfills metadata gaps from the pre-fetched record and
// cross-checks the extracted closing date. A closing date earlier than the
// registry's publication date is impossible, so the implausible value is
// discarded with a warning rather than surfaced.
func applyRegistry(f *Fields, rec *RegistryRecord) []string {
	f.Title = rec.Title
	f.URL = rec.URL
	f.PortalName = rec.PortalName
	f.PublishedAt = rec.PublishedAt
	f.Country = rec.Country
	f.Region = rec.Region
	if f.Buyer == "" {
		f.Buyer = rec.Buyer
	}

	var warnings []string
	if f.KeyDates.Closing != nil && len(rec.PublishedAt) >= 10 {
		published := rec.PublishedAt[:10]
		// ISO dates compare correctly as strings.
		if isISODate(published) && *f.KeyDates.Closing < published {
			warnings = append(warnings,
				"Date de clôture extraite ("+*f.KeyDates.Closing+") antérieure à la publication au registre ("+published+"); valeur écartée.")
			f.KeyDates.Closing = nil
		}
	}
	return warnings
}

func isISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Fit verdicts.
const (
	VerdictGo    = "GO"
	VerdictMaybe = "MAYBE"
	VerdictNoGo  = "NO-GO"
)
