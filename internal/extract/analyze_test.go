package extract

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

var analyzeNow = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func TestAnalyze_ClosingDateFrench(t *testing.T) {
	res := Analyze("Date de clôture : 12 mars 2025 à 14h00.", Options{Now: analyzeNow})
	if res.Fields.KeyDates.Closing == nil || *res.Fields.KeyDates.Closing != "2025-03-12" {
		t.Fatalf("closing: %+v", res.Fields.KeyDates.Closing)
	}
	if res.Fields.ClosingDate == nil || *res.Fields.ClosingDate != "2025-03-12" {
		t.Fatalf("top-level closing mirror: %+v", res.Fields.ClosingDate)
	}
}

func TestAnalyze_MandatoryRequirementRow(t *testing.T) {
	text := "Le soumissionnaire doit détenir une accréditation ISO 9001.\nExigence 2.1 | Essentiel (obligatoire)"
	res := Analyze(text, Options{Now: analyzeNow})
	if len(res.Fields.MandatoryRequirements) != 1 {
		t.Fatalf("requirements: %v", res.Fields.MandatoryRequirements)
	}
	if res.Fields.MandatoryRequirements[0] != "Le soumissionnaire doit détenir une accréditation ISO 9001." {
		t.Fatalf("got %q", res.Fields.MandatoryRequirements[0])
	}
}

func TestAnalyze_EstimatedValue(t *testing.T) {
	res := Analyze("Budget maximal: 150 000 $ incluant toutes les options.", Options{Now: analyzeNow})
	if res.Fields.EstimatedValue != "150000 CAD" {
		t.Fatalf("estimated value: %q", res.Fields.EstimatedValue)
	}
}

func TestAnalyze_WeightedCriteriaFirst(t *testing.T) {
	text := "Critères d'évaluation\n- Compréhension du mandat\n- Qualité de la méthodologie 40%"
	res := Analyze(text, Options{Now: analyzeNow})
	crit := res.Fields.EvaluationCriteria
	if len(crit) != 2 || !strings.Contains(crit[0], "40%") {
		t.Fatalf("criteria: %v", crit)
	}
}

func TestAnalyze_NoDates(t *testing.T) {
	res := Analyze("Texte administratif sans aucun contenu temporel.", Options{Now: analyzeNow})
	kd := res.Fields.KeyDates
	if kd.Closing != nil || kd.QuestionsDeadline != nil || kd.SiteVisit != nil || kd.AddendaDeadline != nil || kd.Opening != nil {
		t.Fatalf("expected no dates: %+v", kd)
	}
	if res.Confidence < 0.2 || res.Confidence > 0.95 {
		t.Fatalf("confidence out of bounds: %v", res.Confidence)
	}
	if res.Confidence >= 0.5 {
		t.Fatalf("confidence should reflect missing fields: %v", res.Confidence)
	}
}

func TestAnalyze_RegistryDiscardsImplausibleClosing(t *testing.T) {
	rec := &RegistryRecord{Title: "Services TI", PublishedAt: "2024-06-01", PortalName: "SEAO"}
	res := Analyze("Date de clôture : 2023-01-01.", Options{Now: analyzeNow, Registry: rec})
	if res.Fields.KeyDates.Closing != nil {
		t.Fatalf("implausible closing kept: %q", *res.Fields.KeyDates.Closing)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "2023-01-01") {
		t.Fatalf("warnings: %v", res.Warnings)
	}
	if res.Fields.Title != "Services TI" || res.Fields.PortalName != "SEAO" {
		t.Fatalf("registry backfill missing: %+v", res.Fields)
	}
}

func TestAnalyze_RegistryKeepsPlausibleClosing(t *testing.T) {
	rec := &RegistryRecord{PublishedAt: "2024-06-01"}
	res := Analyze("Date de clôture : 2025-03-12.", Options{Now: analyzeNow, Registry: rec})
	if res.Fields.KeyDates.Closing == nil || *res.Fields.KeyDates.Closing != "2025-03-12" {
		t.Fatalf("plausible closing dropped: %+v", res.Fields.KeyDates.Closing)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	text := "Date de clôture : 12 mars 2025.\nBudget: 80 000 $.\nLivrables\n- Rapport final"
	opts := Options{Now: analyzeNow}
	a := Analyze(text, opts)
	b := Analyze(text, opts)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical input produced different results")
	}
}

func TestAnalyze_ListsNeverNil(t *testing.T) {
	res := Analyze("", Options{Now: analyzeNow})
	if res.Fields.MandatoryRequirements == nil || res.Fields.SubmissionDocuments == nil ||
		res.Fields.Deliverables == nil || res.Fields.EvaluationCriteria == nil ||
		res.Fields.ContactEmails == nil || res.Fields.ContactPhones == nil ||
		res.Fields.SecurityTerms == nil || res.Warnings == nil {
		t.Fatalf("nil list field in %+v", res.Fields)
	}
}

func TestAnalyze_CaseFoldWidthDrift(t *testing.T) {
	// Runes whose lowercase form is wider in UTF-8 shift anchor offsets
	// computed on the lowered copy; the whole pipeline must still return a
	// result instead of slicing out of range.
	text := strings.Repeat("Ⱥ", 1000) + " Budget maximal: 150 000 $"
	res := Analyze(text, Options{Now: analyzeNow})
	if res.TextChars == 0 {
		t.Fatal("empty result")
	}
}

func TestAnalyze_ArtifactsFollowPresence(t *testing.T) {
	text := "Date de clôture : 12 mars 2025.\nDate limite de questions : 1 mars 2025."
	res := Analyze(text, Options{Now: analyzeNow})

	foundDeadline := false
	for _, item := range res.ComplianceChecklist {
		if strings.Contains(item, "Déposer la soumission avant") {
			foundDeadline = true
		}
	}
	if !foundDeadline {
		t.Fatalf("checklist missing deadline entry: %v", res.ComplianceChecklist)
	}

	if len(res.ProposalOutline) != 13 {
		t.Fatalf("outline without criteria should have 13 sections: %v", res.ProposalOutline)
	}

	withCrit := Analyze(text+"\nCritères d'évaluation\n- Prix 40%", Options{Now: analyzeNow})
	if len(withCrit.ProposalOutline) != 14 {
		t.Fatalf("outline with criteria should have 14 sections: %v", withCrit.ProposalOutline)
	}
	if !strings.HasPrefix(withCrit.ProposalOutline[9], "10. Alignement") {
		t.Fatalf("criteria section misplaced: %v", withCrit.ProposalOutline)
	}
}

func TestAnalyze_SummaryMentionsFindings(t *testing.T) {
	res := Analyze("Date de clôture : 12 mars 2025.\nBudget: 80 000 $.", Options{Now: analyzeNow})
	if !strings.Contains(res.Summary, "2025-03-12") || !strings.Contains(res.Summary, "80000 CAD") {
		t.Fatalf("summary: %q", res.Summary)
	}
}
