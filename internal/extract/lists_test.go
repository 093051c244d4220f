package extract

import (
	"strings"
	"testing"
)

func TestExtractListUnderHeading_Bullets(t *testing.T) {
	lex := DefaultLexicon()
	text := "Livrables\n- Plan de projet détaillé\n- Rapport d'étape mensuel\n- Documentation de fin de mandat\n\nAutre section"
	got := lex.extractDeliverables(text)
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	if got[0] != "Plan de projet détaillé" {
		t.Fatalf("first item: %q", got[0])
	}
}

func TestExtractListUnderHeading_MergesWrappedLines(t *testing.T) {
	lex := DefaultLexicon()
	text := "Livrables\n- Plan de projet couvrant toutes les phases\nainsi que les jalons intermédiaires\n- Rapport final"
	got := lex.extractDeliverables(text)
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	if !strings.Contains(got[0], "jalons intermédiaires") {
		t.Fatalf("wrapped line not merged: %q", got[0])
	}
}

func TestExtractListUnderHeading_StopsAtCapsHeading(t *testing.T) {
	lex := DefaultLexicon()
	text := "Livrables\n- Rapport d'étape mensuel\nMODALITÉS DE PAIEMENT\n- Facture trimestrielle"
	got := lex.extractDeliverables(text)
	if len(got) != 1 {
		t.Fatalf("items captured past the section boundary: %v", got)
	}
}

func TestExtractListUnderHeading_UnbulletedTableRow(t *testing.T) {
	lex := DefaultLexicon()
	text := "Documents à fournir\nAttestation de Revenu Québec valide au moment du dépôt\n\nSection suivante"
	got := lex.extractSubmissionDocuments(text)
	if len(got) != 1 || got[0] != "Attestation de Revenu Québec valide au moment du dépôt" {
		t.Fatalf("got %v", got)
	}
}

func TestExtractListUnderHeading_MissingHeading(t *testing.T) {
	lex := DefaultLexicon()
	if got := lex.extractDeliverables("Aucune section correspondante."); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestExtractEvaluationCriteria_WeightedFirst(t *testing.T) {
	lex := DefaultLexicon()
	text := "Critères d'évaluation\n- Compréhension du mandat et approche proposée\n- Qualité de la méthodologie 40%\n- Expérience de la firme 30 points"
	got := lex.extractEvaluationCriteria(text)
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	if !strings.Contains(got[0], "40%") {
		t.Fatalf("weighted item not surfaced first: %v", got)
	}
	if strings.Contains(got[2], "%") || strings.Contains(got[2], "points") {
		t.Fatalf("unweighted item should come last: %v", got)
	}
}

func TestExtractMandatoryRequirements_TableRow(t *testing.T) {
	text := "Exigences\nLe soumissionnaire doit détenir une accréditation ISO 9001.\nEssentiel (obligatoire)\nAutre contenu"
	got := extractMandatoryRequirements(text)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0] != "Le soumissionnaire doit détenir une accréditation ISO 9001." {
		t.Fatalf("got %q", got[0])
	}
}

func TestExtractMandatoryRequirements_ShortPrevLineConcatenated(t *testing.T) {
	text := "L'entreprise doit être inscrite au registre des entreprises\nadmissibles du Québec.\nEssentiel (obligatoire)"
	got := extractMandatoryRequirements(text)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if !strings.HasPrefix(got[0], "L'entreprise doit être inscrite") {
		t.Fatalf("got %q", got[0])
	}
}

func TestExtractMandatoryRequirements_Fallback(t *testing.T) {
	text := "Le fournisseur doit fournir une garantie, condition obligatoire du contrat."
	got := extractMandatoryRequirements(text)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestExtractMandatoryRequirements_Dedup(t *testing.T) {
	text := "Le soumissionnaire doit détenir une accréditation ISO 9001.\nEssentiel (obligatoire)\nLe soumissionnaire DOIT détenir une accréditation ISO 9001.\nEssentiel (obligatoire)"
	got := extractMandatoryRequirements(text)
	if len(got) != 1 {
		t.Fatalf("case-insensitive duplicate kept: %v", got)
	}
}
