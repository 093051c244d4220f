package extract

import (
	"strings"
	"testing"
)

func TestPickBuyer_AnchoredLine(t *testing.T) {
	lex := DefaultLexicon()
	text := "Organisme\nMinistère de la Cybersécurité et du Numérique\nAdresse: 880 chemin Sainte-Foy"
	got := lex.pickBuyer(text)
	if got != "Ministère de la Cybersécurité et du Numérique" {
		t.Fatalf("got %q", got)
	}
}

func TestPickBuyer_DenylistFiltersTableArtifacts(t *testing.T) {
	lex := DefaultLexicon()
	text := "Organisme\nEssentiel (obligatoire)\nhttps://www.example.org/appel\nCommission scolaire des Navigateurs"
	got := lex.pickBuyer(text)
	if got != "Commission scolaire des Navigateurs" {
		t.Fatalf("got %q", got)
	}
}

func TestPickBuyer_StructuralFallback(t *testing.T) {
	lex := DefaultLexicon()
	got := lex.pickBuyer("La Ville de Gatineau sollicite des propositions pour des services TI.")
	if !strings.HasPrefix(got, "Ville de Gatineau") {
		t.Fatalf("got %q", got)
	}
}

func TestPickBuyer_CaseFoldWidthDrift(t *testing.T) {
	lex := DefaultLexicon()
	// The anchor offset comes from the lowered copy, which is wider here
	// than the original; the window around it must clamp, not panic.
	text := strings.Repeat("Ⱥ", 500) + "\nOrganisme\nMinistère des Transports du Québec"
	if got := lex.pickBuyer(text); got == "" {
		t.Fatal("buyer not found")
	}
}

func TestPickBuyer_Absent(t *testing.T) {
	lex := DefaultLexicon()
	if got := lex.pickBuyer("Texte quelconque sans nom institutionnel."); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractReferenceNumber(t *testing.T) {
	if got := extractReferenceNumber("Numéro de référence : AO-2024-5678 publié au SEAO"); got != "AO-2024-5678" {
		t.Fatalf("got %q", got)
	}
	if got := extractReferenceNumber("RFP: 24-TI-0099 for managed services"); got != "24-TI-0099" {
		t.Fatalf("got %q", got)
	}
	if got := extractReferenceNumber("aucun identifiant ici"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractContractType_FirstMatchWins(t *testing.T) {
	lex := DefaultLexicon()
	if got := lex.extractContractType("Le présent appel d'offres vise un RFP de services."); got != "Appel d'offres" {
		t.Fatalf("got %q", got)
	}
	if got := lex.extractContractType("This RFQ covers hardware only."); got != "RFQ" {
		t.Fatalf("got %q", got)
	}
	if got := lex.extractContractType("contrat de gré à gré"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractLanguage(t *testing.T) {
	lex := DefaultLexicon()
	if got := lex.extractLanguage("La langue de la soumission est le français uniquement."); got != "FR" {
		t.Fatalf("got %q", got)
	}
	if got := lex.extractLanguage("Language of submission: English."); got != "EN" {
		t.Fatalf("got %q", got)
	}
	if got := lex.extractLanguage("Les soumissions peuvent être en français ou en anglais (langue au choix)."); got != "FR/EN" {
		t.Fatalf("got %q", got)
	}
	if got := lex.extractLanguage("Rien de pertinent."); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractEmailsAndPhones(t *testing.T) {
	frag := "Contact: Jean.Tremblay@quebec.ca ou jean.tremblay@quebec.ca, tél. 418-555-1234 ou (514) 555-9876"
	emails := extractEmails(frag)
	if len(emails) != 1 {
		t.Fatalf("emails not deduped case-insensitively: %v", emails)
	}
	phones := extractPhones(frag)
	if len(phones) != 2 {
		t.Fatalf("phones: %v", phones)
	}
}

func TestExtractSubmissionInfo(t *testing.T) {
	lex := DefaultLexicon()
	text := "Dépôt des soumissions via SEAO uniquement.\nAdresse: 1234 rue Principale, Québec (Québec) G1R 4Y8\nCourriel: depot@seao.ca"
	sub := lex.extractSubmissionInfo(text)
	if len(sub.Platforms) != 1 || sub.Platforms[0] != "SEAO" {
		t.Fatalf("platforms: %v", sub.Platforms)
	}
	if sub.AddressHint == "" || !strings.Contains(sub.AddressHint, "G1R 4Y8") {
		t.Fatalf("address hint: %q", sub.AddressHint)
	}
	if len(sub.Emails) != 1 {
		t.Fatalf("emails: %v", sub.Emails)
	}
}

func TestExtractSecurityTerms(t *testing.T) {
	lex := DefaultLexicon()
	text := "Section 9. Sécurité\nLe personnel affecté doit détenir une cote de sécurité de niveau Secret.\nLes locaux sont accessibles sur présentation d'une carte."
	got := lex.extractSecurityTerms(text)
	if len(got) != 1 || !strings.Contains(got[0], "cote de sécurité") {
		t.Fatalf("got %v", got)
	}
}

func TestExtractSecurityTerms_Absent(t *testing.T) {
	lex := DefaultLexicon()
	if got := lex.extractSecurityTerms("Aucune exigence particulière."); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
