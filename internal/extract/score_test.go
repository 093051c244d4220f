package extract

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func TestComputeConfidence_Bounds(t *testing.T) {
	if got := computeConfidence(0, Fields{}); got != 0.25 {
		t.Fatalf("empty fields: %v", got)
	}

	rich := Fields{
		Buyer:                 "Ministère de l'Éducation",
		ReferenceNumber:       "AO-2024-001",
		ScopeSummary:          "Services TI",
		KeyDates:              KeyDates{Closing: strptr("2025-03-12")},
		MandatoryRequirements: []string{"x"},
		Deliverables:          []string{"x"},
		EvaluationCriteria:    []string{"x"},
		SubmissionDocuments:   []string{"x"},
	}
	got := computeConfidence(100000, rich)
	if got != 0.95 {
		t.Fatalf("rich fields should clamp to 0.95, got %v", got)
	}
}

func TestComputeFit_KeywordTiers(t *testing.T) {
	lex := DefaultLexicon()
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	none := lex.computeFit(Fields{Title: "Travaux de pavage"}, nil, now)
	if none.Score != 50 || none.Verdict != VerdictMaybe {
		t.Fatalf("neutral: %+v", none)
	}

	two := lex.computeFit(Fields{Title: "Services informatiques", ScopeSummary: "Implantation ERP Oracle"}, nil, now)
	if two.Score != 62 || two.Verdict != VerdictGo {
		t.Fatalf("two keyword hits: %+v", two)
	}
	if len(two.Reasons) == 0 {
		t.Fatal("expected a reason for the keyword bonus")
	}
}

func TestComputeFit_PastClosingPenalty(t *testing.T) {
	lex := DefaultLexicon()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := Fields{KeyDates: KeyDates{Closing: strptr("2025-01-01")}}
	fit := lex.computeFit(f, nil, now)
	if fit.Score != 20 || fit.Verdict != VerdictNoGo {
		t.Fatalf("past closing: %+v", fit)
	}
}

func TestComputeFit_ShortDeadlinePenalty(t *testing.T) {
	lex := DefaultLexicon()
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	f := Fields{KeyDates: KeyDates{Closing: strptr("2025-03-12")}}
	fit := lex.computeFit(f, nil, now)
	if fit.Score != 40 {
		t.Fatalf("short deadline: %+v", fit)
	}
}

func TestComputeFit_SecurityPenaltyAndProfileBonus(t *testing.T) {
	lex := DefaultLexicon()
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	sec := lex.computeFit(Fields{SecurityTerms: []string{"cote de sécurité requise"}}, nil, now)
	if sec.Score != 42 {
		t.Fatalf("security penalty: %+v", sec)
	}

	profile := &Profile{MainSpecialty: "Intégration ERP et data", ActivityType: "Services conseils"}
	boosted := lex.computeFit(Fields{}, profile, now)
	if boosted.Score != 55 {
		t.Fatalf("profile bonus: %+v", boosted)
	}
}

func TestComputeFit_ScoreStaysInBounds(t *testing.T) {
	lex := DefaultLexicon()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := Fields{
		KeyDates:      KeyDates{Closing: strptr("2024-01-01")},
		SecurityTerms: []string{"secret"},
	}
	fit := lex.computeFit(f, nil, now)
	if fit.Score < 0 || fit.Score > 100 {
		t.Fatalf("out of bounds: %+v", fit)
	}
}

func TestComputeFit_Deterministic(t *testing.T) {
	lex := DefaultLexicon()
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	f := Fields{Title: "Services TI", MandatoryRequirements: []string{"x"}}
	a := lex.computeFit(f, nil, now)
	b := lex.computeFit(f, nil, now)
	if a.Score != b.Score || a.Verdict != b.Verdict || len(a.Reasons) != len(b.Reasons) {
		t.Fatalf("not deterministic: %+v vs %+v", a, b)
	}
}
