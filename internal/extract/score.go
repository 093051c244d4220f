package extract

import (
	"strings"
	"time"
)

// computeConfidence aggregates presence of the signal fields and the text
// volume into a bounded reliability estimate. Longer documents extract more
// reliably, so length buys confidence before any field does.
func computeConfidence(textChars int, f Fields) float64 {
	score := 0.25
	if textChars > 20000 {
		score += 0.20
	}
	if textChars > 80000 {
		score += 0.15
	}

	if f.KeyDates.Closing != nil {
		score += 0.10
	}
	if f.Buyer != "" {
		score += 0.10
	}
	if f.ReferenceNumber != "" {
		score += 0.06
	}
	if f.ScopeSummary != "" {
		score += 0.08
	}

	if len(f.MandatoryRequirements) > 0 {
		score += 0.10
	}
	if len(f.Deliverables) > 0 {
		score += 0.08
	}
	if len(f.EvaluationCriteria) > 0 {
		score += 0.08
	}
	if len(f.SubmissionDocuments) > 0 {
		score += 0.07
	}

	if score < 0.2 {
		score = 0.2
	}
	if score > 0.95 {
		score = 0.95
	}
	return score
}

func keywordOverlap(hay string, needles []string) int {
	low := strings.ToLower(hay)
	n := 0
	for _, k := range needles {
		if strings.Contains(low, strings.ToLower(k)) {
			n++
		}
	}
	return n
}

const maxFitReasons = 8

// computeFit produces the advisory go/no-go signal. It does not decide for
// the user; every adjustment carries a reason so the verdict stays auditable.
// The now parameter anchors deadline proximity, keeping the scorer a pure
// function of its inputs.
func (l *Lexicon) computeFit(f Fields, profile *Profile, now time.Time) Fit {
	score := 50
	var reasons []string

	combined := f.Title + "\n" + f.ScopeSummary
	itHits := keywordOverlap(combined, l.FitKeywords)
	switch {
	case itHits >= 2:
		score += 12
		reasons = append(reasons, "Le contenu semble aligné avec des mots-clés TI/ERP/IA.")
	case itHits == 1:
		score += 5
		reasons = append(reasons, "Le contenu contient au moins un mot-clé TI/ERP/IA.")
	}

	if len(f.MandatoryRequirements) > 0 {
		score += 3
		reasons = append(reasons, "Des exigences obligatoires ont été détectées (à valider).")
	}

	if f.KeyDates.Closing != nil {
		if closing, err := time.Parse("2006-01-02", *f.KeyDates.Closing); err == nil {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			delta := int(closing.Sub(today).Hours() / 24)
			if delta < 0 {
				score -= 30
				reasons = append(reasons, "Date de clôture passée (vérifier si addenda / prolongation).")
			} else if delta <= 7 {
				score -= 10
				reasons = append(reasons, "Délai court avant clôture (risque opérationnel).")
			}
		}
	}

	if len(f.SecurityTerms) > 0 {
		score -= 8
		reasons = append(reasons, "Mention de sécurité/habilitation détectée (peut être bloquant selon votre statut).")
	}

	if profile != nil {
		specialty := profile.MainSpecialty + " " + profile.ActivityType
		if keywordOverlap(specialty, l.ProfileKeywords) > 0 {
			score += 5
			reasons = append(reasons, "Ton profil utilisateur (spécialité) semble pertinent pour ce type d'AO.")
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	verdict := VerdictNoGo
	switch {
	case score >= 60:
		verdict = VerdictGo
	case score >= 45:
		verdict = VerdictMaybe
	}

	if len(reasons) > maxFitReasons {
		reasons = reasons[:maxFitReasons]
	}
	if reasons == nil {
		reasons = []string{}
	}
	return Fit{Score: score, Verdict: verdict, Reasons: reasons}
}
