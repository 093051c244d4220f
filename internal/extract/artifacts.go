package extract

import (
	"fmt"
	"strings"
)

// buildSummary assembles a short FR executive line from whatever was found.
func buildSummary(textChars int, f Fields) string {
	parts := []string{fmt.Sprintf("Texte extrait (%d caractères).", textChars)}
	if f.KeyDates.Closing != nil {
		parts = append(parts, fmt.Sprintf("Clôture: %s.", *f.KeyDates.Closing))
	}
	if f.Buyer != "" {
		parts = append(parts, fmt.Sprintf("Acheteur: %s.", f.Buyer))
	}
	if f.EstimatedValue != "" {
		parts = append(parts, fmt.Sprintf("Valeur estimée: %s.", f.EstimatedValue))
	}
	if f.ReferenceNumber != "" {
		parts = append(parts, fmt.Sprintf("Référence: %s.", f.ReferenceNumber))
	}
	if f.PortalName != "" {
		parts = append(parts, fmt.Sprintf("Portail: %s.", f.PortalName))
	}
	return strings.Join(parts, " ")
}

const checklistCap = 35

// buildComplianceChecklist mixes a static baseline with the detected dates,
// documents and mandatory requirements.
func buildComplianceChecklist(f Fields) []string {
	var checklist []string

	if f.KeyDates.QuestionsDeadline != nil {
		checklist = append(checklist, fmt.Sprintf("Soumettre les questions avant: %s", *f.KeyDates.QuestionsDeadline))
	}
	if f.KeyDates.Closing != nil {
		checklist = append(checklist, fmt.Sprintf("Déposer la soumission avant: %s", *f.KeyDates.Closing))
	}

	checklist = append(checklist,
		"Lettre de présentation (résumé exécutif + engagement)",
		"Méthodologie / approche + plan de travail",
		"Équipe proposée (CV + rôles + disponibilités)",
		"Références / projets similaires",
		"Offre financière (structure de prix / taux / hypothèses)",
		"Formulaires et attestations demandés (si applicables)",
	)

	docs := f.SubmissionDocuments
	if len(docs) > 15 {
		docs = docs[:15]
	}
	for _, d := range docs {
		checklist = append(checklist, "Doc requis: "+d)
	}

	reqs := f.MandatoryRequirements
	if len(reqs) > 12 {
		reqs = reqs[:12]
	}
	for _, m := range reqs {
		checklist = append(checklist, "Obligatoire: "+m)
	}

	return dedupeFold(checklist, checklistCap)
}

// buildProposalOutline renders the fixed response structure, inserting the
// criteria-alignment section when evaluation criteria were detected. Numbers
// are assigned after insertion so the outline never shows a gap.
func buildProposalOutline(f Fields) []string {
	sections := []string{
		"Résumé exécutif",
		"Compréhension du besoin et contexte",
		"Portée (scope) et hypothèses",
		"Approche/méthodologie (phases, activités, livrables)",
		"Gouvernance et gestion de projet (rôles, cadence, qualité)",
		"Équipe et compétences (CV, certifications, disponibilité)",
		"Planification (jalons, calendrier, dépendances)",
		"Livrables (détail + format)",
		"Gestion des risques (identification, mitigation)",
	}
	if len(f.EvaluationCriteria) > 0 {
		sections = append(sections, "Alignement sur les critères d'évaluation (réponse point par point)")
	}
	sections = append(sections,
		"Conformité aux exigences obligatoires (table de conformité)",
		"Références et expériences pertinentes",
		"Offre financière (structure de prix, hypothèses, limites)",
		"Annexes (formulaires, attestations, documents requis)",
	)

	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return out
}

const riskCap = 12

// buildRisks emits one entry per missing critical field plus the security
// flag. Each is an attention point, not a verdict.
func buildRisks(f Fields) []string {
	var risks []string
	if len(f.SecurityTerms) > 0 {
		risks = append(risks, "Exigences de sécurité/habilitation: vérifier admissibilité de l'équipe/entreprise.")
	}
	if f.EstimatedValue == "" {
		risks = append(risks, "Budget/valeur non détecté: risque sur l'effort vs. rentabilité; clarifier si possible.")
	}
	if len(f.SubmissionDocuments) == 0 {
		risks = append(risks, "Liste des documents requis non détectée: risque de non-conformité; valider dans le cahier.")
	}
	if len(f.MandatoryRequirements) == 0 {
		risks = append(risks, "Exigences obligatoires non identifiées automatiquement: revoir la section conformité.")
	}
	if f.KeyDates.SiteVisit != nil {
		risks = append(risks, "Visite / réunion: confirmer si obligatoire et prévoir la présence.")
	}
	if len(risks) > riskCap {
		risks = risks[:riskCap]
	}
	return risks
}

const actionCap = 20

// buildNextActions phrases one recommendation per field, differently for
// found versus missing.
func buildNextActions(f Fields) []string {
	var actions []string

	if f.KeyDates.Closing != nil {
		actions = append(actions, fmt.Sprintf("Valider la date de clôture (%s) dans le document", *f.KeyDates.Closing))
	} else {
		actions = append(actions, "Extraire les dates clés (clôture / visite / questions)")
	}

	if f.KeyDates.QuestionsDeadline != nil {
		actions = append(actions, fmt.Sprintf("Préparer et envoyer les questions avant (%s)", *f.KeyDates.QuestionsDeadline))
	}

	if len(f.SubmissionDocuments) == 0 {
		actions = append(actions, "Identifier la liste des documents à fournir (formulaires, attestations, annexes)")
	}
	if len(f.MandatoryRequirements) == 0 {
		actions = append(actions, "Identifier les exigences obligatoires (éliminatoires) et préparer une table de conformité")
	}
	if len(f.Deliverables) == 0 {
		actions = append(actions, "Lister les livrables attendus et les transformer en plan de projet / WBS")
	}
	if len(f.EvaluationCriteria) == 0 {
		actions = append(actions, "Lister les critères d'évaluation + pondération et répondre point par point")
	}
	if len(f.ContactEmails) == 0 {
		actions = append(actions, "Identifier le contact officiel (email/téléphone) pour clarifications")
	}

	return dedupeFold(actions, actionCap)
}
