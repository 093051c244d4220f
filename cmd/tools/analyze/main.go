// Command analyze runs the extraction pipeline on local documents and
// prints the key findings, without a database or HTTP server.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mbeaulieu/ao-analyzer/internal/convert"
	"github.com/mbeaulieu/ao-analyzer/internal/extract"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <document> [document...]", filepath.Base(os.Args[0]))
	}

	var parts []string
	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read %s: %v", path, err)
		}
		text, err := convert.Decode(filepath.Base(path), "", data)
		if err != nil {
			log.Fatalf("decode %s: %v", path, err)
		}
		parts = append(parts, fmt.Sprintf("\n\n===== FILE: %s =====\n\n%s", filepath.Base(path), text))
	}

	res := extract.Analyze(strings.Join(parts, "\n"), extract.Options{Now: time.Now().UTC()})

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Champ", "Valeur"})
	t.AppendRow(table.Row{"Référence", res.Fields.ReferenceNumber})
	t.AppendRow(table.Row{"Acheteur", res.Fields.Buyer})
	t.AppendRow(table.Row{"Valeur estimée", res.Fields.EstimatedValue})
	t.AppendRow(table.Row{"Type", res.Fields.ContractType})
	t.AppendRow(table.Row{"Langue", res.Fields.Language})
	t.AppendRow(table.Row{"Clôture", deref(res.Fields.KeyDates.Closing)})
	t.AppendRow(table.Row{"Questions", deref(res.Fields.KeyDates.QuestionsDeadline)})
	t.AppendRow(table.Row{"Visite", deref(res.Fields.KeyDates.SiteVisit)})
	t.AppendRow(table.Row{"Addenda", deref(res.Fields.KeyDates.AddendaDeadline)})
	t.AppendRow(table.Row{"Ouverture", deref(res.Fields.KeyDates.Opening)})
	t.AppendRow(table.Row{"Exigences obligatoires", len(res.Fields.MandatoryRequirements)})
	t.AppendRow(table.Row{"Livrables", len(res.Fields.Deliverables)})
	t.AppendRow(table.Row{"Critères d'évaluation", len(res.Fields.EvaluationCriteria)})
	t.AppendRow(table.Row{"Documents de soumission", len(res.Fields.SubmissionDocuments)})
	t.AppendRow(table.Row{"Confiance", fmt.Sprintf("%.2f", res.Confidence)})
	t.AppendRow(table.Row{"FIT", fmt.Sprintf("%s (%d)", res.Fit.Verdict, res.Fit.Score)})
	t.Render()

	fmt.Println()
	fmt.Println(res.Summary)
	for _, r := range res.Fit.Reasons {
		fmt.Println("- " + r)
	}
	for _, w := range res.Warnings {
		fmt.Println("! " + w)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
