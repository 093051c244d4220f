package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mbeaulieu/ao-analyzer/internal/db"
)

func main() {
	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, `
		SELECT id, title, portal_name, published_at, buyer
		FROM tenders ORDER BY published_at DESC NULLS LAST LIMIT 25
	`)
	if err != nil {
		log.Fatal(err)
	}
	defer rows.Close()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Title", "Portal", "Published", "Buyer"})

	for rows.Next() {
		var id int64
		var title, portal, buyer *string
		var publishedAt *time.Time

		if err := rows.Scan(&id, &title, &portal, &publishedAt, &buyer); err != nil {
			log.Printf("Scan error: %v", err)
			continue
		}

		published := ""
		if publishedAt != nil {
			published = publishedAt.Format("2006-01-02")
		}
		t.AppendRow(table.Row{id, strOr(title), strOr(portal), published, strOr(buyer)})
	}
	t.Render()
}

func strOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
