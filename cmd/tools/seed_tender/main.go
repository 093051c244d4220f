// Command seed_tender upserts one tender row into the registry, for local
// testing of registry-backed analyses.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/mbeaulieu/ao-analyzer/internal/db"
	"github.com/mbeaulieu/ao-analyzer/internal/registry"
)

func main() {
	var (
		id        = flag.Int64("id", 0, "tender id (required)")
		title     = flag.String("title", "", "tender title")
		url       = flag.String("url", "", "source url")
		portal    = flag.String("portal", "", "portal name (seao, merx, ...)")
		published = flag.String("published", "", "publication date, YYYY-MM-DD")
		buyer     = flag.String("buyer", "", "buying organization")
		country   = flag.String("country", "", "country")
		region    = flag.String("region", "", "region")
	)
	flag.Parse()

	if *id == 0 {
		log.Fatal("-id is required")
	}

	rec := registry.Record{ID: *id}
	setIfNotEmpty(&rec.Title, *title)
	setIfNotEmpty(&rec.URL, *url)
	setIfNotEmpty(&rec.PortalName, *portal)
	setIfNotEmpty(&rec.Buyer, *buyer)
	setIfNotEmpty(&rec.Country, *country)
	setIfNotEmpty(&rec.Region, *region)
	if *published != "" {
		ts, err := time.Parse("2006-01-02", *published)
		if err != nil {
			log.Fatalf("invalid -published date: %v", err)
		}
		rec.PublishedAt = &ts
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := registry.NewStore(pool).UpsertTender(ctx, rec); err != nil {
		log.Fatal(err)
	}
	log.Printf("Tender %d saved", *id)
}

func setIfNotEmpty(dst **string, v string) {
	if v != "" {
		*dst = &v
	}
}
