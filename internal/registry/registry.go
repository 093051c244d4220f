// Package registry looks up known tenders collected by the external portal
// sync. Records are sparse; analysis uses whatever columns are populated to
// backfill fields the document text did not yield.
package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record mirrors one row of the tenders table. Nil pointers mean unknown.
type Record struct {
	ID          int64      `json:"id"`
	Title       *string    `json:"title,omitempty"`
	URL         *string    `json:"url,omitempty"`
	PortalName  *string    `json:"portal_name,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Buyer       *string    `json:"buyer,omitempty"`
	Country     *string    `json:"country,omitempty"`
	Region      *string    `json:"region,omitempty"`
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetTender returns nil without error when the id is unknown; a missing
// registry row never blocks an analysis.
func (s *Store) GetTender(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	err := s.db.QueryRow(ctx, `
		SELECT id, title, url, portal_name, published_at, buyer, country, region
		FROM tenders WHERE id = $1
	`, id).Scan(
		&rec.ID, &rec.Title, &rec.URL, &rec.PortalName, &rec.PublishedAt,
		&rec.Buyer, &rec.Country, &rec.Region,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup tender %d: %w", id, err)
	}
	return &rec, nil
}

// UpsertTender stores a record synced from an external portal, keyed by id.
func (s *Store) UpsertTender(ctx context.Context, rec Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO tenders (id, title, url, portal_name, published_at, buyer, country, region)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			url = EXCLUDED.url,
			portal_name = EXCLUDED.portal_name,
			published_at = EXCLUDED.published_at,
			buyer = EXCLUDED.buyer,
			country = EXCLUDED.country,
			region = EXCLUDED.region
	`, rec.ID, rec.Title, rec.URL, rec.PortalName, rec.PublishedAt, rec.Buyer, rec.Country, rec.Region)
	if err != nil {
		return fmt.Errorf("upsert tender %d: %w", rec.ID, err)
	}
	return nil
}
