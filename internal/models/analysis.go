package models

import (
	"time"

	"github.com/mbeaulieu/ao-analyzer/internal/extract"
)

// FileMeta describes one uploaded document.
type FileMeta struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int    `json:"size_bytes"`
}

// AnalysisInputs is the manifest of what the caller sent.
type AnalysisInputs struct {
	TenderID  *int64     `json:"tender_id"`
	Notes     string     `json:"notes,omitempty"`
	FileCount int        `json:"file_count"`
	Files     []FileMeta `json:"files"`
}

// TenderAnalysis is the aggregate produced by one analysis call. It is
// created once and never mutated afterwards.
type TenderAnalysis struct {
	ID        string         `json:"analysis_id"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	Inputs    AnalysisInputs `json:"inputs"`
	Result    extract.Result `json:"result"`
}
