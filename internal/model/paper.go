package model

import "time"

// PaperStatus represents the read state of a paper.
type PaperStatus string

const (
	PaperStatusNew  PaperStatus = "new"
	PaperStatusRead PaperStatus = "read"
)

// Paper is a fetched publication with optional LLM relevance analysis.
type Paper struct {
	ID          int64
	Source      string // "arxiv" or "semantic_scholar"
	SourceID    string
	Title       string
	Abstract    string
	URL         string
	Authors     string
	PublishedAt string // source-supplied, kept verbatim
	FetchedAt   time.Time
	Relevance   *float64 // 0-100, nil until analyzed
	Summary     string
	Tags        string
	Status      PaperStatus
}
