package repository

import (
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

// CreateOptions holds the parameters for inserting a task row.
type CreateOptions struct {
	Title     string
	DueAt     *time.Time
	CreatedAt time.Time
	Source    string
	Notes     string
}

// ListOptions holds the parameters for listing task rows.
type ListOptions struct {
	Status model.TaskStatus
	Limit  int // default 20
}
