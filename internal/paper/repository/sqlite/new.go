package sqlite

import (
	"database/sql"
	"time"

	"github.com/blc10/research-assistant/internal/paper/repository"
	pkgLog "github.com/blc10/research-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a sqlite-backed paper repository.
func New(db *sql.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}

func toDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
