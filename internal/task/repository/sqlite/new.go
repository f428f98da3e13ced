package sqlite

import (
	"database/sql"
	"time"

	"github.com/blc10/research-assistant/internal/task/repository"
	pkgLog "github.com/blc10/research-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a sqlite-backed task repository.
func New(db *sql.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}

// Instants are stored as RFC3339 UTC strings; sqlite string ordering then
// matches chronological ordering.
func toDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toDBNull(t *time.Time) any {
	if t == nil {
		return nil
	}
	return toDB(*t)
}

func fromDB(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
