package repository

import (
	"context"
	"database/sql"
	"fmt"

	"rift-rewind/internal/constants"
	"rift-rewind/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// RosterRepository backs the demo roster endpoint. It exists so the handler
// gets an injected, scoped store instead of process-global state.
type RosterRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewRosterRepository(db *sql.DB, logger zerolog.Logger) *RosterRepository {
	return &RosterRepository{db: db, logger: logger}
}

func (r *RosterRepository) List(ctx context.Context) ([]domain.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM roster ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("listing roster: %w", err)
	}
	defer rows.Close()

	var entries []domain.RosterEntry
	for rows.Next() {
		var e domain.RosterEntry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scanning roster entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *RosterRepository) Add(ctx context.Context, name string) (*domain.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generating roster id: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, "INSERT INTO roster (id, name) VALUES (?, ?)", id, name); err != nil {
		return nil, fmt.Errorf("inserting roster entry: %w", err)
	}

	r.logger.Debug().Str("id", id).Str("name", name).Msg("roster entry added")
	return &domain.RosterEntry{ID: id, Name: name}, nil
}
