package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AdamBeresnev/lol-cup/internal/bracket"
	"github.com/jmoiron/sqlx"
)

const (
	getDocumentQuery    = "SELECT body FROM tournament_document WHERE id = 1"
	upsertDocumentQuery = `
		INSERT INTO tournament_document (id, body, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
		body = excluded.body,
		updated_at = excluded.updated_at
	`
)

// SQLiteStore keeps the tournament document in a single row.
type SQLiteStore struct {
	db *sqlx.DB
}

func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context) (*bracket.Tournament, error) {
	var body string
	err := s.db.GetContext(ctx, &body, getDocumentQuery)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament: %w", err)
	}
	return decodeTournament([]byte(body))
}

func (s *SQLiteStore) Save(ctx context.Context, tournament *bracket.Tournament) error {
	data, err := encodeTournament(tournament)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, upsertDocumentQuery, string(data)); err != nil {
		return fmt.Errorf("failed to save tournament: %w", err)
	}
	return nil
}
