package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AdamBeresnev/lol-cup/internal/bracket"
)

// TournamentStore persists the single tournament document. Load returns
// nil and no error when nothing has been saved yet. Save always replaces
// the whole document.
type TournamentStore interface {
	Load(ctx context.Context) (*bracket.Tournament, error)
	Save(ctx context.Context, tournament *bracket.Tournament) error
}

func decodeTournament(data []byte) (*bracket.Tournament, error) {
	var tournament bracket.Tournament
	if err := json.Unmarshal(data, &tournament); err != nil {
		return nil, fmt.Errorf("failed to decode tournament: %w", err)
	}
	tournament.Normalize()
	return &tournament, nil
}

func encodeTournament(tournament *bracket.Tournament) ([]byte, error) {
	tournament.Normalize()
	data, err := json.MarshalIndent(tournament, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tournament: %w", err)
	}
	return append(data, '\n'), nil
}
