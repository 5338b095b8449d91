package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/AdamBeresnev/lol-cup/internal/bracket"
	"github.com/AdamBeresnev/lol-cup/internal/store"
)

// TournamentService runs every engine operation as load, mutate, save.
// A single mutex serialises those cycles inside one process. Separate
// processes sharing a store can still lose updates.
type TournamentService struct {
	store   store.TournamentStore
	shuffle bracket.Shuffler
	mu      sync.Mutex
}

func NewTournamentService(store store.TournamentStore) *TournamentService {
	return &TournamentService{store: store, shuffle: bracket.RandomShuffle}
}

// WithShuffler swaps the bracket draw, tests use it for fixed pairings.
func (s *TournamentService) WithShuffler(shuffle bracket.Shuffler) *TournamentService {
	s.shuffle = shuffle
	return s
}

// GetTournament returns nil when no tournament was ever created.
func (s *TournamentService) GetTournament(ctx context.Context) (*bracket.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

func (s *TournamentService) CreateTournament(ctx context.Context, name string) (*bracket.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tournament := bracket.NewTournament(name)
	if err := s.store.Save(ctx, tournament); err != nil {
		return nil, err
	}
	slog.Info("tournament created", "name", name)
	return tournament, nil
}

// EnrollPlayer returns false without saving when the player is already in.
func (s *TournamentService) EnrollPlayer(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tournament, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	if !tournament.Enroll(name) {
		return false, nil
	}
	if err := s.store.Save(ctx, tournament); err != nil {
		return false, err
	}
	slog.Info("player enrolled", "player", name, "players", len(tournament.Players))
	return true, nil
}

func (s *TournamentService) GenerateBracket(ctx context.Context) (*bracket.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tournament, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := tournament.GenerateBracket(s.shuffle); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, tournament); err != nil {
		return nil, err
	}
	slog.Info("bracket generated", "round", tournament.CurrentRound, "matches", len(tournament.Matches))
	return tournament, nil
}

// RecordWinner saves even when the winner had no pending match, the prize
// credited before the lookup stays applied.
func (s *TournamentService) RecordWinner(ctx context.Context, winner string, prize float64) (*bracket.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tournament, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	recordErr := tournament.RecordWinner(winner, prize)
	if errors.Is(recordErr, bracket.ErrUnknownPlayer) {
		return nil, recordErr
	}

	if err := s.store.Save(ctx, tournament); err != nil {
		return nil, err
	}
	if recordErr != nil {
		slog.Warn("prize applied without a pending match", "player", winner, "prize", prize)
		return tournament, recordErr
	}

	slog.Info("winner recorded", "player", winner, "prize", prize, "pending", len(tournament.Matches))
	return tournament, nil
}

func (s *TournamentService) load(ctx context.Context) (*bracket.Tournament, error) {
	tournament, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		return nil, bracket.ErrNoTournament
	}
	return tournament, nil
}
