package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/AdamBeresnev/lol-cup/internal/bracket"
	"github.com/AdamBeresnev/lol-cup/internal/payment"
)

// memoryStore round-trips through JSON so tests never share slices with
// the persisted copy.
type memoryStore struct {
	doc     []byte
	saves   int
	saveErr error
	loadErr error
}

func (m *memoryStore) Load(ctx context.Context) (*bracket.Tournament, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.doc == nil {
		return nil, nil
	}
	var tournament bracket.Tournament
	if err := json.Unmarshal(m.doc, &tournament); err != nil {
		return nil, err
	}
	tournament.Normalize()
	return &tournament, nil
}

func (m *memoryStore) Save(ctx context.Context, tournament *bracket.Tournament) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := json.Marshal(tournament)
	if err != nil {
		return err
	}
	m.doc = data
	m.saves++
	return nil
}

func (m *memoryStore) current() *bracket.Tournament {
	tournament, _ := m.Load(context.Background())
	return tournament
}

var errDiskFull = errors.New("disk full")

func identity(int, func(i, j int)) {}

type fakeGateway struct {
	result   *payment.Result
	err      error
	requests []payment.Request
}

func (f *fakeGateway) CreatePayment(ctx context.Context, req payment.Request) (*payment.Result, error) {
	f.requests = append(f.requests, req)
	return f.result, f.err
}
