package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AdamBeresnev/lol-cup/internal/bracket"
)

const DefaultDataFile = "torneio_lol_data.json"

type JSONFileStore struct {
	path string
}

func NewJSONFileStore(path string) *JSONFileStore {
	if path == "" {
		path = DefaultDataFile
	}
	return &JSONFileStore{path: path}
}

func (s *JSONFileStore) Path() string {
	return s.path
}

func (s *JSONFileStore) Load(ctx context.Context) (*bracket.Tournament, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return decodeTournament(data)
}

// Save writes to a temp file in the same directory and renames it over the
// document so readers never see a half written file.
func (s *JSONFileStore) Save(ctx context.Context, tournament *bracket.Tournament) error {
	data, err := encodeTournament(tournament)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
