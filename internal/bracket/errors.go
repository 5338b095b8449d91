package bracket

import (
	"errors"
	"fmt"
)

var (
	ErrNoTournament        = errors.New("no active tournament")
	ErrUnknownPlayer       = errors.New("winner is not an enrolled player")
	ErrInsufficientPlayers = errors.New("at least 2 players are required to start a round")
	ErrPlayerNotInMatches  = errors.New("player not found in the current matches")
	ErrTournamentComplete  = errors.New("tournament already finished")
)

// TournamentCompleteError names the champion of a finished bracket.
type TournamentCompleteError struct {
	Champion string
}

func (e *TournamentCompleteError) Error() string {
	return fmt.Sprintf("tournament already finished, champion: %s", e.Champion)
}

func (e *TournamentCompleteError) Is(target error) bool {
	return target == ErrTournamentComplete
}
