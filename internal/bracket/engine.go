package bracket

import (
	"math/rand"
)

// Shuffler permutes n elements through swap, same contract as rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

// RandomShuffle is unseeded on purpose so every draw is different.
var RandomShuffle Shuffler = rand.Shuffle

// Enroll adds a player with a zero prize. Returns false when the name is
// already on the roster, which leaves the tournament untouched.
func (t *Tournament) Enroll(name string) bool {
	if t.HasPlayer(name) {
		return false
	}
	t.Players = append(t.Players, name)
	if t.Prizes == nil {
		t.Prizes = map[string]float64{}
	}
	t.Prizes[name] = 0
	return true
}

// GenerateBracket draws the next round from the pool. Round 1 pairs the
// roster, later rounds pair the winners collected in ActivePlayers.
func (t *Tournament) GenerateBracket(shuffle Shuffler) error {
	pool := t.Pool()

	if t.CurrentRound == 0 && len(pool) < 2 {
		return ErrInsufficientPlayers
	}
	if t.CurrentRound > 0 && len(pool) <= 1 {
		champion := NoChampion
		if len(pool) == 1 {
			champion = pool[0]
		}
		return &TournamentCompleteError{Champion: champion}
	}

	// Shuffle a copy, the roster keeps enrollment order
	drawn := make([]string, len(pool))
	copy(drawn, pool)
	if shuffle == nil {
		shuffle = RandomShuffle
	}
	shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})

	t.Matches = pairUp(drawn)
	t.CurrentRound++
	t.ActivePlayers = []string{}
	return nil
}

func pairUp(players []string) []Match {
	matches := make([]Match, 0, (len(players)+1)/2)
	for i := 0; i < len(players); i += 2 {
		if i+1 < len(players) {
			matches = append(matches, Match{Player1: players[i], Player2: players[i+1]})
		} else {
			matches = append(matches, Match{Player1: players[i], Player2: Bye})
		}
	}
	return matches
}

// RecordWinner credits the prize and advances the winner out of every
// pending match they appear in.
//
// The prize is credited before the match lookup, so ErrPlayerNotInMatches
// comes back with the prize already applied. Callers persist in that case.
func (t *Tournament) RecordWinner(winner string, prize float64) error {
	if _, ok := t.Prizes[winner]; !ok {
		return ErrUnknownPlayer
	}

	t.Prizes[winner] += prize

	found := false
	pending := make([]Match, 0, len(t.Matches))
	for _, m := range t.Matches {
		if m.Has(winner) {
			t.ActivePlayers = append(t.ActivePlayers, winner)
			found = true
			continue
		}
		pending = append(pending, m)
	}
	t.Matches = pending

	if !found {
		return ErrPlayerNotInMatches
	}
	return nil
}
