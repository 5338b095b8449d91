package bracket

import (
	"sort"
)

// Bye fills the second slot of a match when the pool has an odd size.
const Bye = "BYE"

// NoChampion is reported when a finished bracket has nobody left.
const NoChampion = "Nenhum"

type Tournament struct {
	Name          string             `json:"name"`
	Players       []string           `json:"players"`
	ActivePlayers []string           `json:"activePlayers"`
	Matches       []Match            `json:"matches"`
	Prizes        map[string]float64 `json:"prizes"`
	CurrentRound  int                `json:"currentRound"`
}

func NewTournament(name string) *Tournament {
	return &Tournament{
		Name:          name,
		Players:       []string{},
		ActivePlayers: []string{},
		Matches:       []Match{},
		Prizes:        map[string]float64{},
		CurrentRound:  0,
	}
}

// Normalize fills in collections missing from older documents,
// activePlayers in particular is absent before the first round.
func (t *Tournament) Normalize() {
	if t.Players == nil {
		t.Players = []string{}
	}
	if t.ActivePlayers == nil {
		t.ActivePlayers = []string{}
	}
	if t.Matches == nil {
		t.Matches = []Match{}
	}
	if t.Prizes == nil {
		t.Prizes = map[string]float64{}
	}
}

func (t *Tournament) HasPlayer(name string) bool {
	for _, p := range t.Players {
		if p == name {
			return true
		}
	}
	return false
}

// Pool is the set of names the next bracket is drawn from
func (t *Tournament) Pool() []string {
	if t.CurrentRound > 0 {
		return t.ActivePlayers
	}
	return t.Players
}

// Champion returns the winner once only one player is left after round 1.
func (t *Tournament) Champion() (string, bool) {
	if t.CurrentRound == 0 || len(t.Matches) > 0 || len(t.ActivePlayers) != 1 {
		return "", false
	}
	return t.ActivePlayers[0], true
}

type PrizeEntry struct {
	Player string
	Amount float64
}

// Ranking orders prizes by amount, ties broken by enrollment order.
func (t *Tournament) Ranking() []PrizeEntry {
	order := make(map[string]int, len(t.Players))
	for i, p := range t.Players {
		order[p] = i
	}

	ranking := make([]PrizeEntry, 0, len(t.Prizes))
	for player, amount := range t.Prizes {
		ranking = append(ranking, PrizeEntry{Player: player, Amount: amount})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Amount != ranking[j].Amount {
			return ranking[i].Amount > ranking[j].Amount
		}
		return order[ranking[i].Player] < order[ranking[j].Player]
	})
	return ranking
}
