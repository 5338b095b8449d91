package views

import (
	"fmt"

	"github.com/AdamBeresnev/lol-cup/internal/bracket"
)

const noTournamentName = "Nenhum torneio ativo"

type IndexData struct {
	Name         string
	Players      []string
	Matches      []bracket.Match
	CurrentRound int
	Ranking      []bracket.PrizeEntry
	Champion     string
	Flash        string
}

// PrepareIndexData builds the page model. A nil tournament renders the
// empty placeholder state.
func PrepareIndexData(tournament *bracket.Tournament, flash string) IndexData {
	if tournament == nil {
		tournament = bracket.NewTournament(noTournamentName)
	}

	data := IndexData{
		Name:         tournament.Name,
		Players:      tournament.Players,
		Matches:      tournament.Matches,
		CurrentRound: tournament.CurrentRound,
		Ranking:      tournament.Ranking(),
		Flash:        flash,
	}
	if champion, ok := tournament.Champion(); ok {
		data.Champion = champion
	}
	return data
}

func FormatMoney(amount float64) string {
	return fmt.Sprintf("R$%.2f", amount)
}
