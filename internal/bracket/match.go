package bracket

type Match struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

func (m Match) IsBye() bool {
	return m.Player2 == Bye
}

func (m Match) Has(player string) bool {
	return m.Player1 == player || m.Player2 == player
}
