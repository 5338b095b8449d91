package main

import (
	"errors"
	"fmt"

	"github.com/AdamBeresnev/lol-cup/internal/bracket"
	"github.com/AdamBeresnev/lol-cup/internal/payment"
)

const (
	msgNoTournament        = "Nenhum torneio ativo. Crie um primeiro."
	msgMissingPlayerFields = "Dados de jogador, email ou valor faltando."
	msgInvalidAmount       = "Valor da inscrição inválido."
	msgPaymentUnavailable  = "A integração de pagamento não está configurada."
	msgMissingWinnerFields = "Nome do vencedor ou prêmio faltando."
	msgInvalidPrize        = "Prêmio inválido."
	msgInvalidBody         = "Dados da requisição inválidos."
)

// userMessage maps domain errors to the message shown to the caller.
// ok is false for errors with no recovery path, those become a 500.
func userMessage(err error) (msg string, ok bool) {
	var complete *bracket.TournamentCompleteError
	var paymentErr *payment.ServiceError

	switch {
	case errors.Is(err, bracket.ErrNoTournament):
		return msgNoTournament, true
	case errors.Is(err, bracket.ErrInsufficientPlayers):
		return "É necessário no mínimo 2 jogadores para iniciar uma rodada.", true
	case errors.As(err, &complete):
		return fmt.Sprintf("O torneio já terminou! O campeão é: %s", complete.Champion), true
	case errors.Is(err, bracket.ErrUnknownPlayer):
		return "Vencedor não é um jogador válido.", true
	case errors.Is(err, bracket.ErrPlayerNotInMatches):
		return "Jogador não encontrado nas partidas atuais.", true
	case errors.Is(err, payment.ErrUnavailable):
		return msgPaymentUnavailable, true
	case errors.As(err, &paymentErr):
		if paymentErr.Err != nil {
			return fmt.Sprintf("Ocorreu um erro no pagamento: %v. Verifique se o seu Access Token está correto.", paymentErr.Err), true
		}
		return fmt.Sprintf("Erro ao criar pagamento: %s", paymentErr.Message), true
	default:
		return "", false
	}
}
