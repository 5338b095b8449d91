package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/AdamBeresnev/lol-cup/internal/bracket"
	"github.com/AdamBeresnev/lol-cup/internal/payment"
)

const DefaultPaymentMethodID = "pix"

// RegistrationService enrolls players only after the payment provider
// accepted the entry fee. Acceptance is checked once, at request time;
// a payment rejected later does not remove the player.
type RegistrationService struct {
	tournaments     *TournamentService
	gateway         payment.Gateway
	paymentMethodID string
}

func NewRegistrationService(tournaments *TournamentService, gateway payment.Gateway, paymentMethodID string) *RegistrationService {
	if paymentMethodID == "" {
		paymentMethodID = DefaultPaymentMethodID
	}
	return &RegistrationService{
		tournaments:     tournaments,
		gateway:         gateway,
		paymentMethodID: paymentMethodID,
	}
}

type Registration struct {
	Player             string
	Enrolled           bool
	PaymentID          int64
	PointOfInteraction json.RawMessage
}

func (s *RegistrationService) Register(ctx context.Context, player, email string, amount float64) (*Registration, error) {
	tournament, err := s.tournaments.GetTournament(ctx)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		return nil, bracket.ErrNoTournament
	}

	if s.gateway == nil {
		return nil, payment.ErrUnavailable
	}

	result, err := s.gateway.CreatePayment(ctx, payment.Request{
		Amount:          amount,
		Description:     fmt.Sprintf("Inscrição Campeonato LoL - %s", player),
		PaymentMethodID: s.paymentMethodID,
		PayerEmail:      email,
	})
	if err != nil {
		return nil, &payment.ServiceError{Err: err}
	}
	if !result.Created() {
		slog.Warn("payment rejected", "player", player, "status", result.StatusCode, "message", result.Message)
		return nil, &payment.ServiceError{StatusCode: result.StatusCode, Message: result.Message}
	}

	enrolled, err := s.tournaments.EnrollPlayer(ctx, player)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		slog.Info("payment created for a player already enrolled", "player", player, "payment_id", result.ID)
	}

	return &Registration{
		Player:             player,
		Enrolled:           enrolled,
		PaymentID:          result.ID,
		PointOfInteraction: result.PointOfInteraction,
	}, nil
}
