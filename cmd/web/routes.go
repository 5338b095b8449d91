package main

import (
	"fmt"
	"net/http"

	"github.com/AdamBeresnev/lol-cup/internal/httputil"
	"github.com/AdamBeresnev/lol-cup/internal/service"
	"github.com/AdamBeresnev/lol-cup/views"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	flashKey              = "flash"
	defaultTournamentName = "Novo Torneio"
)

type app struct {
	tournaments    *service.TournamentService
	registrations  *service.RegistrationService
	sessionManager *scs.SessionManager
	allowedOrigins []string
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(a.sessionManager.LoadAndSave)

	r.Get("/", a.index)
	r.Post("/criar-torneio", a.createTournament)
	r.Post("/adicionar-jogador", a.addPlayer)
	r.Post("/gerar-chaveamento", a.generateBracket)
	r.Post("/registrar-vencedor", a.recordWinner)

	return r
}

func (a *app) index(w http.ResponseWriter, r *http.Request) {
	tournament, err := a.tournaments.GetTournament(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to load tournament", err)
		return
	}

	flash := a.sessionManager.PopString(r.Context(), flashKey)
	if err := views.Render(w, r, views.Index(views.PrepareIndexData(tournament, flash))); err != nil {
		httputil.InternalServerError(w, "Failed to render index", err)
	}
}

func (a *app) createTournament(w http.ResponseWriter, r *http.Request) {
	fields, err := httputil.ReadFields(w, r)
	if err != nil {
		httputil.Failure(w, msgInvalidBody, err)
		return
	}

	name := fields.String("nome")
	if name == "" {
		name = defaultTournamentName
	}

	if _, err := a.tournaments.CreateTournament(r.Context(), name); err != nil {
		httputil.InternalServerError(w, "Failed to create tournament", err)
		return
	}
	a.succeed(w, r, fmt.Sprintf("Torneio '%s' criado com sucesso!", name))
}

func (a *app) addPlayer(w http.ResponseWriter, r *http.Request) {
	fields, err := httputil.ReadFields(w, r)
	if err != nil {
		httputil.Failure(w, msgInvalidBody, err)
		return
	}

	player := fields.String("nome_jogador")
	email := fields.String("email")
	amount, hasAmount, amountErr := fields.Float("valor")
	if player == "" || email == "" || !hasAmount || (amountErr == nil && amount == 0) {
		httputil.Failure(w, msgMissingPlayerFields, nil)
		return
	}
	if amountErr != nil || amount < 0 {
		httputil.Failure(w, msgInvalidAmount, amountErr)
		return
	}

	registration, err := a.registrations.Register(r.Context(), player, email, amount)
	if err != nil {
		a.fail(w, "Failed to register player", err)
		return
	}

	extra := map[string]any{"id": registration.PaymentID}
	if registration.PointOfInteraction != nil {
		extra["point_of_interaction"] = registration.PointOfInteraction
	}
	// The page keeps this reply inline next to the QR code instead of reloading.
	msg := fmt.Sprintf("Pagamento criado para %s. Aguardando a aprovação. Player adicionado ao torneio.", player)
	httputil.Success(w, msg, extra)
}

func (a *app) generateBracket(w http.ResponseWriter, r *http.Request) {
	if _, err := a.tournaments.GenerateBracket(r.Context()); err != nil {
		a.fail(w, "Failed to generate bracket", err)
		return
	}
	a.succeed(w, r, "Chaveamento gerado com sucesso!")
}

func (a *app) recordWinner(w http.ResponseWriter, r *http.Request) {
	fields, err := httputil.ReadFields(w, r)
	if err != nil {
		httputil.Failure(w, msgInvalidBody, err)
		return
	}

	winner := fields.String("vencedor")
	prize, hasPrize, prizeErr := fields.Float("premio")
	if winner == "" || !hasPrize {
		httputil.Failure(w, msgMissingWinnerFields, nil)
		return
	}
	if prizeErr != nil {
		httputil.Failure(w, msgInvalidPrize, prizeErr)
		return
	}

	if _, err := a.tournaments.RecordWinner(r.Context(), winner, prize); err != nil {
		a.fail(w, "Failed to record winner", err)
		return
	}
	msg := fmt.Sprintf("Vencedor '%s' e prêmio de %s registrados!", winner, views.FormatMoney(prize))
	a.succeed(w, r, msg)
}

// succeed answers a mutation the page follows with a reload, so the message
// is shown once as a flash.
func (a *app) succeed(w http.ResponseWriter, r *http.Request, msg string) {
	a.sessionManager.Put(r.Context(), flashKey, msg)
	httputil.Success(w, msg, nil)
}

func (a *app) fail(w http.ResponseWriter, logMsg string, err error) {
	msg, ok := userMessage(err)
	if !ok {
		httputil.InternalServerError(w, logMsg, err)
		return
	}
	httputil.Failure(w, msg, err)
}
