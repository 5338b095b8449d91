package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AdamBeresnev/lol-cup/internal/bracket"
	"github.com/AdamBeresnev/lol-cup/internal/payment"
	"github.com/AdamBeresnev/lol-cup/internal/service"
	"github.com/AdamBeresnev/lol-cup/internal/store"
	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	result *payment.Result
	err    error
}

func (g *stubGateway) CreatePayment(ctx context.Context, req payment.Request) (*payment.Result, error) {
	return g.result, g.err
}

type brokenStore struct{}

func (brokenStore) Load(ctx context.Context) (*bracket.Tournament, error) {
	return nil, errors.New("disk on fire")
}

func (brokenStore) Save(ctx context.Context, tournament *bracket.Tournament) error {
	return errors.New("disk on fire")
}

type testServer struct {
	handler http.Handler
	store   *store.JSONFileStore
}

func newTestServer(t *testing.T, gateway payment.Gateway) *testServer {
	t.Helper()

	jsonStore := store.NewJSONFileStore(filepath.Join(t.TempDir(), "cup.json"))
	tournaments := service.NewTournamentService(jsonStore).WithShuffler(func(int, func(i, j int)) {})

	handler := newRouter(&app{
		tournaments:    tournaments,
		registrations:  service.NewRegistrationService(tournaments, gateway, "pix"),
		sessionManager: scs.New(),
		allowedOrigins: []string{"*"},
	})
	return &testServer{handler: handler, store: jsonStore}
}

func (s *testServer) postJSON(t *testing.T, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec.Code, decoded
}

func (s *testServer) current(t *testing.T) *bracket.Tournament {
	t.Helper()
	tournament, err := s.store.Load(context.Background())
	require.NoError(t, err)
	return tournament
}

func createdGateway() *stubGateway {
	return &stubGateway{result: &payment.Result{
		StatusCode:         http.StatusCreated,
		ID:                 987,
		PointOfInteraction: json.RawMessage(`{"transaction_data":{"qr_code_base64":"iVBOR"}}`),
	}}
}

func TestCreateTournament(t *testing.T) {
	s := newTestServer(t, nil)

	code, body := s.postJSON(t, "/criar-torneio", `{"nome": "Cup"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "sucesso", body["status"])
	assert.Equal(t, "Torneio 'Cup' criado com sucesso!", body["mensagem"])
	assert.Equal(t, "Cup", s.current(t).Name)
}

func TestCreateTournament_DefaultName(t *testing.T) {
	s := newTestServer(t, nil)

	_, body := s.postJSON(t, "/criar-torneio", `{}`)
	assert.Equal(t, "Torneio 'Novo Torneio' criado com sucesso!", body["mensagem"])
}

func TestAddPlayer(t *testing.T) {
	s := newTestServer(t, createdGateway())
	s.postJSON(t, "/criar-torneio", `{"nome": "Cup"}`)

	code, body := s.postJSON(t, "/adicionar-jogador", `{"nome_jogador": "Faker", "email": "faker@example.com", "valor": "50.0"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "sucesso", body["status"])
	assert.Equal(t, "Pagamento criado para Faker. Aguardando a aprovação. Player adicionado ao torneio.", body["mensagem"])
	assert.Equal(t, 987.0, body["id"])
	assert.Equal(t, map[string]any{"transaction_data": map[string]any{"qr_code_base64": "iVBOR"}}, body["point_of_interaction"])
	assert.Equal(t, []string{"Faker"}, s.current(t).Players)
}

func TestAddPlayer_Failures(t *testing.T) {
	testCases := []struct {
		name        string
		gateway     payment.Gateway
		create      bool
		body        string
		expectedMsg string
	}{
		{
			name:        "missing fields",
			gateway:     createdGateway(),
			create:      true,
			body:        `{"nome_jogador": "Faker", "email": ""}`,
			expectedMsg: "Dados de jogador, email ou valor faltando.",
		},
		{
			name:        "zero amount counts as missing",
			gateway:     createdGateway(),
			create:      true,
			body:        `{"nome_jogador": "Faker", "email": "f@example.com", "valor": 0}`,
			expectedMsg: "Dados de jogador, email ou valor faltando.",
		},
		{
			name:        "amount is not a number",
			gateway:     createdGateway(),
			create:      true,
			body:        `{"nome_jogador": "Faker", "email": "f@example.com", "valor": "muito"}`,
			expectedMsg: "Valor da inscrição inválido.",
		},
		{
			name:        "infinite amount",
			gateway:     createdGateway(),
			create:      true,
			body:        `{"nome_jogador": "Faker", "email": "f@example.com", "valor": "Infinity"}`,
			expectedMsg: "Valor da inscrição inválido.",
		},
		{
			name:        "no tournament",
			gateway:     createdGateway(),
			create:      false,
			body:        `{"nome_jogador": "Faker", "email": "f@example.com", "valor": 50}`,
			expectedMsg: "Nenhum torneio ativo. Crie um primeiro.",
		},
		{
			name:        "payments not configured",
			gateway:     nil,
			create:      true,
			body:        `{"nome_jogador": "Faker", "email": "f@example.com", "valor": 50}`,
			expectedMsg: "A integração de pagamento não está configurada.",
		},
		{
			name:        "payment rejected",
			gateway:     &stubGateway{result: &payment.Result{StatusCode: http.StatusBadRequest, Message: "payer.email must be a valid email"}},
			create:      true,
			body:        `{"nome_jogador": "Faker", "email": "f@example.com", "valor": 50}`,
			expectedMsg: "Erro ao criar pagamento: payer.email must be a valid email",
		},
		{
			name:        "payment transport error",
			gateway:     &stubGateway{err: errors.New("timeout")},
			create:      true,
			body:        `{"nome_jogador": "Faker", "email": "f@example.com", "valor": 50}`,
			expectedMsg: "Ocorreu um erro no pagamento: timeout. Verifique se o seu Access Token está correto.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t, tc.gateway)
			if tc.create {
				s.postJSON(t, "/criar-torneio", `{"nome": "Cup"}`)
			}

			code, body := s.postJSON(t, "/adicionar-jogador", tc.body)
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, "erro", body["status"])
			assert.Equal(t, tc.expectedMsg, body["mensagem"])

			if tournament := s.current(t); tournament != nil {
				assert.Empty(t, tournament.Players)
			}
		})
	}
}

func TestGenerateBracket(t *testing.T) {
	s := newTestServer(t, createdGateway())

	_, body := s.postJSON(t, "/gerar-chaveamento", "")
	assert.Equal(t, "Nenhum torneio ativo. Crie um primeiro.", body["mensagem"])

	s.postJSON(t, "/criar-torneio", `{"nome": "Cup"}`)
	s.postJSON(t, "/adicionar-jogador", `{"nome_jogador": "A", "email": "a@example.com", "valor": 10}`)

	_, body = s.postJSON(t, "/gerar-chaveamento", "")
	assert.Equal(t, "erro", body["status"])
	assert.Equal(t, "É necessário no mínimo 2 jogadores para iniciar uma rodada.", body["mensagem"])

	s.postJSON(t, "/adicionar-jogador", `{"nome_jogador": "B", "email": "b@example.com", "valor": 10}`)
	s.postJSON(t, "/adicionar-jogador", `{"nome_jogador": "C", "email": "c@example.com", "valor": 10}`)

	_, body = s.postJSON(t, "/gerar-chaveamento", "")
	assert.Equal(t, "sucesso", body["status"])
	assert.Equal(t, "Chaveamento gerado com sucesso!", body["mensagem"])

	tournament := s.current(t)
	assert.Equal(t, 1, tournament.CurrentRound)
	assert.Equal(t, []bracket.Match{{Player1: "A", Player2: "B"}, {Player1: "C", Player2: bracket.Bye}}, tournament.Matches)
}

func TestFullTournament(t *testing.T) {
	s := newTestServer(t, createdGateway())
	s.postJSON(t, "/criar-torneio", `{"nome": "Cup"}`)
	for _, p := range []string{"A", "B", "C"} {
		s.postJSON(t, "/adicionar-jogador", `{"nome_jogador": "`+p+`", "email": "x@example.com", "valor": 10}`)
	}
	s.postJSON(t, "/gerar-chaveamento", "")

	_, body := s.postJSON(t, "/registrar-vencedor", `{"vencedor": "A", "premio": "10"}`)
	assert.Equal(t, "sucesso", body["status"])
	assert.Equal(t, "Vencedor 'A' e prêmio de R$10.00 registrados!", body["mensagem"])

	_, body = s.postJSON(t, "/registrar-vencedor", `{"vencedor": "C", "premio": 0}`)
	assert.Equal(t, "sucesso", body["status"])

	// Round 2: A vs C
	s.postJSON(t, "/gerar-chaveamento", "")
	_, body = s.postJSON(t, "/registrar-vencedor", `{"vencedor": "C", "premio": 100}`)
	assert.Equal(t, "sucesso", body["status"])

	_, body = s.postJSON(t, "/gerar-chaveamento", "")
	assert.Equal(t, "erro", body["status"])
	assert.Equal(t, "O torneio já terminou! O campeão é: C", body["mensagem"])

	tournament := s.current(t)
	assert.Equal(t, map[string]float64{"A": 10, "B": 0, "C": 100}, tournament.Prizes)
}

func TestRecordWinner_Failures(t *testing.T) {
	s := newTestServer(t, createdGateway())

	_, body := s.postJSON(t, "/registrar-vencedor", `{"vencedor": "A"}`)
	assert.Equal(t, "Nome do vencedor ou prêmio faltando.", body["mensagem"])

	_, body = s.postJSON(t, "/registrar-vencedor", `{"vencedor": "A", "premio": 5}`)
	assert.Equal(t, "Nenhum torneio ativo. Crie um primeiro.", body["mensagem"])

	s.postJSON(t, "/criar-torneio", `{"nome": "Cup"}`)
	s.postJSON(t, "/adicionar-jogador", `{"nome_jogador": "A", "email": "a@example.com", "valor": 10}`)

	_, body = s.postJSON(t, "/registrar-vencedor", `{"vencedor": "Z", "premio": 5}`)
	assert.Equal(t, "Vencedor não é um jogador válido.", body["mensagem"])

	for _, premio := range []string{`"NaN"`, `"Infinity"`, `"-Inf"`} {
		code, body := s.postJSON(t, "/registrar-vencedor", `{"vencedor": "A", "premio": `+premio+`}`)
		assert.Equal(t, http.StatusOK, code, premio)
		assert.Equal(t, "erro", body["status"], premio)
		assert.Equal(t, "Prêmio inválido.", body["mensagem"], premio)
	}
	assert.Zero(t, s.current(t).Prizes["A"])

	_, body = s.postJSON(t, "/registrar-vencedor", `{"vencedor": "A", "premio": 5}`)
	assert.Equal(t, "erro", body["status"])
	assert.Equal(t, "Jogador não encontrado nas partidas atuais.", body["mensagem"])
	assert.Equal(t, 5.0, s.current(t).Prizes["A"])
}

func TestRecordWinner_FormBody(t *testing.T) {
	s := newTestServer(t, createdGateway())
	s.postJSON(t, "/criar-torneio", `{"nome": "Cup"}`)
	s.postJSON(t, "/adicionar-jogador", `{"nome_jogador": "A", "email": "a@example.com", "valor": 10}`)
	s.postJSON(t, "/adicionar-jogador", `{"nome_jogador": "B", "email": "b@example.com", "valor": 10}`)
	s.postJSON(t, "/gerar-chaveamento", "")

	form := url.Values{"vencedor": {"B"}, "premio": {"7.5"}}
	req := httptest.NewRequest(http.MethodPost, "/registrar-vencedor", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"sucesso"`)
	assert.Equal(t, 7.5, s.current(t).Prizes["B"])
}

func TestIndex(t *testing.T) {
	s := newTestServer(t, createdGateway())

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nenhum torneio ativo")

	s.postJSON(t, "/criar-torneio", `{"nome": "Cup"}`)
	s.postJSON(t, "/adicionar-jogador", `{"nome_jogador": "Faker", "email": "f@example.com", "valor": 10}`)

	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Torneio Atual: Cup")
	assert.Contains(t, rec.Body.String(), "<li>Faker</li>")
	assert.Contains(t, rec.Body.String(), "Faker: R$0.00")
}

func TestFlashMessages(t *testing.T) {
	s := newTestServer(t, createdGateway())

	var cookies []*http.Cookie
	send := func(method, path, body string) string {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		if set := rec.Result().Cookies(); len(set) > 0 {
			cookies = set
		}
		return rec.Body.String()
	}

	send(http.MethodPost, "/criar-torneio", `{"nome": "Cup"}`)
	send(http.MethodPost, "/adicionar-jogador", `{"nome_jogador": "A", "email": "a@example.com", "valor": 10}`)
	send(http.MethodPost, "/adicionar-jogador", `{"nome_jogador": "B", "email": "b@example.com", "valor": 10}`)

	page := send(http.MethodGet, "/", "")
	assert.Contains(t, page, `id="flash"`)
	assert.NotContains(t, page, "Pagamento criado para")

	send(http.MethodPost, "/gerar-chaveamento", "")

	page = send(http.MethodGet, "/", "")
	assert.Contains(t, page, "Chaveamento gerado com sucesso!")

	page = send(http.MethodGet, "/", "")
	assert.NotContains(t, page, `id="flash"`)
}

func TestPersistenceFailureIsServerError(t *testing.T) {
	tournaments := service.NewTournamentService(brokenStore{})
	handler := newRouter(&app{
		tournaments:    tournaments,
		registrations:  service.NewRegistrationService(tournaments, nil, "pix"),
		sessionManager: scs.New(),
		allowedOrigins: []string{"*"},
	})

	for _, path := range []string{"/criar-torneio", "/gerar-chaveamento"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"nome": "Cup"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
