package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePayment_Created(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payments", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Idempotency-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1234567890, "status": "pending", "point_of_interaction": {"transaction_data": {"qr_code_base64": "aGVsbG8="}}}`))
	}))
	defer server.Close()

	client := NewMercadoPagoClient(server.URL+"/", "token-123")
	result, err := client.CreatePayment(context.Background(), Request{
		Amount:          50,
		Description:     "Inscrição Campeonato LoL - Faker",
		PaymentMethodID: "pix",
		PayerEmail:      "faker@example.com",
	})
	require.NoError(t, err)

	assert.True(t, result.Created())
	assert.Equal(t, int64(1234567890), result.ID)
	assert.JSONEq(t, `{"transaction_data": {"qr_code_base64": "aGVsbG8="}}`, string(result.PointOfInteraction))

	assert.Equal(t, 50.0, received["transaction_amount"])
	assert.Equal(t, "pix", received["payment_method_id"])
	assert.Equal(t, map[string]any{"email": "faker@example.com"}, received["payer"])
}

func TestCreatePayment_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "invalid payer email", "status": 400}`))
	}))
	defer server.Close()

	result, err := NewMercadoPagoClient(server.URL, "token").CreatePayment(context.Background(), Request{Amount: 10})
	require.NoError(t, err)

	assert.False(t, result.Created())
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Equal(t, "invalid payer email", result.Message)
	assert.Nil(t, result.PointOfInteraction)
}

func TestCreatePayment_OKIsNotCreated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	result, err := NewMercadoPagoClient(server.URL, "token").CreatePayment(context.Background(), Request{Amount: 10})
	require.NoError(t, err)
	assert.False(t, result.Created())
}

func TestCreatePayment_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewMercadoPagoClient(server.URL, "token").CreatePayment(context.Background(), Request{Amount: 10})
	assert.Error(t, err)
}

func TestCreatePayment_GarbageBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	_, err := NewMercadoPagoClient(server.URL, "token").CreatePayment(context.Background(), Request{Amount: 10})
	assert.ErrorContains(t, err, "status 502")
}
