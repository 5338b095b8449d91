package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const DefaultBaseURL = "https://api.mercadopago.com"

type MercadoPagoClient struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
}

func NewMercadoPagoClient(baseURL, accessToken string) *MercadoPagoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &MercadoPagoClient{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		AccessToken: accessToken,
		HTTPClient:  &http.Client{},
	}
}

type paymentPayer struct {
	Email string `json:"email"`
}

type paymentRequest struct {
	TransactionAmount float64      `json:"transaction_amount"`
	Description       string       `json:"description"`
	PaymentMethodID   string       `json:"payment_method_id"`
	Payer             paymentPayer `json:"payer"`
}

type paymentResponse struct {
	ID                 int64           `json:"id"`
	Message            string          `json:"message"`
	PointOfInteraction json.RawMessage `json:"point_of_interaction"`
}

// CreatePayment posts a payment and returns whatever status the provider
// answered with. Only transport and decoding failures are errors here.
func (c *MercadoPagoClient) CreatePayment(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(paymentRequest{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   req.PaymentMethodID,
		Payer:             paymentPayer{Email: req.PayerEmail},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.AccessToken)
	httpReq.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read payment response: %w", err)
	}

	var decoded paymentResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("failed to decode payment response (status %d): %w", resp.StatusCode, err)
		}
	}

	result := &Result{
		StatusCode: resp.StatusCode,
		ID:         decoded.ID,
		Message:    decoded.Message,
	}
	if len(decoded.PointOfInteraction) > 0 && string(decoded.PointOfInteraction) != "null" {
		result.PointOfInteraction = decoded.PointOfInteraction
	}
	return result, nil
}
