package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable means no gateway is configured, so nobody can pay.
var ErrUnavailable = errors.New("payment gateway is not configured")

type Request struct {
	Amount          float64
	Description     string
	PaymentMethodID string
	PayerEmail      string
}

type Result struct {
	StatusCode int
	ID         int64
	Message    string
	// Raw provider payload, carries the Pix QR code when present
	PointOfInteraction json.RawMessage
}

// Created reports whether the provider accepted the payment.
func (r *Result) Created() bool {
	return r.StatusCode == http.StatusCreated
}

type Gateway interface {
	CreatePayment(ctx context.Context, req Request) (*Result, error)
}

// ServiceError wraps a provider rejection or a transport failure.
type ServiceError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment provider call failed: %v", e.Err)
	}
	return fmt.Sprintf("payment rejected with status %d: %s", e.StatusCode, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
