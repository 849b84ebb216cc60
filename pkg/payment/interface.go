package payment

import (
	"context"
)

// PaymentProvider abstracts the card gateway. Amounts are always integer
// minor units (cents); callers convert via utils.ToMinorUnits so a charge
// can never carry a fractional cent.
type PaymentProvider interface {
	ProcessPayment(ctx context.Context, request *PaymentRequest) (*PaymentResponse, error)
	RefundPayment(ctx context.Context, request *RefundRequest) (*RefundResponse, error)
	ValidateWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error)
}

type PaymentRequest struct {
	PaymentMethodID string            `json:"payment_method_id"`
	AmountMinor     int64             `json:"amount_minor"`
	Currency        string            `json:"currency"`
	Description     string            `json:"description"`
	CustomerID      string            `json:"customer_id"`
	Metadata        map[string]string `json:"metadata"`
}

type PaymentResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
	CreatedAt     int64  `json:"created_at"`
}

type RefundRequest struct {
	TransactionID string `json:"transaction_id"`
	AmountMinor   int64  `json:"amount_minor"`
	Reason        string `json:"reason"`
}

type RefundResponse struct {
	RefundID    string `json:"refund_id"`
	Status      string `json:"status"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	CreatedAt   int64  `json:"created_at"`
}

type WebhookEvent struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}
