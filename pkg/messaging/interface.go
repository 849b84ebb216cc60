package messaging

import "context"

// MessageProvider delivers outbound transactional messages (booking
// confirmations, concierge chat links).
type MessageProvider interface {
	SendMessage(ctx context.Context, request *MessageRequest) (*MessageResponse, error)
	GetDeliveryStatus(ctx context.Context, messageID string) (*DeliveryStatus, error)
}

type MessageRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Body    string `json:"body"`
	Channel string `json:"channel"` // sms, whatsapp
}

type MessageResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type DeliveryStatus struct {
	MessageID    string `json:"message_id"`
	Status       string `json:"status"`
	DeliveredAt  int64  `json:"delivered_at,omitempty"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
