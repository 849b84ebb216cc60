package messaging

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioProvider struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioProvider(accountSID, authToken, fromNumber string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioProvider{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (t *TwilioProvider) SendMessage(ctx context.Context, request *MessageRequest) (*MessageResponse, error) {
	to := request.To
	from := t.getFromNumber(request.From)
	if request.Channel == "whatsapp" {
		to = "whatsapp:" + strings.TrimPrefix(to, "whatsapp:")
		from = "whatsapp:" + strings.TrimPrefix(from, "whatsapp:")
	}

	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(request.Body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return &MessageResponse{
			Status: "failed",
			Error:  err.Error(),
		}, err
	}

	return &MessageResponse{
		MessageID: *resp.Sid,
		Status:    string(*resp.Status),
	}, nil
}

func (t *TwilioProvider) GetDeliveryStatus(ctx context.Context, messageID string) (*DeliveryStatus, error) {
	params := &api.FetchMessageParams{}

	resp, err := t.client.Api.FetchMessage(messageID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message status: %w", err)
	}

	status := &DeliveryStatus{
		MessageID: messageID,
		Status:    string(*resp.Status),
	}

	if resp.ErrorCode != nil {
		status.ErrorCode = fmt.Sprintf("%d", *resp.ErrorCode)
	}
	if resp.ErrorMessage != nil {
		status.ErrorMessage = *resp.ErrorMessage
	}

	return status, nil
}

func (t *TwilioProvider) getFromNumber(from string) string {
	if from != "" {
		return from
	}
	return t.fromNumber
}

// WhatsAppChatLink builds a wa.me deep link pre-filled with text, used by
// the storefront's "chat with concierge" buttons.
func WhatsAppChatLink(phoneNumber, text string) string {
	number := strings.TrimPrefix(strings.TrimSpace(phoneNumber), "+")
	link := "https://wa.me/" + number
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}
