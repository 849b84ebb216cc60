package handlers

import (
	"io"
	"net/http"

	"luxerent/internal/services"
	"luxerent/internal/utils"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	bookingService *services.BookingService
}

func NewWebhookHandler(bookingService *services.BookingService) *WebhookHandler {
	return &WebhookHandler{bookingService: bookingService}
}

// PaymentWebhook receives gateway callbacks. Signature verification
// happens in the service; a bad signature is a 400 so the gateway does
// not retry forged payloads.
func (h *WebhookHandler) PaymentWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read webhook payload")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.bookingService.HandlePaymentWebhook(c.Request.Context(), payload, signature); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "WEBHOOK_REJECTED", "Webhook rejected: "+err.Error())
		return
	}

	c.Status(http.StatusOK)
}
