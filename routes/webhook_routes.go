package routes

import (
	"luxerent/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupWebhookRoutes wires gateway callbacks. No auth middleware here;
// the payload signature is the authentication.
func SetupWebhookRoutes(r *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/payment", webhookHandler.PaymentWebhook)
	}
}
