package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"luxerent/internal/models"
	"luxerent/internal/repositories/interfaces"
	"luxerent/internal/services"
	"luxerent/internal/utils"
	"luxerent/internal/validators"
	"luxerent/pkg/messaging"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *services.BookingService
	conciergePhone string
}

func NewBookingHandler(bookingService *services.BookingService, conciergePhone string) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		conciergePhone: conciergePhone,
	}
}

// QuoteResponse is the quote endpoint payload: the itemized breakdown
// plus the session handle needed to submit it.
type QuoteResponse struct {
	QuoteSessionID   string                   `json:"quote_session_id,omitempty"`
	ExpiresAt        string                   `json:"expires_at,omitempty"`
	Submittable      bool                     `json:"submittable"`
	BlockReason      string                   `json:"block_reason,omitempty"`
	ConciergeChatURL string                   `json:"concierge_chat_url,omitempty"`
	Breakdown        *models.PricingBreakdown `json:"breakdown"`
}

type submitRequest struct {
	QuoteSessionID  string `json:"quote_session_id" binding:"required"`
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

// Quote prices a booking request. Open to guests; an authenticated
// client additionally gets their membership applied.
func (h *BookingHandler) Quote(c *gin.Context) {
	var request models.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if validationErrors := validators.ValidateBookingRequest(&request); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors.ToMap())
		return
	}

	clientID := contextClientID(c)
	session, breakdown, err := h.bookingService.Quote(c.Request.Context(), clientID, &request)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Asset")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "QUOTE_FAILED", "Failed to compute quote: "+err.Error())
		return
	}

	response := &QuoteResponse{
		Submittable: breakdown.Submittable(),
		Breakdown:   breakdown,
	}
	if !response.Submittable {
		response.BlockReason = blockReason(breakdown)
	}
	if session != nil {
		response.QuoteSessionID = session.ID
		response.ExpiresAt = utils.FormatTimeISO(session.ExpiresAt)
	}
	if h.conciergePhone != "" {
		text := fmt.Sprintf("Hello, I have a question about a quote for asset %d.", request.AssetID)
		response.ConciergeChatURL = messaging.WhatsAppChatLink(h.conciergePhone, text)
	}

	utils.SuccessResponse(c, "Quote computed", response)
}

// Submit turns a parked quote session into a confirmed booking.
func (h *BookingHandler) Submit(c *gin.Context) {
	var request submitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	clientID := contextClientID(c)
	if clientID <= 0 {
		utils.UnauthorizedResponse(c)
		return
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), clientID, request.QuoteSessionID, request.PaymentMethodID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuoteSessionNotFound):
			utils.NotFoundResponse(c, "Quote session")
		case errors.Is(err, services.ErrBookingNotOwned):
			utils.ForbiddenResponse(c)
		case errors.Is(err, validators.ErrNoBilledDays),
			errors.Is(err, validators.ErrNotInsurable),
			errors.Is(err, validators.ErrDriverData),
			errors.Is(err, validators.ErrZeroDailyRate):
			utils.UnprocessableResponse(c, "QUOTE_NOT_SUBMITTABLE", err.Error())
		default:
			utils.ErrorResponse(c, http.StatusPaymentRequired, "BOOKING_FAILED", "Failed to submit booking: "+err.Error())
		}
		return
	}

	utils.CreatedResponse(c, "Booking confirmed", booking)
}

// GetBooking returns one booking. Clients see their own; admins see any.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), contextClientID(c), bookingID, isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrNotFound):
			utils.NotFoundResponse(c, "Booking")
		case errors.Is(err, services.ErrBookingNotOwned):
			utils.ForbiddenResponse(c)
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "BOOKING_FETCH_FAILED", "Failed to get booking: "+err.Error())
		}
		return
	}

	utils.SuccessResponse(c, "Booking retrieved", booking)
}

// ListBookings returns the authenticated client's booking history.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	clientID := contextClientID(c)
	if clientID <= 0 {
		utils.UnauthorizedResponse(c)
		return
	}

	limit, offset := paginationParams(c)
	bookings, err := h.bookingService.ListBookings(c.Request.Context(), clientID, limit, offset)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "BOOKING_LIST_FAILED", "Failed to list bookings: "+err.Error())
		return
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved", gin.H{"bookings": bookings}, &utils.Meta{Count: len(bookings)})
}

// CancelBooking cancels and refunds a booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), contextClientID(c), bookingID, isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrNotFound):
			utils.NotFoundResponse(c, "Booking")
		case errors.Is(err, services.ErrBookingNotOwned):
			utils.ForbiddenResponse(c)
		default:
			utils.ErrorResponse(c, http.StatusConflict, "BOOKING_CANCEL_FAILED", "Failed to cancel booking: "+err.Error())
		}
		return
	}

	utils.SuccessResponse(c, "Booking cancelled", booking)
}

func blockReason(breakdown *models.PricingBreakdown) string {
	if breakdown.BilledDays <= 0 {
		return "rental period resolves to zero billed days"
	}
	if !breakdown.Insurance.Insurable {
		return string(breakdown.Insurance.Reason)
	}
	return ""
}

func contextClientID(c *gin.Context) int64 {
	if value, exists := c.Get("client_id"); exists {
		if id, ok := value.(int64); ok {
			return id
		}
	}
	return 0
}

func isAdmin(c *gin.Context) bool {
	role, exists := c.Get("role")
	return exists && role == string(models.ClientRoleAdmin)
}

func paginationParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPageSize)))
	if limit <= 0 || limit > utils.MaxPageSize {
		limit = utils.DefaultPageSize
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
