package handlers

import (
	"net/http"
	"time"

	"luxerent/internal/models"
	"luxerent/internal/services"
	"luxerent/internal/utils"
	"luxerent/internal/validators"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

type discountPreviewRequest struct {
	Price    float64                 `json:"price" validate:"required,charge_amount"`
	Tier     models.MembershipTierID `json:"tier" validate:"required,oneof=silver gold platinum"`
	Category models.ServiceCategory  `json:"category" validate:"required"`
}

// ListTiers returns the membership tier table: discount fractions and
// the service categories each tier covers.
func (h *MembershipHandler) ListTiers(c *gin.Context) {
	utils.SuccessResponse(c, "Membership tiers retrieved", gin.H{"tiers": h.membershipService.Tiers()})
}

// GetMyMembership returns the authenticated client's record, with an
// activity flag evaluated against the current clock.
func (h *MembershipHandler) GetMyMembership(c *gin.Context) {
	clientID := contextClientID(c)
	if clientID <= 0 {
		utils.UnauthorizedResponse(c)
		return
	}

	record, err := h.membershipService.RecordForClient(c.Request.Context(), clientID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "MEMBERSHIP_FETCH_FAILED", "Failed to get membership: "+err.Error())
		return
	}
	if record == nil {
		utils.SuccessResponse(c, "No membership on file", gin.H{"membership": nil, "active": false})
		return
	}

	utils.SuccessResponse(c, "Membership retrieved", gin.H{
		"membership": record,
		"active":     record.IsActive(time.Now().UTC()),
	})
}

// PreviewDiscount itemizes a tier discount on an arbitrary price, the
// same arithmetic the engine applies inside a quote.
func (h *MembershipHandler) PreviewDiscount(c *gin.Context) {
	var request discountPreviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if validationErrors := validators.ValidateStruct(&request); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors.ToMap())
		return
	}

	result := h.membershipService.CalculateDiscountedPrice(request.Price, request.Tier, request.Category)
	utils.SuccessResponse(c, "Discount computed", result)
}
