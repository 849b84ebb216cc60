package routes

import (
	"luxerent/internal/handlers"
	"luxerent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupMembershipRoutes wires the membership tier catalog and the
// authenticated client's membership view.
func SetupMembershipRoutes(r *gin.RouterGroup, membershipHandler *handlers.MembershipHandler, jwtSecret string) {
	memberships := r.Group("/memberships")
	{
		memberships.GET("/tiers", membershipHandler.ListTiers)
		memberships.POST("/preview-discount", membershipHandler.PreviewDiscount)
	}

	protected := r.Group("/memberships")
	protected.Use(middleware.AuthRequired(jwtSecret))
	{
		protected.GET("/me", membershipHandler.GetMyMembership)
	}
}
