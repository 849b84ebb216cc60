package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"luxerent/internal/models"
	"luxerent/internal/repositories/interfaces"
	"luxerent/internal/utils"
	"luxerent/internal/validators"
	"luxerent/pkg/logger"
	"luxerent/pkg/messaging"
	"luxerent/pkg/payment"
)

var (
	ErrQuoteSessionNotFound = errors.New("quote session not found or expired")
	ErrBookingNotOwned      = errors.New("booking does not belong to this client")
)

// BookingService orchestrates the quote-to-booking flow: membership
// lookup, pricing, session caching, persistence, charging and the
// confirmation message.
type BookingService struct {
	pricing     *PricingService
	memberships *MembershipService
	cache       *CacheService
	bookings    interfaces.BookingRepository
	assets      interfaces.AssetRepository
	clients     interfaces.ClientRepository
	payments    payment.PaymentProvider
	messages    messaging.MessageProvider
	logger      *logger.Logger
}

func NewBookingService(
	pricing *PricingService,
	memberships *MembershipService,
	cache *CacheService,
	bookings interfaces.BookingRepository,
	assets interfaces.AssetRepository,
	clients interfaces.ClientRepository,
	payments payment.PaymentProvider,
	messages messaging.MessageProvider,
	log *logger.Logger,
) *BookingService {
	return &BookingService{
		pricing:     pricing,
		memberships: memberships,
		cache:       cache,
		bookings:    bookings,
		assets:      assets,
		clients:     clients,
		payments:    payments,
		messages:    messages,
		logger:      log,
	}
}

// Quote prices a request and parks it in a session the client can submit
// later. clientID is zero for guests; authenticated clients get their
// stored membership attached before pricing so the VIP ladder gate sees
// the real record, not whatever the request body claims.
func (s *BookingService) Quote(ctx context.Context, clientID int64, req *models.BookingRequest) (*QuoteSession, *models.PricingBreakdown, error) {
	if err := s.attachAsset(ctx, req); err != nil {
		return nil, nil, err
	}
	if clientID > 0 {
		record, err := s.memberships.RecordForClient(ctx, clientID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve membership: %w", err)
		}
		req.Membership = record
	}

	breakdown := s.pricing.ComputeQuote(req)

	session, err := s.cache.SaveQuoteSession(ctx, clientID, req, breakdown)
	if err != nil {
		// Pricing succeeded; a cache outage degrades to quote-only.
		s.logger.WithError(err).Warn("Quote session not cached")
		session = nil
	}

	s.logger.LogQuoteEvent(req.AssetID, breakdown.BilledDays, breakdown.Total, breakdown.Currency, breakdown.VipApplied)
	return session, breakdown, nil
}

// Submit turns a parked quote into a persisted, charged booking. The
// stored request is replayed through the engine so the charge always
// reflects current pricing rules, never a stale client-side total.
func (s *BookingService) Submit(ctx context.Context, clientID int64, sessionID, paymentMethodID string) (*models.Booking, error) {
	session, err := s.cache.GetQuoteSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrQuoteSessionNotFound
	}
	if session.ClientID > 0 && session.ClientID != clientID {
		return nil, ErrBookingNotOwned
	}

	req := session.Request
	if clientID > 0 {
		record, err := s.memberships.RecordForClient(ctx, clientID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve membership: %w", err)
		}
		req.Membership = record
	}

	breakdown := s.pricing.ComputeQuote(&req)
	if err := validators.ValidateSubmittable(breakdown); err != nil {
		return nil, fmt.Errorf("%s: %w", utils.ErrQuoteNotSubmittable, err)
	}

	pickup, _ := utils.ParseDateTime(req.PickupAt)
	dropoff, _ := utils.ParseDateTime(req.DropoffAt)

	booking := &models.Booking{
		AssetID:   req.AssetID,
		Status:    models.BookingStatusPending,
		Currency:  breakdown.Currency,
		PickupAt:  pickup,
		DropoffAt: dropoff,
		Request:   req,
		Breakdown: *breakdown,
	}
	if clientID > 0 {
		booking.ClientID = &clientID
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	response, err := s.charge(ctx, booking, paymentMethodID)
	if err != nil {
		if updateErr := s.bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled, ""); updateErr != nil {
			s.logger.WithError(updateErr).WithBookingID(booking.ID).Error("Failed to mark booking cancelled after charge failure")
		}
		return nil, fmt.Errorf("%s: %w", utils.ErrPaymentFailed, err)
	}

	booking.Status = models.BookingStatusConfirmed
	booking.PaymentRef = response.TransactionID
	if err := s.bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusConfirmed, response.TransactionID); err != nil {
		s.logger.WithError(err).WithBookingID(booking.ID).Error("Failed to confirm booking after charge")
	}

	if err := s.cache.DeleteQuoteSession(ctx, sessionID); err != nil {
		s.logger.WithError(err).Warn("Failed to drop consumed quote session")
	}

	s.logger.LogBookingEvent(booking.ID, utils.EventBookingSubmitted, map[string]interface{}{
		"asset_id": booking.AssetID,
		"total":    breakdown.Total,
		"currency": breakdown.Currency,
	})

	s.sendConfirmation(ctx, clientID, booking)
	return booking, nil
}

// HandlePaymentWebhook verifies a gateway callback and reconciles the
// matching booking's status. Events for unknown transactions are
// acknowledged and dropped so the gateway stops retrying them.
func (s *BookingService) HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.payments.ValidateWebhook(ctx, payload, signature)
	if err != nil {
		return err
	}

	booking, err := s.bookings.GetByPaymentRef(ctx, event.TransactionID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			s.logger.WithField("transaction_id", event.TransactionID).Debug("Webhook for unknown transaction")
			return nil
		}
		return err
	}

	var status models.BookingStatus
	switch event.Type {
	case "payment_intent.succeeded":
		status = models.BookingStatusConfirmed
	case "payment_intent.payment_failed", "charge.refunded":
		status = models.BookingStatusCancelled
	default:
		return nil
	}

	if booking.Status == status {
		return nil
	}
	if err := s.bookings.UpdateStatus(ctx, booking.ID, status, booking.PaymentRef); err != nil {
		return err
	}

	s.logger.LogPaymentEvent(event.TransactionID, event.Type, utils.ToMinorUnits(booking.Breakdown.Total), booking.Currency)
	return nil
}

// GetBooking loads one booking, enforcing ownership for non-admins.
func (s *BookingService) GetBooking(ctx context.Context, clientID, bookingID int64, admin bool) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !admin && (booking.ClientID == nil || *booking.ClientID != clientID) {
		return nil, ErrBookingNotOwned
	}
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, clientID int64, limit, offset int) ([]*models.Booking, error) {
	return s.bookings.ListByClient(ctx, clientID, limit, offset)
}

// CancelBooking cancels a confirmed booking and refunds the full charge.
func (s *BookingService) CancelBooking(ctx context.Context, clientID, bookingID int64, admin bool) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, clientID, bookingID, admin)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCompleted {
		return nil, fmt.Errorf("booking is already %s", booking.Status)
	}

	if booking.PaymentRef != "" {
		refund, err := s.payments.RefundPayment(ctx, &payment.RefundRequest{
			TransactionID: booking.PaymentRef,
			AmountMinor:   utils.ToMinorUnits(booking.Breakdown.Total),
			Reason:        "requested_by_customer",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to refund booking: %w", err)
		}
		s.logger.LogPaymentEvent(refund.RefundID, "refund_issued", refund.AmountMinor, booking.Currency)
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled, booking.PaymentRef); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusCancelled

	s.logger.LogBookingEvent(booking.ID, utils.EventBookingCancelled, nil)
	return booking, nil
}

// attachAsset resolves the asset's current rate and type so the engine
// never trusts rate figures coming from the request body.
func (s *BookingService) attachAsset(ctx context.Context, req *models.BookingRequest) error {
	asset, err := s.cache.GetCachedAsset(ctx, req.AssetID)
	if err != nil {
		s.logger.WithError(err).Debug("Asset cache read failed")
	}
	if asset == nil {
		asset, err = s.assets.GetByID(ctx, req.AssetID)
		if err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				return fmt.Errorf("%s: asset %d", utils.ErrAssetNotFound, req.AssetID)
			}
			return err
		}
		if cacheErr := s.cache.CacheAsset(ctx, asset, time.Hour); cacheErr != nil {
			s.logger.WithError(cacheErr).Debug("Asset cache write failed")
		}
	}

	if req.Currency == "" {
		req.Currency = utils.DefaultCurrency
	}
	req.AssetType = asset.Type
	req.AssetDailyRate = asset.DailyRate(req.Currency)
	return nil
}

func (s *BookingService) charge(ctx context.Context, booking *models.Booking, paymentMethodID string) (*payment.PaymentResponse, error) {
	request := &payment.PaymentRequest{
		PaymentMethodID: paymentMethodID,
		AmountMinor:     utils.ToMinorUnits(booking.Breakdown.Total),
		Currency:        booking.Currency,
		Description:     fmt.Sprintf("Rental booking, asset %d, %d days", booking.AssetID, booking.Breakdown.BilledDays),
		Metadata: map[string]string{
			"booking_id": fmt.Sprintf("%d", booking.ID),
			"asset_id":   fmt.Sprintf("%d", booking.AssetID),
		},
	}

	response, err := s.payments.ProcessPayment(ctx, request)
	if err != nil {
		return nil, err
	}

	s.logger.LogPaymentEvent(response.TransactionID, utils.EventPaymentProcessed, response.AmountMinor, response.Currency)
	return response, nil
}

// sendConfirmation is best-effort; a messaging outage never fails a
// submitted booking.
func (s *BookingService) sendConfirmation(ctx context.Context, clientID int64, booking *models.Booking) {
	if clientID <= 0 || s.messages == nil {
		return
	}

	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil || client.Phone == "" {
		return
	}

	body := fmt.Sprintf("Your booking #%d is confirmed. Pickup %s, total %s.",
		booking.ID,
		booking.PickupAt.Format(utils.DateLayout),
		utils.FormatCurrency(booking.Breakdown.Total, booking.Currency))

	if _, err := s.messages.SendMessage(ctx, &messaging.MessageRequest{
		To:      client.Phone,
		Body:    body,
		Channel: "whatsapp",
	}); err != nil {
		s.logger.WithError(err).WithBookingID(booking.ID).Warn("Confirmation message failed")
	}
}
