package interfaces

import (
	"context"
	"errors"

	"luxerent/internal/models"
)

// ErrNotFound is returned by every repository when the requested row does
// not exist.
var ErrNotFound = errors.New("record not found")

// BookingRepository persists submitted bookings. A booking row is
// immutable once written apart from status and payment reference.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	GetByPaymentRef(ctx context.Context, paymentRef string) (*models.Booking, error)
	ListByClient(ctx context.Context, clientID int64, limit, offset int) ([]*models.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status models.BookingStatus, paymentRef string) error
}

// AssetRepository reads the rentable asset catalog.
type AssetRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Asset, error)
	List(ctx context.Context, assetType models.AssetType, limit, offset int) ([]*models.Asset, error)
}

// MembershipRepository resolves membership records for authenticated
// clients.
type MembershipRepository interface {
	GetByClientID(ctx context.Context, clientID int64) (*models.MembershipRecord, error)
	Create(ctx context.Context, record *models.MembershipRecord) error
	UpdateStatus(ctx context.Context, id int64, status models.MembershipStatus) error
}

// ClientRepository reads storefront accounts.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
}
