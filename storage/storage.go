package storage

import (
	"context"
	"errors"

	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
)

// ErrNotFound is returned by reads and updates when no row matches the id.
var ErrNotFound = errors.New("storage: not found")

// Storage is the persistence boundary of the service. One concrete
// implementation is backed by the relational store; tests may substitute
// their own. All list operations return newest first (created_at descending,
// id descending on ties).
type Storage interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	GetAllListings(ctx context.Context) ([]models.Listing, error)
	// GetApprovedListings returns the publicly visible listings:
	// status approved AND payment confirmed.
	GetApprovedListings(ctx context.Context) ([]models.Listing, error)
	// GetFeaturedListings returns the visible listings flagged as featured.
	GetFeaturedListings(ctx context.Context) ([]models.Listing, error)
	GetPendingListings(ctx context.Context) ([]models.Listing, error)
	UpdateListingStatus(ctx context.Context, id, status string) (*models.Listing, error)
	UpdateListingPaymentStatus(ctx context.Context, id, paymentStatus string) (*models.Listing, error)
	UpdateListingFeatured(ctx context.Context, id string, featured bool) (*models.Listing, error)
	// ApproveAllPendingListings approves every listing that is pending with a
	// confirmed payment, and returns how many were transitioned.
	ApproveAllPendingListings(ctx context.Context) (int64, error)

	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id, status string) (*models.Payment, error)

	CreatePhoneUnlock(ctx context.Context, unlock *models.PhoneUnlock) error
	GetPhoneUnlock(ctx context.Context, id string) (*models.PhoneUnlock, error)
	UpdatePhoneUnlockStatus(ctx context.Context, id, paymentStatus string) (*models.PhoneUnlock, error)
}
