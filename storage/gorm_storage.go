package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
)

// GormStorage implements Storage on top of a GORM database.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

const newestFirst = "created_at DESC, id DESC"

func (s *GormStorage) CreateListing(ctx context.Context, listing *models.Listing) error {
	return s.db.WithContext(ctx).Create(listing).Error
}

func (s *GormStorage) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (s *GormStorage) GetAllListings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.WithContext(ctx).Order(newestFirst).Find(&listings).Error
	return listings, err
}

func (s *GormStorage) GetApprovedListings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.WithContext(ctx).
		Where("status = ? AND payment_status = ?", models.StatusApproved, models.PaymentConfirmed).
		Order(newestFirst).
		Find(&listings).Error
	return listings, err
}

func (s *GormStorage) GetFeaturedListings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.WithContext(ctx).
		Where("status = ? AND payment_status = ? AND featured = ?",
			models.StatusApproved, models.PaymentConfirmed, true).
		Order(newestFirst).
		Find(&listings).Error
	return listings, err
}

func (s *GormStorage) GetPendingListings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusPending).
		Order(newestFirst).
		Find(&listings).Error
	return listings, err
}

func (s *GormStorage) UpdateListingStatus(ctx context.Context, id, status string) (*models.Listing, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	listing.Status = status
	if err := s.db.WithContext(ctx).Model(listing).Update("status", status).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *GormStorage) UpdateListingPaymentStatus(ctx context.Context, id, paymentStatus string) (*models.Listing, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	listing.PaymentStatus = paymentStatus
	if err := s.db.WithContext(ctx).Model(listing).Update("payment_status", paymentStatus).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *GormStorage) UpdateListingFeatured(ctx context.Context, id string, featured bool) (*models.Listing, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	listing.Featured = featured
	if err := s.db.WithContext(ctx).Model(listing).Update("featured", featured).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *GormStorage) ApproveAllPendingListings(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("status = ? AND payment_status = ?", models.StatusPending, models.PaymentConfirmed).
		Update("status", models.StatusApproved)
	return res.RowsAffected, res.Error
}

func (s *GormStorage) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return s.db.WithContext(ctx).Create(payment).Error
}

func (s *GormStorage) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *GormStorage) UpdatePaymentStatus(ctx context.Context, id, status string) (*models.Payment, error) {
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	payment.Status = status
	if err := s.db.WithContext(ctx).Model(payment).Update("status", status).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *GormStorage) CreatePhoneUnlock(ctx context.Context, unlock *models.PhoneUnlock) error {
	return s.db.WithContext(ctx).Create(unlock).Error
}

func (s *GormStorage) GetPhoneUnlock(ctx context.Context, id string) (*models.PhoneUnlock, error) {
	var unlock models.PhoneUnlock
	if err := s.db.WithContext(ctx).First(&unlock, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unlock, nil
}

func (s *GormStorage) UpdatePhoneUnlockStatus(ctx context.Context, id, paymentStatus string) (*models.PhoneUnlock, error) {
	unlock, err := s.GetPhoneUnlock(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock.PaymentStatus = paymentStatus
	if err := s.db.WithContext(ctx).Model(unlock).Update("payment_status", paymentStatus).Error; err != nil {
		return nil, err
	}
	return unlock, nil
}
