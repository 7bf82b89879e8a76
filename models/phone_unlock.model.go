package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhoneUnlock records a paid request to reveal the phone number of a listing.
type PhoneUnlock struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	ListingID     string `gorm:"size:36;not null;index" json:"listing_id"`
	PaymentStatus string `gorm:"default:'pending';size:20" json:"payment_status"` // pending, confirmed

	CreatedAt time.Time `json:"created_at"`
}

func (u *PhoneUnlock) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.PaymentStatus == "" {
		u.PaymentStatus = PaymentPending
	}
	return nil
}
