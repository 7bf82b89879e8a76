package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment types.
const (
	PaymentTypePublish = "publish" // publication fee, linked to a listing
	PaymentTypeUnlock  = "unlock"  // phone-unlock fee, standalone
)

type Payment struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	ListingID *string `gorm:"size:36;index" json:"listing_id,omitempty"` // nil for unlock payments
	Type      string  `gorm:"size:20;not null" json:"type"`              // publish, unlock
	Amount    int     `gorm:"not null" json:"amount"`                    // CDF
	Status    string  `gorm:"default:'pending';size:20" json:"status"`   // pending, confirmed

	CreatedAt time.Time `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = PaymentPending
	}
	return nil
}
