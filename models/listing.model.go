package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing statuses (moderation workflow).
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Payment statuses, shared by listings, payments and phone unlocks.
const (
	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
)

type Listing struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Localisation
	City     string `gorm:"size:100;not null" json:"city"`
	Commune  string `gorm:"size:100;not null" json:"commune"`
	Quartier string `gorm:"size:100;not null" json:"quartier"`

	Rooms           int    `gorm:"not null" json:"rooms"`
	PropertyType    string `gorm:"size:50" json:"property_type"`    // maison, appartement, studio, ...
	TransactionType string `gorm:"size:50" json:"transaction_type"` // location, vente

	Price       int    `gorm:"not null" json:"price"` // CDF
	Deposit     int    `gorm:"default:0" json:"deposit"`
	Description string `gorm:"type:text;not null" json:"description"`
	Phone       string `gorm:"size:20;not null" json:"phone"`

	Images []string `gorm:"serializer:json" json:"images"`

	Status        string `gorm:"default:'pending';size:20" json:"status"`         // pending, approved, rejected
	PaymentStatus string `gorm:"default:'pending';size:20" json:"payment_status"` // pending, confirmed
	Featured      bool   `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns the server-side fields: id and default statuses.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = StatusPending
	}
	if l.PaymentStatus == "" {
		l.PaymentStatus = PaymentPending
	}
	return nil
}

// IsVisible reports whether the listing may appear on the public site.
func (l *Listing) IsVisible() bool {
	return l.Status == StatusApproved && l.PaymentStatus == PaymentConfirmed
}

// CreateListingInput carries the caller-supplied fields of a new listing.
// Everything else (id, statuses, featured, created_at) is server-assigned.
type CreateListingInput struct {
	City            string
	Commune         string
	Quartier        string
	Rooms           int
	PropertyType    string
	TransactionType string
	Price           int
	Deposit         int
	Description     string
	Phone           string
	Images          []string
}

// Validate checks the creation contract and returns one ErrorDetail per
// violated field, empty when the input is acceptable.
func (in *CreateListingInput) Validate() []ErrorDetail {
	var errs []ErrorDetail

	required := []struct {
		field, value, message string
	}{
		{"city", in.City, "La ville est requise"},
		{"commune", in.Commune, "La commune est requise"},
		{"quartier", in.Quartier, "Le quartier est requis"},
		{"property_type", in.PropertyType, "Le type de bien est requis"},
		{"transaction_type", in.TransactionType, "Le type de transaction est requis"},
		{"description", in.Description, "La description est requise"},
		{"phone", in.Phone, "Le numéro de téléphone est requis"},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, ErrorDetail{Code: "required", Field: r.field, Message: r.message})
		}
	}

	if in.Rooms < 1 {
		errs = append(errs, ErrorDetail{Code: "invalid", Field: "rooms", Message: "Le nombre de pièces doit être au moins 1"})
	}
	if in.Price < 1 {
		errs = append(errs, ErrorDetail{Code: "invalid", Field: "price", Message: "Le prix doit être supérieur à zéro"})
	}
	if in.Deposit < 0 {
		errs = append(errs, ErrorDetail{Code: "invalid", Field: "deposit", Message: "La garantie ne peut pas être négative"})
	}
	if len(in.Images) < 1 {
		errs = append(errs, ErrorDetail{Code: "required", Field: "images", Message: "Au moins une photo est requise"})
	}

	return errs
}

// Listing returns the entity to persist for this input.
func (in *CreateListingInput) Listing() *Listing {
	return &Listing{
		City:            in.City,
		Commune:         in.Commune,
		Quartier:        in.Quartier,
		Rooms:           in.Rooms,
		PropertyType:    in.PropertyType,
		TransactionType: in.TransactionType,
		Price:           in.Price,
		Deposit:         in.Deposit,
		Description:     in.Description,
		Phone:           in.Phone,
		Images:          in.Images,
	}
}
