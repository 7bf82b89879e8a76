package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
)

// SeedListings inserts a couple of already-published listings for local
// development. Skipped when the table is not empty.
func SeedListings(db *gorm.DB) {
	log.Println("🌱 Seeding listings...")

	var count int64
	if err := db.Model(&models.Listing{}).Count(&count).Error; err != nil {
		log.Printf("Failed to count listings: %v", err)
		return
	}
	if count > 0 {
		log.Println("Listings already present, skipping seed.")
		return
	}

	listings := []models.Listing{
		{
			City:            "Kinshasa",
			Commune:         "Gombe",
			Quartier:        "Socimat",
			Rooms:           3,
			PropertyType:    "appartement",
			TransactionType: "location",
			Price:           350000,
			Deposit:         700000,
			Description:     "Appartement moderne de 3 pièces avec parking sécurisé.",
			Phone:           "+243812345678",
			Images:          []string{"/uploads/seed-gombe-1.jpg"},
			Status:          models.StatusApproved,
			PaymentStatus:   models.PaymentConfirmed,
			Featured:        true,
		},
		{
			City:            "Kinshasa",
			Commune:         "Lemba",
			Quartier:        "Righini",
			Rooms:           2,
			PropertyType:    "maison",
			TransactionType: "location",
			Price:           150000,
			Description:     "Maison de 2 pièces, accès facile à l'université.",
			Phone:           "+243898765432",
			Images:          []string{"/uploads/seed-lemba-1.jpg"},
			Status:          models.StatusApproved,
			PaymentStatus:   models.PaymentConfirmed,
		},
	}

	for _, listing := range listings {
		l := listing
		if err := db.Create(&l).Error; err != nil {
			log.Printf("Failed to seed listing in %s: %v", l.Commune, err)
		} else {
			log.Printf("Listing seeded: %s (ID: %s)", l.Commune, l.ID)
		}
	}

	log.Println("✅ Seeding complete.")
}
