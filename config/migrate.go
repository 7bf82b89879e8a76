package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.Listing{},
		&models.Payment{},
		&models.PhoneUnlock{},
	)

	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully...")
	return nil
}
