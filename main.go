package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/benhanamalango555-star/congo-real-estate-backend/config"
	"github.com/benhanamalango555-star/congo-real-estate-backend/handlers"
	"github.com/benhanamalango555-star/congo-real-estate-backend/middleware"
	"github.com/benhanamalango555-star/congo-real-estate-backend/storage"
	"github.com/benhanamalango555-star/congo-real-estate-backend/utils"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if cfg.SeedDB {
		config.SeedListings(db)
	}

	if err := utils.EnsureUploadDir(cfg.UploadDir); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	store := storage.NewGormStorage(db)

	app := fiber.New(fiber.Config{
		AppName:      "Congo Real Estate Backend",
		ServerHeader: "Congo Real Estate Server/1.0",
		BodyLimit:    (utils.MaxImageCount + 1) * utils.MaxImageSize,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Une erreur interne est survenue"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	// Uploaded images
	app.Static("/uploads", cfg.UploadDir)

	handlers.SetupRoutes(app, store, cfg)

	middleware.SetupNotFoundHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.Host, cfg.AppPort)

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
