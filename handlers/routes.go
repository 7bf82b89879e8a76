package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benhanamalango555-star/congo-real-estate-backend/config"
	"github.com/benhanamalango555-star/congo-real-estate-backend/storage"
)

// SetupRoutes registers every API route under /api.
func SetupRoutes(app *fiber.App, store storage.Storage, cfg *config.Config) {
	listingHandler := NewListingHandler(store, cfg)
	paymentHandler := NewPaymentHandler(store)
	unlockHandler := NewUnlockHandler(store, cfg)
	adminHandler := NewAdminHandler(store)

	api := app.Group("/api")

	// Public routes
	api.Post("/listings", listingHandler.CreateListing)
	api.Get("/listings", listingHandler.GetApprovedListings)
	api.Get("/listings/featured", listingHandler.GetFeaturedListings)
	api.Get("/listings/:id", listingHandler.GetListing)

	api.Post("/unlocks", unlockHandler.RequestUnlock)
	api.Get("/unlocks/:id", unlockHandler.GetUnlock)

	api.Post("/payments/:id/confirm", paymentHandler.ConfirmPayment)
	api.Get("/payments/:id", paymentHandler.GetPayment)

	// Admin routes (unauthenticated, fronted by the deployment)
	admin := api.Group("/admin")
	admin.Get("/listings", adminHandler.GetAllListings)
	admin.Get("/listings/pending", adminHandler.GetPendingListings)
	admin.Post("/listings/approve-all", adminHandler.ApproveAllListings)
	admin.Post("/listings/:id/approve", adminHandler.ApproveListing)
	admin.Post("/listings/:id/reject", adminHandler.RejectListing)
	admin.Post("/listings/:id/feature", adminHandler.FeatureListing)
	admin.Post("/unlocks/:id/confirm", adminHandler.ConfirmUnlock)
}
