package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
	"github.com/benhanamalango555-star/congo-real-estate-backend/storage"
)

// AdminHandler groups the moderation endpoints. There is no authentication
// on these routes; access control is expected at the deployment layer.
type AdminHandler struct {
	Store storage.Storage
}

func NewAdminHandler(store storage.Storage) *AdminHandler {
	return &AdminHandler{Store: store}
}

// GetPendingListings - GET /api/admin/listings/pending
func (h *AdminHandler) GetPendingListings(c *fiber.Ctx) error {
	listings, err := h.Store.GetPendingListings(c.UserContext())
	if err != nil {
		log.Printf("Failed to fetch pending listings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de récupérer les annonces"})
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return c.JSON(fiber.Map{"data": listings})
}

// GetAllListings - GET /api/admin/listings
func (h *AdminHandler) GetAllListings(c *fiber.Ctx) error {
	listings, err := h.Store.GetAllListings(c.UserContext())
	if err != nil {
		log.Printf("Failed to fetch listings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de récupérer les annonces"})
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return c.JSON(fiber.Map{"data": listings})
}

// ApproveListing - POST /api/admin/listings/:id/approve
func (h *AdminHandler) ApproveListing(c *fiber.Ctx) error {
	return h.updateStatus(c, models.StatusApproved)
}

// RejectListing - POST /api/admin/listings/:id/reject
func (h *AdminHandler) RejectListing(c *fiber.Ctx) error {
	return h.updateStatus(c, models.StatusRejected)
}

func (h *AdminHandler) updateStatus(c *fiber.Ctx, status string) error {
	id := c.Params("id")
	listing, err := h.Store.UpdateListingStatus(c.UserContext(), id, status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Annonce introuvable"})
		}
		log.Printf("Failed to set listing %s to %s: %v", id, status, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de mettre à jour l'annonce"})
	}
	return c.JSON(fiber.Map{"data": listing})
}

// FeatureListing - POST /api/admin/listings/:id/feature
//
// Flags a listing for the featured section of the site. A JSON body
// {"featured": false} removes the flag; the default is true.
func (h *AdminHandler) FeatureListing(c *fiber.Ctx) error {
	req := struct {
		Featured *bool `json:"featured"`
	}{}
	// Body is optional
	_ = c.BodyParser(&req)
	featured := true
	if req.Featured != nil {
		featured = *req.Featured
	}

	id := c.Params("id")
	listing, err := h.Store.UpdateListingFeatured(c.UserContext(), id, featured)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Annonce introuvable"})
		}
		log.Printf("Failed to feature listing %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de mettre à jour l'annonce"})
	}
	return c.JSON(fiber.Map{"data": listing})
}

// ApproveAllListings - POST /api/admin/listings/approve-all
//
// Approves every pending listing whose payment is confirmed.
func (h *AdminHandler) ApproveAllListings(c *fiber.Ctx) error {
	count, err := h.Store.ApproveAllPendingListings(c.UserContext())
	if err != nil {
		log.Printf("Failed to approve pending listings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible d'approuver les annonces"})
	}
	return c.JSON(fiber.Map{
		"count":   count,
		"message": fmt.Sprintf("%d annonce(s) approuvée(s)", count),
	})
}

// ConfirmUnlock - POST /api/admin/unlocks/:id/confirm
//
// Marks a phone-unlock request as paid once the fee has been verified.
func (h *AdminHandler) ConfirmUnlock(c *fiber.Ctx) error {
	id := c.Params("id")
	unlock, err := h.Store.UpdatePhoneUnlockStatus(c.UserContext(), id, models.PaymentConfirmed)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Demande introuvable"})
		}
		log.Printf("Failed to confirm phone unlock %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de confirmer la demande"})
	}
	return c.JSON(fiber.Map{"data": unlock})
}
