package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/benhanamalango555-star/congo-real-estate-backend/config"
	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
	"github.com/benhanamalango555-star/congo-real-estate-backend/storage"
)

type UnlockHandler struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewUnlockHandler(store storage.Storage, cfg *config.Config) *UnlockHandler {
	return &UnlockHandler{Store: store, Cfg: cfg}
}

type unlockRequest struct {
	ListingID string `json:"listing_id"`
}

// RequestUnlock - POST /api/unlocks
//
// Creates a phone-unlock request and its fee payment. The payment is
// standalone: it carries no listing reference.
func (h *UnlockHandler) RequestUnlock(c *fiber.Ctx) error {
	var req unlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if req.ListingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationErrors([]models.ErrorDetail{
			{Code: "required", Field: "listing_id", Message: "L'annonce est requise"},
		}))
	}

	unlock := &models.PhoneUnlock{ListingID: req.ListingID}
	if err := h.Store.CreatePhoneUnlock(c.UserContext(), unlock); err != nil {
		log.Printf("Failed to create phone unlock for listing %s: %v", req.ListingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de créer la demande"})
	}

	payment := &models.Payment{
		Type:   models.PaymentTypeUnlock,
		Amount: h.Cfg.UnlockFee,
	}
	if err := h.Store.CreatePayment(c.UserContext(), payment); err != nil {
		log.Printf("Failed to create unlock payment for request %s: %v", unlock.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible d'initialiser le paiement"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"unlock": unlock, "payment": payment})
}

// GetUnlock - GET /api/unlocks/:id
func (h *UnlockHandler) GetUnlock(c *fiber.Ctx) error {
	unlock, err := h.Store.GetPhoneUnlock(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Demande introuvable"})
		}
		log.Printf("Failed to fetch phone unlock %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de récupérer la demande"})
	}
	return c.JSON(fiber.Map{"data": unlock})
}
