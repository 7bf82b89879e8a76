package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
	"github.com/benhanamalango555-star/congo-real-estate-backend/storage"
)

type PaymentHandler struct {
	Store storage.Storage
}

func NewPaymentHandler(store storage.Storage) *PaymentHandler {
	return &PaymentHandler{Store: store}
}

// ConfirmPayment - POST /api/payments/:id/confirm
//
// Marks the payment confirmed. For a publication payment this also confirms
// the linked listing's payment status, as a second, separate write.
func (h *PaymentHandler) ConfirmPayment(c *fiber.Ctx) error {
	id := c.Params("id")

	payment, err := h.Store.UpdatePaymentStatus(c.UserContext(), id, models.PaymentConfirmed)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Paiement introuvable"})
		}
		log.Printf("Failed to confirm payment %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de confirmer le paiement"})
	}

	if payment.Type == models.PaymentTypePublish && payment.ListingID != nil {
		if _, err := h.Store.UpdateListingPaymentStatus(c.UserContext(), *payment.ListingID, models.PaymentConfirmed); err != nil {
			// The payment is already confirmed; the listing keeps its stale status
			log.Printf("Failed to cascade payment %s to listing %s: %v", id, *payment.ListingID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Paiement confirmé mais l'annonce n'a pas été mise à jour"})
		}
	}

	return c.JSON(fiber.Map{"data": payment})
}

// GetPayment - GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	payment, err := h.Store.GetPayment(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Paiement introuvable"})
		}
		log.Printf("Failed to fetch payment %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de récupérer le paiement"})
	}
	return c.JSON(fiber.Map{"data": payment})
}
