package handlers

import (
	"errors"
	"log"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/benhanamalango555-star/congo-real-estate-backend/config"
	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
	"github.com/benhanamalango555-star/congo-real-estate-backend/storage"
	"github.com/benhanamalango555-star/congo-real-estate-backend/utils"
)

type ListingHandler struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewListingHandler(store storage.Storage, cfg *config.Config) *ListingHandler {
	return &ListingHandler{Store: store, Cfg: cfg}
}

// Fields the server assigns; a caller supplying them gets a validation error.
var reservedListingFields = []string{"id", "status", "payment_status", "featured", "created_at"}

// CreateListing - POST /api/listings
//
// Multipart form: 1 to 10 JPEG/PNG images under "images" plus the text
// fields of the listing. On success the listing is created together with its
// publication-fee payment (two sequential writes, not a transaction).
func (h *ListingHandler) CreateListing(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formulaire multipart invalide"})
	}

	var fieldErrs []models.ErrorDetail
	for _, field := range reservedListingFields {
		if v, ok := form.Value[field]; ok && len(v) > 0 {
			fieldErrs = append(fieldErrs, models.ErrorDetail{
				Code: "forbidden", Field: field, Message: "Ce champ est attribué par le serveur",
			})
		}
	}

	input := models.CreateListingInput{
		City:            formValue(form.Value, "city"),
		Commune:         formValue(form.Value, "commune"),
		Quartier:        formValue(form.Value, "quartier"),
		PropertyType:    formValue(form.Value, "property_type"),
		TransactionType: formValue(form.Value, "transaction_type"),
		Description:     formValue(form.Value, "description"),
		Phone:           formValue(form.Value, "phone"),
	}

	input.Rooms, err = strconv.Atoi(formValue(form.Value, "rooms"))
	if err != nil {
		fieldErrs = append(fieldErrs, models.ErrorDetail{
			Code: "invalid", Field: "rooms", Message: "Le nombre de pièces doit être un nombre entier",
		})
	}
	input.Price, err = strconv.Atoi(formValue(form.Value, "price"))
	if err != nil {
		fieldErrs = append(fieldErrs, models.ErrorDetail{
			Code: "invalid", Field: "price", Message: "Le prix doit être un nombre entier",
		})
	}
	if deposit := formValue(form.Value, "deposit"); deposit != "" {
		input.Deposit, err = strconv.Atoi(deposit)
		if err != nil {
			fieldErrs = append(fieldErrs, models.ErrorDetail{
				Code: "invalid", Field: "deposit", Message: "La garantie doit être un nombre entier",
			})
		}
	}

	files := form.File["images"]
	if len(files) > utils.MaxImageCount {
		fieldErrs = append(fieldErrs, models.ErrorDetail{
			Code: "invalid", Field: "images", Message: "Dix photos au maximum sont autorisées",
		})
	}
	for _, file := range files {
		if !utils.IsAllowedImage(file) {
			fieldErrs = append(fieldErrs, models.ErrorDetail{
				Code: "invalid", Field: "images", Message: "Seules les images JPEG et PNG sont acceptées",
			})
			break
		}
		if file.Size > utils.MaxImageSize {
			fieldErrs = append(fieldErrs, models.ErrorDetail{
				Code: "invalid", Field: "images", Message: "Chaque photo doit faire moins de 10 Mo",
			})
			break
		}
	}

	// Decide the stored filenames up front so validation sees the final payload
	names := make([]string, len(files))
	for i, file := range files {
		names[i] = utils.ImageFilename(file.Filename)
		input.Images = append(input.Images, "/uploads/"+names[i])
	}

	// One error per field: a field that already failed coercion skips the
	// range checks from Validate.
	seen := map[string]bool{}
	for _, detail := range fieldErrs {
		seen[detail.Field] = true
	}
	for _, detail := range input.Validate() {
		if !seen[detail.Field] {
			fieldErrs = append(fieldErrs, detail)
		}
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationErrors(fieldErrs))
	}

	for i, file := range files {
		if err := c.SaveFile(file, filepath.Join(h.Cfg.UploadDir, names[i])); err != nil {
			log.Printf("Failed to save upload %s: %v", file.Filename, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible d'enregistrer la photo"})
		}
	}

	listing := input.Listing()
	if err := h.Store.CreateListing(c.UserContext(), listing); err != nil {
		log.Printf("Failed to create listing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de créer l'annonce"})
	}

	payment := &models.Payment{
		ListingID: &listing.ID,
		Type:      models.PaymentTypePublish,
		Amount:    h.Cfg.PublishFee,
	}
	if err := h.Store.CreatePayment(c.UserContext(), payment); err != nil {
		// The listing already exists; it stays pending with no payment record
		log.Printf("Failed to create publish payment for listing %s: %v", listing.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible d'initialiser le paiement"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"listing": listing, "payment": payment})
}

// GetApprovedListings - GET /api/listings
func (h *ListingHandler) GetApprovedListings(c *fiber.Ctx) error {
	listings, err := h.Store.GetApprovedListings(c.UserContext())
	if err != nil {
		log.Printf("Failed to fetch approved listings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de récupérer les annonces"})
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return c.JSON(fiber.Map{"data": listings})
}

// GetFeaturedListings - GET /api/listings/featured
func (h *ListingHandler) GetFeaturedListings(c *fiber.Ctx) error {
	listings, err := h.Store.GetFeaturedListings(c.UserContext())
	if err != nil {
		log.Printf("Failed to fetch featured listings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de récupérer les annonces"})
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return c.JSON(fiber.Map{"data": listings})
}

// GetListing - GET /api/listings/:id
func (h *ListingHandler) GetListing(c *fiber.Ctx) error {
	listing, err := h.Store.GetListing(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Annonce introuvable"})
		}
		log.Printf("Failed to fetch listing %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de récupérer l'annonce"})
	}
	return c.JSON(fiber.Map{"data": listing})
}

func formValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}
