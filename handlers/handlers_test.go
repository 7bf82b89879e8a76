package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/benhanamalango555-star/congo-real-estate-backend/config"
	"github.com/benhanamalango555-star/congo-real-estate-backend/handlers"
	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
	"github.com/benhanamalango555-star/congo-real-estate-backend/storage"
	"github.com/benhanamalango555-star/congo-real-estate-backend/utils"
)

func setupApp(t *testing.T) (*fiber.App, storage.Storage) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.Listing{}, &models.Payment{}, &models.PhoneUnlock{})
	assert.NoError(t, err)

	store := storage.NewGormStorage(db)
	cfg := &config.Config{
		UploadDir:  t.TempDir(),
		PublishFee: 1500,
		UnlockFee:  2500,
	}

	app := fiber.New(fiber.Config{
		BodyLimit: (utils.MaxImageCount + 1) * utils.MaxImageSize,
	})
	handlers.SetupRoutes(app, store, cfg)
	return app, store
}

// listingForm builds a valid multipart creation request; callers tweak the
// fields or image parts before closing.
type listingForm struct {
	buf    *bytes.Buffer
	writer *multipart.Writer
}

func newListingForm() *listingForm {
	f := &listingForm{buf: &bytes.Buffer{}}
	f.writer = multipart.NewWriter(f.buf)
	return f
}

func (f *listingForm) defaultFields() *listingForm {
	fields := map[string]string{
		"city":             "Kinshasa",
		"commune":          "Gombe",
		"quartier":         "Socimat",
		"rooms":            "3",
		"property_type":    "appartement",
		"transaction_type": "location",
		"price":            "50000",
		"description":      "Bel appartement au centre-ville",
		"phone":            "+243812345678",
	}
	for key, value := range fields {
		_ = f.writer.WriteField(key, value)
	}
	return f
}

func (f *listingForm) field(key, value string) *listingForm {
	_ = f.writer.WriteField(key, value)
	return f
}

func (f *listingForm) image(filename, contentType string, size int) *listingForm {
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, _ := f.writer.CreatePart(header)
	_, _ = part.Write(bytes.Repeat([]byte("x"), size))
	return f
}

func (f *listingForm) request() *http.Request {
	_ = f.writer.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/listings", f.buf)
	req.Header.Set("Content-Type", f.writer.FormDataContentType())
	return req
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()
	defer res.Body.Close()
	assert.NoError(t, json.NewDecoder(res.Body).Decode(out))
}
