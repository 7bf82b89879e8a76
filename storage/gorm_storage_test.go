package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/benhanamalango555-star/congo-real-estate-backend/models"
	"github.com/benhanamalango555-star/congo-real-estate-backend/storage"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.Listing{}, &models.Payment{}, &models.PhoneUnlock{})
	assert.NoError(t, err)
	return db
}

func newTestListing() *models.Listing {
	return &models.Listing{
		City:            "Kinshasa",
		Commune:         "Gombe",
		Quartier:        "Socimat",
		Rooms:           3,
		PropertyType:    "appartement",
		TransactionType: "location",
		Price:           50000,
		Description:     "Bel appartement au centre-ville",
		Phone:           "+243812345678",
		Images:          []string{"/uploads/a.jpg"},
	}
}

func TestCreateListingDefaults(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))
	ctx := context.Background()

	listing := newTestListing()
	err := store.CreateListing(ctx, listing)
	assert.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, models.StatusPending, listing.Status)
	assert.Equal(t, models.PaymentPending, listing.PaymentStatus)
	assert.False(t, listing.Featured)
	assert.False(t, listing.CreatedAt.IsZero())

	got, err := store.GetListing(ctx, listing.ID)
	assert.NoError(t, err)
	assert.Equal(t, listing.ID, got.ID)
	assert.Equal(t, []string{"/uploads/a.jpg"}, got.Images)
}

func TestGetListingNotFound(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))

	listing, err := store.GetListing(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, listing)
}

func TestApprovedListingsVisibilityConjunction(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))
	ctx := context.Background()

	combos := []struct {
		status        string
		paymentStatus string
		visible       bool
	}{
		{models.StatusPending, models.PaymentPending, false},
		{models.StatusPending, models.PaymentConfirmed, false},
		{models.StatusApproved, models.PaymentPending, false},
		{models.StatusApproved, models.PaymentConfirmed, true},
		{models.StatusRejected, models.PaymentConfirmed, false},
	}

	visible := map[string]bool{}
	for _, combo := range combos {
		listing := newTestListing()
		listing.Status = combo.status
		listing.PaymentStatus = combo.paymentStatus
		assert.NoError(t, store.CreateListing(ctx, listing))
		visible[listing.ID] = combo.visible
	}

	approved, err := store.GetApprovedListings(ctx)
	assert.NoError(t, err)
	assert.Len(t, approved, 1)
	for _, listing := range approved {
		assert.True(t, visible[listing.ID])
	}
}

func TestFeaturedListingsRequireVisibility(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))
	ctx := context.Background()

	featuredHidden := newTestListing()
	featuredHidden.Featured = true
	assert.NoError(t, store.CreateListing(ctx, featuredHidden))

	featuredVisible := newTestListing()
	featuredVisible.Featured = true
	featuredVisible.Status = models.StatusApproved
	featuredVisible.PaymentStatus = models.PaymentConfirmed
	assert.NoError(t, store.CreateListing(ctx, featuredVisible))

	plainVisible := newTestListing()
	plainVisible.Status = models.StatusApproved
	plainVisible.PaymentStatus = models.PaymentConfirmed
	assert.NoError(t, store.CreateListing(ctx, plainVisible))

	featured, err := store.GetFeaturedListings(ctx)
	assert.NoError(t, err)
	assert.Len(t, featured, 1)
	assert.Equal(t, featuredVisible.ID, featured[0].ID)
}

func TestListingsNewestFirstWithIDTieBreak(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))
	ctx := context.Background()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	older := newTestListing()
	older.ID = "id-a"
	older.CreatedAt = at.Add(-time.Hour)
	assert.NoError(t, store.CreateListing(ctx, older))

	tieLow := newTestListing()
	tieLow.ID = "id-b"
	tieLow.CreatedAt = at
	assert.NoError(t, store.CreateListing(ctx, tieLow))

	tieHigh := newTestListing()
	tieHigh.ID = "id-c"
	tieHigh.CreatedAt = at
	assert.NoError(t, store.CreateListing(ctx, tieHigh))

	listings, err := store.GetAllListings(ctx)
	assert.NoError(t, err)
	assert.Len(t, listings, 3)
	assert.Equal(t, "id-c", listings[0].ID)
	assert.Equal(t, "id-b", listings[1].ID)
	assert.Equal(t, "id-a", listings[2].ID)
}

func TestUpdateListingStatus(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))
	ctx := context.Background()

	listing := newTestListing()
	assert.NoError(t, store.CreateListing(ctx, listing))

	updated, err := store.UpdateListingStatus(ctx, listing.ID, models.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)

	got, err := store.GetListing(ctx, listing.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)

	_, err = store.UpdateListingStatus(ctx, "missing", models.StatusApproved)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateListingPaymentStatus(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))
	ctx := context.Background()

	listing := newTestListing()
	assert.NoError(t, store.CreateListing(ctx, listing))

	updated, err := store.UpdateListingPaymentStatus(ctx, listing.ID, models.PaymentConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentConfirmed, updated.PaymentStatus)

	got, err := store.GetListing(ctx, listing.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentConfirmed, got.PaymentStatus)
}

func TestApproveAllPendingListings(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))
	ctx := context.Background()

	paidPendingA := newTestListing()
	paidPendingA.PaymentStatus = models.PaymentConfirmed
	assert.NoError(t, store.CreateListing(ctx, paidPendingA))

	paidPendingB := newTestListing()
	paidPendingB.PaymentStatus = models.PaymentConfirmed
	assert.NoError(t, store.CreateListing(ctx, paidPendingB))

	unpaidPending := newTestListing()
	assert.NoError(t, store.CreateListing(ctx, unpaidPending))

	alreadyApproved := newTestListing()
	alreadyApproved.Status = models.StatusApproved
	alreadyApproved.PaymentStatus = models.PaymentConfirmed
	assert.NoError(t, store.CreateListing(ctx, alreadyApproved))

	count, err := store.ApproveAllPendingListings(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	for _, id := range []string{paidPendingA.ID, paidPendingB.ID} {
		got, err := store.GetListing(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusApproved, got.Status)
	}

	untouched, err := store.GetListing(ctx, unpaidPending.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, untouched.Status)
	assert.Equal(t, models.PaymentPending, untouched.PaymentStatus)
}

func TestPaymentLifecycle(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))
	ctx := context.Background()

	listingID := "listing-1"
	payment := &models.Payment{
		ListingID: &listingID,
		Type:      models.PaymentTypePublish,
		Amount:    1500,
	}
	assert.NoError(t, store.CreatePayment(ctx, payment))
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, models.PaymentPending, payment.Status)

	got, err := store.GetPayment(ctx, payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentTypePublish, got.Type)
	assert.NotNil(t, got.ListingID)
	assert.Equal(t, listingID, *got.ListingID)

	updated, err := store.UpdatePaymentStatus(ctx, payment.ID, models.PaymentConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentConfirmed, updated.Status)

	_, err = store.GetPayment(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.UpdatePaymentStatus(ctx, "missing", models.PaymentConfirmed)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPhoneUnlockLifecycle(t *testing.T) {
	store := storage.NewGormStorage(setupTestDB(t))
	ctx := context.Background()

	unlock := &models.PhoneUnlock{ListingID: "listing-1"}
	assert.NoError(t, store.CreatePhoneUnlock(ctx, unlock))
	assert.NotEmpty(t, unlock.ID)
	assert.Equal(t, models.PaymentPending, unlock.PaymentStatus)

	got, err := store.GetPhoneUnlock(ctx, unlock.ID)
	assert.NoError(t, err)
	assert.Equal(t, "listing-1", got.ListingID)

	updated, err := store.UpdatePhoneUnlockStatus(ctx, unlock.ID, models.PaymentConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentConfirmed, updated.PaymentStatus)

	_, err = store.GetPhoneUnlock(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
