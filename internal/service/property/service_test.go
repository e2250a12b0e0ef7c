package property

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/internal/service/property/models"
)

type fakeSettingsRepo struct {
	settings *domain.PropertySettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.PropertySettings, error) {
	return f.settings, f.err
}

type fakeAddonRepo struct{ addons []*domain.Addon }

func (f *fakeAddonRepo) ListActive(_ context.Context) ([]*domain.Addon, error) {
	return f.addons, nil
}

type fakeReviewRepo struct {
	approved []*domain.Review
	created  []*domain.Review
}

func (f *fakeReviewRepo) ListApproved(_ context.Context) ([]*domain.Review, error) {
	return f.approved, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, rev *domain.Review) (*domain.Review, error) {
	stored := *rev
	stored.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &stored)
	return &stored, nil
}

type fakeGalleryRepo struct {
	images       []*domain.GalleryImage
	lastCategory *string
}

func (f *fakeGalleryRepo) List(_ context.Context, category *string) ([]*domain.GalleryImage, error) {
	f.lastCategory = category
	return f.images, nil
}

type fakeContactRepo struct{ created []*domain.ContactSubmission }

func (f *fakeContactRepo) Create(_ context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	stored := *sub
	stored.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &stored)
	return &stored, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type harness struct {
	svc     *Service
	reviews *fakeReviewRepo
	gallery *fakeGalleryRepo
	contact *fakeContactRepo
}

func newHarness() *harness {
	h := &harness{
		reviews: &fakeReviewRepo{},
		gallery: &fakeGalleryRepo{},
		contact: &fakeContactRepo{},
	}
	settings := &fakeSettingsRepo{settings: &domain.PropertySettings{
		PropertyName:    "Serenity Lake House",
		Sleeps:          8,
		BaseNightlyRate: decimal.NewFromInt(200),
		TaxRate:         decimal.NewFromFloat(0.06),
	}}
	h.svc = NewService(settings, &fakeAddonRepo{}, h.reviews, h.gallery, h.contact, nopLogger{})
	return h
}

func TestGetSettings(t *testing.T) {
	h := newHarness()

	res, err := h.svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Serenity Lake House", res.PropertyName)
	assert.Equal(t, "200.00", res.BaseNightlyRate)
}

func TestListGallery_CategoryNormalized(t *testing.T) {
	h := newHarness()

	cat := "  Exterior "
	_, err := h.svc.ListGallery(context.Background(), &cat)
	require.NoError(t, err)
	require.NotNil(t, h.gallery.lastCategory)
	assert.Equal(t, "exterior", *h.gallery.lastCategory)
}

func TestListGallery_UnknownCategory(t *testing.T) {
	h := newHarness()

	cat := "garage"
	_, err := h.svc.ListGallery(context.Background(), &cat)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestSubmitReview_StoredUnapproved(t *testing.T) {
	h := newHarness()

	err := h.svc.SubmitReview(context.Background(), &models.ReviewRequest{
		GuestName: "Jamie Rivera",
		Rating:    5,
		Title:     "Perfect week",
		Comment:   "The dock at sunrise alone is worth it.",
		StayDate:  "2026-06-10",
	})
	require.NoError(t, err)
	require.Len(t, h.reviews.created, 1)
	assert.False(t, h.reviews.created[0].Approved)
}

func TestSubmitReview_InvalidRating(t *testing.T) {
	h := newHarness()

	err := h.svc.SubmitReview(context.Background(), &models.ReviewRequest{
		GuestName: "Jamie Rivera",
		Rating:    6,
		Comment:   "x",
		StayDate:  "2026-06-10",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, h.reviews.created)
}

func TestSubmitContact(t *testing.T) {
	h := newHarness()

	err := h.svc.SubmitContact(context.Background(), &models.ContactRequest{
		Name:    "Jamie Rivera",
		Email:   "jamie@example.com",
		Message: "Is the lake house available over Labor Day weekend?",
	})
	require.NoError(t, err)
	assert.Len(t, h.contact.created, 1)
}

func TestSubmitContact_MissingFields(t *testing.T) {
	h := newHarness()

	err := h.svc.SubmitContact(context.Background(), &models.ContactRequest{Name: "Jamie Rivera"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, h.contact.created)
}
