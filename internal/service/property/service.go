package property

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/drufus/serenity/internal/domain"
	settingsRepo "github.com/drufus/serenity/internal/infra/storage/settings"
	"github.com/drufus/serenity/internal/service/property/models"
	"github.com/drufus/serenity/pkg/types"
)

// Service serves the presentational content surfaces: property settings,
// the add-on catalog, reviews, the gallery and the contact form. Plain
// reads and inserts with no derived logic.
type Service struct {
	settingsRepo SettingsRepository
	addonRepo    AddonRepository
	reviewRepo   ReviewRepository
	galleryRepo  GalleryRepository
	contactRepo  ContactRepository
	logger       Logger
}

// NewService creates a property content service
func NewService(
	settingsRepo SettingsRepository,
	addonRepo AddonRepository,
	reviewRepo ReviewRepository,
	galleryRepo GalleryRepository,
	contactRepo ContactRepository,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		addonRepo:    addonRepo,
		reviewRepo:   reviewRepo,
		galleryRepo:  galleryRepo,
		contactRepo:  contactRepo,
		logger:       logger,
	}
}

// GetSettings returns the property settings
func (s *Service) GetSettings(ctx context.Context) (*models.PropertyResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("GetSettings: property settings row is missing")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(settings), nil
}

// ListAddons returns the active add-on catalog
func (s *Service) ListAddons(ctx context.Context) ([]models.AddonResponse, error) {
	addons, err := s.addonRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListAddons: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAddons - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAddons(addons), nil
}

// ListReviews returns the approved guest reviews
func (s *Service) ListReviews(ctx context.Context) ([]models.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListApproved(ctx)
	if err != nil {
		s.logger.Error("ListReviews: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReviews - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviews(reviews), nil
}

// ListGallery returns gallery images, optionally filtered by category
func (s *Service) ListGallery(ctx context.Context, category *string) ([]models.GalleryImageResponse, error) {
	if category != nil {
		normalized := strings.ToLower(strings.TrimSpace(*category))
		if !domain.IsValidGalleryCategory(normalized) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *category)
		}
		category = &normalized
	}

	images, err := s.galleryRepo.List(ctx, category)
	if err != nil {
		s.logger.Error("ListGallery: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListGallery - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainImages(images), nil
}

// SubmitReview stores a guest review for moderation. It never appears in
// ListReviews until approved.
func (s *Service) SubmitReview(ctx context.Context, req *models.ReviewRequest) error {
	if req.Rating < 1 || req.Rating > domain.MaxRatingValue {
		return fmt.Errorf("%w: rating must be between 1 and %d", ErrInvalidInput, domain.MaxRatingValue)
	}
	stayDate, err := types.ParseDateString(req.StayDate)
	if err != nil {
		return fmt.Errorf("%w: stay date: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(req.GuestName) == "" || strings.TrimSpace(req.Comment) == "" {
		return fmt.Errorf("%w: guest name and comment are required", ErrInvalidInput)
	}

	rev, err := s.reviewRepo.Create(ctx, &domain.Review{
		GuestName: strings.TrimSpace(req.GuestName),
		Rating:    req.Rating,
		Title:     strings.TrimSpace(req.Title),
		Comment:   req.Comment,
		StayDate:  stayDate,
	})
	if err != nil {
		s.logger.Error("SubmitReview: repository error: %v", err)
		return fmt.Errorf("%w: SubmitReview - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SubmitReview: stored review id=%d awaiting moderation", rev.ID)
	return nil
}

// SubmitContact persists a contact-form submission
func (s *Service) SubmitContact(ctx context.Context, req *models.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrInvalidInput)
	}
	if len(req.Message) > domain.MaxContactMessageLength {
		return fmt.Errorf("%w: message too long", ErrInvalidInput)
	}

	sub, err := s.contactRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("SubmitContact: repository error: %v", err)
		return fmt.Errorf("%w: SubmitContact - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SubmitContact: stored submission id=%d from %s", sub.ID, sub.Email)
	return nil
}
