package property

import (
	"context"

	"github.com/drufus/serenity/internal/domain"
)

// SettingsRepository reads the property settings
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.PropertySettings, error)
}

// AddonRepository reads the add-on catalog
type AddonRepository interface {
	ListActive(ctx context.Context) ([]*domain.Addon, error)
}

// ReviewRepository reads and writes guest reviews
type ReviewRepository interface {
	ListApproved(ctx context.Context) ([]*domain.Review, error)
	Create(ctx context.Context, rev *domain.Review) (*domain.Review, error)
}

// GalleryRepository reads gallery images
type GalleryRepository interface {
	List(ctx context.Context, category *string) ([]*domain.GalleryImage, error)
}

// ContactRepository persists contact-form submissions
type ContactRepository interface {
	Create(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error)
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
