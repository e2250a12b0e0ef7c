package models

import (
	"time"

	"github.com/drufus/serenity/internal/domain"
)

// PropertyResponse is the public view of the property settings. The damage
// deposit and monetary parameters are decimal strings.
type PropertyResponse struct {
	PropertyName  string `json:"propertyName"`
	Sleeps        int    `json:"sleeps"`
	Bedrooms      int    `json:"bedrooms"`
	Bathrooms     int    `json:"bathrooms"`
	SquareFeet    int    `json:"squareFeet"`
	ParkingSpaces int    `json:"parkingSpaces"`
	PetsAllowed   bool   `json:"petsAllowed"`

	BaseNightlyRate string `json:"baseNightlyRate"`
	CleaningFee     string `json:"cleaningFee"`
	TaxRate         string `json:"taxRate"`
	MinNights       int    `json:"minNights"`
	DamageDeposit   string `json:"damageDeposit"`

	CheckInTime        string `json:"checkInTime"`
	CheckOutTime       string `json:"checkOutTime"`
	CancellationPolicy string `json:"cancellationPolicy"`
	HouseRules         string `json:"houseRules"`
}

// FromDomainSettings converts domain settings into the DTO
func FromDomainSettings(s *domain.PropertySettings) *PropertyResponse {
	if s == nil {
		return nil
	}
	return &PropertyResponse{
		PropertyName:       s.PropertyName,
		Sleeps:             s.Sleeps,
		Bedrooms:           s.Bedrooms,
		Bathrooms:          s.Bathrooms,
		SquareFeet:         s.SquareFeet,
		ParkingSpaces:      s.ParkingSpaces,
		PetsAllowed:        s.PetsAllowed,
		BaseNightlyRate:    s.BaseNightlyRate.StringFixed(2),
		CleaningFee:        s.CleaningFee.StringFixed(2),
		TaxRate:            s.TaxRate.String(),
		MinNights:          s.MinNights,
		DamageDeposit:      s.DamageDeposit.StringFixed(2),
		CheckInTime:        s.CheckInTime,
		CheckOutTime:       s.CheckOutTime,
		CancellationPolicy: s.CancellationPolicy,
		HouseRules:         s.HouseRules,
	}
}

// AddonResponse is one add-on from the catalog
type AddonResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	PerNight    bool   `json:"perNight"`
	SortOrder   int    `json:"sortOrder"`
}

// FromDomainAddons converts catalog entries into DTOs
func FromDomainAddons(addons []*domain.Addon) []AddonResponse {
	out := make([]AddonResponse, 0, len(addons))
	for _, a := range addons {
		out = append(out, AddonResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Price:       a.Price.StringFixed(2),
			PerNight:    a.PerNight,
			SortOrder:   a.SortOrder,
		})
	}
	return out
}

// ReviewResponse is one approved guest review
type ReviewResponse struct {
	ID        int64     `json:"id"`
	GuestName string    `json:"guestName"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Comment   string    `json:"comment"`
	StayDate  string    `json:"stayDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainReviews converts reviews into DTOs
func FromDomainReviews(reviews []*domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse{
			ID:        r.ID,
			GuestName: r.GuestName,
			Rating:    r.Rating,
			Title:     r.Title,
			Comment:   r.Comment,
			StayDate:  r.StayDate.String(),
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

// GalleryImageResponse is one gallery image
type GalleryImageResponse struct {
	ID           int64   `json:"id"`
	Category     string  `json:"category"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
	Caption      *string `json:"caption,omitempty"`
	AltText      string  `json:"altText"`
	SortOrder    int     `json:"sortOrder"`
	Featured     bool    `json:"featured"`
}

// FromDomainImages converts gallery images into DTOs
func FromDomainImages(images []*domain.GalleryImage) []GalleryImageResponse {
	out := make([]GalleryImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, GalleryImageResponse{
			ID:           img.ID,
			Category:     img.Category,
			URL:          img.URL,
			ThumbnailURL: img.ThumbnailURL,
			Caption:      img.Caption,
			AltText:      img.AltText,
			SortOrder:    img.SortOrder,
			Featured:     img.Featured,
		})
	}
	return out
}

// ReviewRequest is an inbound guest review. Submitted reviews are stored
// unapproved and only show up once moderated.
type ReviewRequest struct {
	GuestName string `json:"guestName" validate:"required,max=200"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title     string `json:"title" validate:"required,max=200"`
	Comment   string `json:"comment" validate:"required,max=5000"`
	StayDate  string `json:"stayDate" validate:"required"` // "2026-07-01"
}

// ContactRequest is an inbound contact-form submission
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Message string  `json:"message" validate:"required,max=5000"`
}

// ToDomain converts the request into the domain entity
func (r *ContactRequest) ToDomain() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}
