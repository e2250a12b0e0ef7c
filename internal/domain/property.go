package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/drufus/serenity/pkg/types"
)

// PropertySettings is the singleton row describing the property and its
// pricing parameters. The booking engine treats it as read-only input;
// mutations happen through an administrative surface outside this service.
type PropertySettings struct {
	ID            int64
	PropertyName  string
	Sleeps        int
	Bedrooms      int
	Bathrooms     int
	SquareFeet    int
	ParkingSpaces int
	PetsAllowed   bool

	BaseNightlyRate decimal.Decimal
	CleaningFee     decimal.Decimal
	TaxRate         decimal.Decimal // fraction, e.g. 0.06
	MinNights       int
	DamageDeposit   decimal.Decimal

	CheckInTime        string // "16:00"
	CheckOutTime       string // "10:00"
	CancellationPolicy string
	HouseRules         string
}

// SeasonalRate is a date-range-scoped override of the nightly rate.
// Start and end dates are both inclusive.
type SeasonalRate struct {
	ID          int64
	Name        string
	StartDate   types.DateString
	EndDate     types.DateString
	NightlyRate decimal.Decimal
	MinNights   *int
	Active      bool
	CreatedAt   time.Time
}

// Covers reports whether the rate's inclusive range contains the date
func (r *SeasonalRate) Covers(date types.DateString) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}

// Addon is an optional paid extra from the catalog, read-only to the engine
type Addon struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	PerNight    bool
	Active      bool
	SortOrder   int
}

// Review is a guest review; only approved reviews are served
type Review struct {
	ID        int64
	GuestName string
	Rating    int
	Title     string
	Comment   string
	StayDate  types.DateString
	Approved  bool
	CreatedAt time.Time
}

// GalleryImage is a photo shown on the gallery page
type GalleryImage struct {
	ID           int64
	Category     string
	URL          string
	ThumbnailURL *string
	Caption      *string
	AltText      string
	SortOrder    int
	Featured     bool
}

// ContactSubmission is an inbound message from the contact form
type ContactSubmission struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Message   string
	CreatedAt time.Time
}
