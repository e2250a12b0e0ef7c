package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/drufus/serenity/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a guest reservation of the property
type Booking struct {
	ID               int64
	ConfirmationCode string
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	CheckIn          types.DateString
	CheckOut         types.DateString
	NumGuests        int
	NumNights        int

	Subtotal       decimal.Decimal
	CleaningFee    decimal.Decimal
	AddonTotal     decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	SpecialRequests *string
	Status          BookingStatus

	// Payment processing is stubbed; the field only carries the stub
	// provider's reference.
	PaymentIntentID *string

	AgreementSigned   bool
	AgreementSignedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its nights
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking may transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BlockedNights returns every night of the stay, check-in inclusive,
// check-out exclusive. One BlockedDate row exists per returned date.
func (b *Booking) BlockedNights() []types.DateString {
	return b.CheckIn.NightsOf(b.CheckIn.NightsUntil(b.CheckOut))
}

// BookingAddon links a booking to a selected add-on. Price is snapshotted
// from the catalog at booking time so later catalog edits never change
// historical totals.
type BookingAddon struct {
	ID        int64
	BookingID int64
	AddonID   int64
	Quantity  int
	Price     decimal.Decimal
}

// BlockedDate marks a single calendar night as unavailable
type BlockedDate struct {
	ID        int64
	Date      types.DateString
	Reason    string
	BookingID *int64
}

// PriceBreakdown is the itemized result of the pricing calculator
type PriceBreakdown struct {
	NumNights      int
	Subtotal       decimal.Decimal
	CleaningFee    decimal.Decimal
	AddonTotal     decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// BeforeTax returns the taxable sum: subtotal + cleaning fee + add-ons,
// less the discount.
func (p PriceBreakdown) BeforeTax() decimal.Decimal {
	return p.Subtotal.Add(p.CleaningFee).Add(p.AddonTotal).Sub(p.DiscountAmount)
}
