package models

import (
	"time"

	"github.com/drufus/serenity/internal/domain"
)

// AddonLine is one add-on line item of a booking
type AddonLine struct {
	AddonID  int64  `json:"addonId"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// BookingResponse is the booking DTO served to the frontend. Monetary fields
// are fixed-point decimal strings so the client never re-rounds them.
type BookingResponse struct {
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmationCode"`
	GuestName        string `json:"guestName"`
	GuestEmail       string `json:"guestEmail"`
	GuestPhone       string `json:"guestPhone"`
	CheckIn          string `json:"checkIn"`  // "2026-07-01"
	CheckOut         string `json:"checkOut"` // "2026-07-04"
	NumGuests        int    `json:"numGuests"`
	NumNights        int    `json:"numNights"`

	Subtotal       string `json:"subtotal"`
	CleaningFee    string `json:"cleaningFee"`
	AddonTotal     string `json:"addonTotal"`
	TaxAmount      string `json:"taxAmount"`
	DiscountAmount string `json:"discountAmount"`
	TotalAmount    string `json:"totalAmount"`

	SpecialRequests *string `json:"specialRequests,omitempty"`
	Status          string  `json:"status"`
	PaymentIntentID *string `json:"paymentIntentId,omitempty"`

	AgreementSigned   bool    `json:"agreementSigned"`
	AgreementSignedAt *string `json:"agreementSignedAt,omitempty"` // RFC 3339

	Addons []AddonLine `json:"addons,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainBooking converts a domain booking into the DTO
func FromDomainBooking(b *domain.Booking, addons []domain.BookingAddon) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		GuestName:        b.GuestName,
		GuestEmail:       b.GuestEmail,
		GuestPhone:       b.GuestPhone,
		CheckIn:          b.CheckIn.String(),
		CheckOut:         b.CheckOut.String(),
		NumGuests:        b.NumGuests,
		NumNights:        b.NumNights,
		Subtotal:         b.Subtotal.StringFixed(2),
		CleaningFee:      b.CleaningFee.StringFixed(2),
		AddonTotal:       b.AddonTotal.StringFixed(2),
		TaxAmount:        b.TaxAmount.StringFixed(2),
		DiscountAmount:   b.DiscountAmount.StringFixed(2),
		TotalAmount:      b.TotalAmount.StringFixed(2),
		SpecialRequests:  b.SpecialRequests,
		Status:           string(b.Status),
		PaymentIntentID:  b.PaymentIntentID,
		AgreementSigned:  b.AgreementSigned,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	if b.AgreementSignedAt != nil {
		signedAt := b.AgreementSignedAt.Format(time.RFC3339)
		resp.AgreementSignedAt = &signedAt
	}

	for _, a := range addons {
		resp.Addons = append(resp.Addons, AddonLine{
			AddonID:  a.AddonID,
			Quantity: a.Quantity,
			Price:    a.Price.StringFixed(2),
		})
	}

	return resp
}
