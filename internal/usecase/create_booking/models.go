package create_booking

import (
	"github.com/drufus/serenity/internal/service/bookings/models"
	"github.com/drufus/serenity/pkg/types"
)

// AddonSelection is one requested add-on line
type AddonSelection struct {
	AddonID  int64 `json:"addonId" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"gte=0"`
}

// Request carries the guest's booking submission. Prices never come from the
// client; the breakdown is recomputed server-side inside the transaction.
type Request struct {
	GuestName       string           `json:"guestName" validate:"required,max=200"`
	GuestEmail      string           `json:"guestEmail" validate:"required,email"`
	GuestPhone      string           `json:"guestPhone" validate:"required,max=50"`
	CheckIn         types.DateString `json:"checkIn" validate:"required"`
	CheckOut        types.DateString `json:"checkOut" validate:"required"`
	NumGuests       int              `json:"numGuests" validate:"required,gte=1"`
	SpecialRequests *string          `json:"specialRequests,omitempty"`
	Addons          []AddonSelection `json:"addons,omitempty" validate:"omitempty,dive"`
	DiscountAmount  string           `json:"discountAmount,omitempty"` // decimal string, e.g. "50.00"
}

// Response is the created booking as served back to the frontend
type Response struct {
	Booking *models.BookingResponse `json:"booking"`
}
