package domain

// BlockReasonBooked tags blocked-date rows created by a booking
const BlockReasonBooked = "booked"

// Confirmation code parameters. The alphabet excludes visually ambiguous
// glyphs (I, O, 0, 1) so codes survive being read over the phone.
const (
	ConfirmationCodeLength   = 8
	ConfirmationCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Business validation constants
const (
	MinGuests                = 1
	MaxRatingValue           = 5
	MaxGuestNameLength       = 200
	MaxSpecialRequestsLength = 2000
	MaxContactMessageLength  = 5000
)

// GalleryCategories enumerates the accepted gallery image categories
var GalleryCategories = []string{
	"exterior",
	"dock",
	"living",
	"kitchen",
	"bedroom",
	"bathroom",
	"workspace",
}

// IsValidGalleryCategory reports whether the category is one of the known ones
func IsValidGalleryCategory(category string) bool {
	for _, c := range GalleryCategories {
		if c == category {
			return true
		}
	}
	return false
}
