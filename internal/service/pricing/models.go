package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/types"
)

// AddonSelection is one selected add-on with its quantity
type AddonSelection struct {
	AddonID  int64
	Quantity int
}

// QuoteInput are the parameters of a price calculation
type QuoteInput struct {
	CheckIn        types.DateString
	CheckOut       types.DateString
	Addons         []AddonSelection
	DiscountAmount decimal.Decimal
}

// Quote is the full result of a price calculation. AddonLines carry the
// catalog price snapshots the orchestrator persists; BookingID is filled in
// at insert time. MinNights is the effective minimum for the stay (seasonal
// override when one covers check-in, the base setting otherwise).
type Quote struct {
	Breakdown  domain.PriceBreakdown
	AddonLines []domain.BookingAddon
	MinNights  int
}
