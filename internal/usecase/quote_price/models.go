package quote_price

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

// Request describes the stay to price
type Request struct {
	CheckIn        types.DateString
	CheckOut       types.DateString
	Addons         []AddonSelection
	DiscountAmount decimal.Decimal
}

// Response is the itemized price breakdown for the stay. The wizard calls
// this on every input change; identical inputs always produce identical
// output.
type Response struct {
	Breakdown domain.PriceBreakdown
	MinNights int
}
