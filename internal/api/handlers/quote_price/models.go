package quote_price

import (
	"fmt"

	"github.com/shopspring/decimal"

	quotePrice "github.com/drufus/serenity/internal/usecase/quote_price"
	"github.com/drufus/serenity/pkg/types"
)

// QuoteRequest is the HTTP body of a price quote
type QuoteRequest struct {
	CheckIn        string             `json:"checkIn"`
	CheckOut       string             `json:"checkOut"`
	Addons         []AddonSelectionIn `json:"addons,omitempty"`
	DiscountAmount string             `json:"discountAmount,omitempty"`
}

// AddonSelectionIn is one selected add-on line
type AddonSelectionIn struct {
	AddonID  int64 `json:"addonId"`
	Quantity int   `json:"quantity"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *QuoteRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	discount := decimal.Zero
	if r.DiscountAmount != "" {
		parsed, err := decimal.NewFromString(r.DiscountAmount)
		if err != nil {
			return nil, fmt.Errorf("discount amount: %w", err)
		}
		discount = parsed
	}

	req := &quotePrice.Request{
		CheckIn:        types.DateString(r.CheckIn),
		CheckOut:       types.DateString(r.CheckOut),
		DiscountAmount: discount,
	}
	for _, a := range r.Addons {
		req.Addons = append(req.Addons, quotePrice.AddonSelection{
			AddonID:  a.AddonID,
			Quantity: a.Quantity,
		})
	}
	return req, nil
}

// QuoteResponse is the itemized breakdown served to the wizard. Monetary
// fields are fixed-point decimal strings.
type QuoteResponse struct {
	NumNights      int    `json:"numNights"`
	MinNights      int    `json:"minNights"`
	Subtotal       string `json:"subtotal"`
	CleaningFee    string `json:"cleaningFee"`
	AddonTotal     string `json:"addonTotal"`
	DiscountAmount string `json:"discountAmount"`
	TaxAmount      string `json:"taxAmount"`
	TotalAmount    string `json:"totalAmount"`
}

// FromUseCaseResponse converts the use case result into the HTTP DTO
func FromUseCaseResponse(res *quotePrice.Response) *QuoteResponse {
	b := res.Breakdown
	return &QuoteResponse{
		NumNights:      b.NumNights,
		MinNights:      res.MinNights,
		Subtotal:       b.Subtotal.StringFixed(2),
		CleaningFee:    b.CleaningFee.StringFixed(2),
		AddonTotal:     b.AddonTotal.StringFixed(2),
		DiscountAmount: b.DiscountAmount.StringFixed(2),
		TaxAmount:      b.TaxAmount.StringFixed(2),
		TotalAmount:    b.TotalAmount.StringFixed(2),
	}
}
