package services

import (
	"fmt"

	"booking-widget/config"
	"booking-widget/models"
	"booking-widget/util"
)

// PricingDisplay is what a room card shows about an offer's price. Special
// and recurring entries are truncated to keep cards compact; the remainder
// is summarized as a count.
type PricingDisplay struct {
	BasePrice           float64                 `json:"basePrice"`
	ShowAdjustments     bool                    `json:"showAdjustments"`
	SpecialPrices       []models.SpecialPrice   `json:"specialPrices,omitempty"`
	MoreSpecialPrices   int                     `json:"moreSpecialPrices,omitempty"`
	RecurringPrices     []models.RecurringPrice `json:"recurringPrices,omitempty"`
	MoreRecurringPrices int                     `json:"moreRecurringPrices,omitempty"`
	Total               float64                 `json:"total"`
	Adjusted            bool                    `json:"adjusted"`
}

func NewPricingDisplay(o models.RoomOffer) PricingDisplay {
	p := PricingDisplay{
		BasePrice:       o.BasePrice,
		ShowAdjustments: o.HasSpecialPricing || o.HasRecurringPricing,
		Total:           o.EffectivePrice(),
		Adjusted:        o.HasAdjustedPrice(),
	}
	if !p.ShowAdjustments {
		return p
	}

	if o.HasSpecialPricing && len(o.SpecialPrices) > 0 {
		shown := min(len(o.SpecialPrices), config.MAX_SPECIAL_PRICES_SHOWN)
		p.SpecialPrices = o.SpecialPrices[:shown]
		p.MoreSpecialPrices = len(o.SpecialPrices) - shown
	}
	if o.HasRecurringPricing && len(o.RecurringPrices) > 0 {
		shown := min(len(o.RecurringPrices), config.MAX_RECURRING_PRICES_SHOWN)
		p.RecurringPrices = o.RecurringPrices[:shown]
		p.MoreRecurringPrices = len(o.RecurringPrices) - shown
	}
	return p
}

// Lines renders the display as text, one line per row of the card.
func (p PricingDisplay) Lines(f *util.PriceFormatter) []string {
	lines := []string{fmt.Sprintf("Base price: %s/night", f.FormatWithSymbol(p.BasePrice))}
	if !p.ShowAdjustments {
		return lines
	}

	if len(p.SpecialPrices) > 0 {
		lines = append(lines, "Special prices:")
		for _, sp := range p.SpecialPrices {
			line := fmt.Sprintf("• %s/night", f.FormatWithSymbol(sp.Price))
			if sp.Reason != "" {
				line += " - " + sp.Reason
			}
			lines = append(lines, line)
		}
		if p.MoreSpecialPrices > 0 {
			lines = append(lines, fmt.Sprintf("+%d more...", p.MoreSpecialPrices))
		}
	}

	if len(p.RecurringPrices) > 0 {
		lines = append(lines, "Recurring prices:")
		for _, rp := range p.RecurringPrices {
			lines = append(lines, fmt.Sprintf("• %s: %s/night", rp.Name, f.FormatWithSymbol(rp.Price)))
		}
		if p.MoreRecurringPrices > 0 {
			lines = append(lines, fmt.Sprintf("+%d more...", p.MoreRecurringPrices))
		}
	}
	return lines
}

// TotalLabel is the stay total line, flagged when pricing rules changed it.
func (p PricingDisplay) TotalLabel(f *util.PriceFormatter) string {
	label := "Total: " + f.FormatWithSymbol(p.Total)
	if p.Adjusted {
		label += " (adjusted price)"
	}
	return label
}
