package models

import (
	"encoding/json"
	"fmt"
)

// Photo is one entry of a room's photo sequence. The API sends either
// {"url": "..."} objects or bare URL strings.
type Photo struct {
	URL string `json:"url"`
}

func (p *Photo) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		p.URL = url
		return nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("failed to unmarshal photo: %w", err)
	}
	p.URL = obj.URL
	return nil
}

type SpecialPrice struct {
	Price  float64 `json:"price"`
	Reason string  `json:"reason,omitempty"`
}

type RecurringPrice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// RoomOffer is a room's availability-and-price quote for one search.
type RoomOffer struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	Beds        int     `json:"beds"`
	Photos      []Photo `json:"photos"`

	Price               *float64         `json:"price,omitempty"`
	BasePrice           float64          `json:"basePrice"`
	TotalPrice          *float64         `json:"totalPrice,omitempty"`
	HasSpecialPricing   bool             `json:"hasSpecialPricing"`
	HasRecurringPricing bool             `json:"hasRecurringPricing"`
	SpecialPrices       []SpecialPrice   `json:"specialPrices,omitempty"`
	RecurringPrices     []RecurringPrice `json:"recurringPrices,omitempty"`
	HasDynamicPricing   bool             `json:"hasDynamicPricing"`
}

// EffectivePrice is the price charged for the whole stay: totalPrice,
// falling back to price when totalPrice is absent or zero, else 0.
func (o RoomOffer) EffectivePrice() float64 {
	if o.TotalPrice != nil && *o.TotalPrice != 0 {
		return *o.TotalPrice
	}
	if o.Price != nil {
		return *o.Price
	}
	return 0
}

// HasAdjustedPrice reports whether pricing rules moved the stay total away
// from the base price.
func (o RoomOffer) HasAdjustedPrice() bool {
	return o.TotalPrice != nil && *o.TotalPrice != o.BasePrice
}

func (o RoomOffer) PhotoURLs() []string {
	urls := make([]string, 0, len(o.Photos))
	for _, p := range o.Photos {
		urls = append(urls, p.URL)
	}
	return urls
}
