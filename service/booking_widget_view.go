package services

import (
	"fmt"

	"booking-widget/models"
	"booking-widget/util"
)

// WidgetView is everything a page needs to render the widget.
type WidgetView struct {
	Phase       Phase                 `json:"phase"`
	Criteria    models.SearchCriteria `json:"criteria"`
	Results     *ResultsView          `json:"results,omitempty"`
	Reservation *ReservationView      `json:"reservation,omitempty"`
}

type ResultsView struct {
	TotalAvailable  int                 `json:"totalAvailable"`
	Period          string              `json:"period"`
	Guests          string              `json:"guests"`
	HasBlockedDates bool                `json:"hasBlockedDates"`
	BlockedAdvisory *BlockedAdvisory    `json:"blockedAdvisory,omitempty"`
	Rooms           []RoomCardView      `json:"rooms"`
	NoAvailability  *NoAvailabilityView `json:"noAvailability,omitempty"`
}

// BlockedAdvisory warns that some rooms have blocked dates in the period.
// It never hides offers.
type BlockedAdvisory struct {
	Count   int    `json:"count"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type NoAvailabilityView struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type PhotoView struct {
	URL         string `json:"url"`
	Index       int    `json:"index"`
	Count       int    `json:"count"`
	Placeholder bool   `json:"placeholder"`
	Controls    bool   `json:"controls"`
}

type RoomCardView struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Capacity       int            `json:"capacity"`
	Beds           int            `json:"beds"`
	DynamicPricing bool           `json:"dynamicPricing"`
	Selected       bool           `json:"selected"`
	Photo          PhotoView      `json:"photo"`
	Pricing        PricingDisplay `json:"pricing"`
	PricingLines   []string       `json:"pricingLines"`
	TotalLabel     string         `json:"totalLabel"`
}

type ReservationView struct {
	SelectedCount   int                 `json:"selectedCount"`
	SelectedRoomIDs []string            `json:"selectedRoomIds"`
	Total           float64             `json:"total"`
	TotalLabel      string              `json:"totalLabel"`
	Guest           models.GuestDetails `json:"guest"`
}

// View renders the current state. Prices are formatted with f.
func (w *BookingWidget) View(f *util.PriceFormatter) WidgetView {
	w.mu.Lock()
	defer w.mu.Unlock()

	view := WidgetView{Phase: w.phase, Criteria: w.criteria}
	if w.phase != PhaseResults || w.result == nil {
		return view
	}

	view.Results = w.resultsView(f)
	if w.selection.Len() > 0 {
		total := w.totalPrice()
		view.Reservation = &ReservationView{
			SelectedCount:   w.selection.Len(),
			SelectedRoomIDs: w.selection.IDs(),
			Total:           total,
			TotalLabel:      "Total to pay: " + f.FormatWithSymbol(total),
			Guest:           w.guest,
		}
	}
	return view
}

// resultsView must be called with mu held.
func (w *BookingWidget) resultsView(f *util.PriceFormatter) *ResultsView {
	r := w.result
	rv := &ResultsView{
		TotalAvailable:  r.TotalAvailable,
		Period:          fmt.Sprintf("%s - %s", w.criteria.EntryDate.Display(), w.criteria.ExitDate.Display()),
		Guests:          fmt.Sprintf("%d adult(s), %d child(ren)", w.criteria.Adults, w.criteria.Children),
		HasBlockedDates: r.HasBlockedDates,
		Rooms:           make([]RoomCardView, 0, len(r.Offers)),
	}

	if n := r.BlockedCount(); n > 0 {
		rv.BlockedAdvisory = &BlockedAdvisory{
			Count:   n,
			Title:   "Rooms with unavailable dates",
			Message: fmt.Sprintf("%d room(s) have blocked dates in the selected period.", n),
		}
	}

	if r.IsEmpty() {
		message := r.Message
		if message == "" {
			message = DEFAULT_NO_AVAILABILITY_MESSAGE
		}
		rv.NoAvailability = &NoAvailabilityView{Title: "No rooms available", Message: message}
		return rv
	}

	for _, o := range r.Offers {
		rotator := w.rotator(o.ID)
		pricing := NewPricingDisplay(o)
		rv.Rooms = append(rv.Rooms, RoomCardView{
			ID:             o.ID,
			Name:           o.Name,
			Description:    o.Description,
			Capacity:       o.Capacity,
			Beds:           o.Beds,
			DynamicPricing: o.HasDynamicPricing,
			Selected:       w.selection.Contains(o.ID),
			Photo: PhotoView{
				URL:         rotator.Current(),
				Index:       rotator.Index(),
				Count:       rotator.Len(),
				Placeholder: rotator.IsPlaceholder(),
				Controls:    rotator.HasControls(),
			},
			Pricing:      pricing,
			PricingLines: pricing.Lines(f),
			TotalLabel:   pricing.TotalLabel(f),
		})
	}
	return rv
}
