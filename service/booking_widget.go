package services

import (
	"context"
	"fmt"
	"sync"

	"booking-widget/api/hotel"
	"booking-widget/logger"
	"booking-widget/models"
)

type Phase string

const (
	// PhaseSearch shows only the search form.
	PhaseSearch Phase = "search"
	// PhaseResults shows the offers of the last search; the reservation
	// form is added once a room is selected.
	PhaseResults Phase = "results"
)

const DEFAULT_NO_AVAILABILITY_MESSAGE = "No rooms were found for the selected dates and party size."

// BookingWidget drives the search, select and submit workflow against the
// hotel API. Calls are never deduplicated: when searches overlap, the last
// response to arrive replaces the results.
type BookingWidget struct {
	api      hotel.HotelAPI
	hotelID  string
	notifier Notifier

	mu        sync.Mutex
	phase     Phase
	criteria  models.SearchCriteria
	result    *models.SearchResult
	selection *SelectionSet
	guest     models.GuestDetails
	rotators  map[string]*ImageRotator
}

// NewBookingWidget creates a widget in the search phase with default criteria.
func NewBookingWidget(api hotel.HotelAPI, hotelID string, notifier Notifier) *BookingWidget {
	if notifier == nil {
		notifier = NewLogNotifier()
	}
	return &BookingWidget{
		api:       api,
		hotelID:   hotelID,
		notifier:  notifier,
		phase:     PhaseSearch,
		criteria:  models.DefaultSearchCriteria(),
		selection: NewSelectionSet(),
		rotators:  make(map[string]*ImageRotator),
	}
}

// RestoreBookingWidget rebuilds a widget from a stored snapshot.
func RestoreBookingWidget(api hotel.HotelAPI, hotelID string, notifier Notifier, snapshot models.WidgetSnapshot) *BookingWidget {
	w := NewBookingWidget(api, hotelID, notifier)
	if snapshot.Phase == string(PhaseResults) && snapshot.Result != nil {
		w.phase = PhaseResults
	}
	w.criteria = snapshot.Criteria
	w.result = snapshot.Result
	w.guest = snapshot.Guest
	w.selection = NewSelectionSet(snapshot.SelectedRooms...)
	w.selection.Retain(w.inResult)
	for roomID, index := range snapshot.PhotoIndexes {
		if rotator := w.rotator(roomID); rotator != nil {
			rotator.JumpTo(index)
		}
	}
	return w
}

// Snapshot captures the widget state for storage.
func (w *BookingWidget) Snapshot() models.WidgetSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	indexes := make(map[string]int)
	for roomID, rotator := range w.rotators {
		if rotator.Index() != 0 {
			indexes[roomID] = rotator.Index()
		}
	}
	return models.WidgetSnapshot{
		Phase:         string(w.phase),
		Criteria:      w.criteria,
		Result:        w.result,
		SelectedRooms: w.selection.IDs(),
		Guest:         w.guest,
		PhotoIndexes:  indexes,
	}
}

func (w *BookingWidget) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

func (w *BookingWidget) Criteria() models.SearchCriteria {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.criteria
}

// SetCriteria replaces the search form values. Results stay on screen until
// the next search.
func (w *BookingWidget) SetCriteria(criteria models.SearchCriteria) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.criteria = criteria
}

func (w *BookingWidget) Result() *models.SearchResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

func (w *BookingWidget) Guest() models.GuestDetails {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.guest
}

func (w *BookingWidget) SetGuestDetails(guest models.GuestDetails) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.guest = guest
}

// Search looks up availability for the current criteria and replaces the
// results. On failure the previous results stay as they were.
func (w *BookingWidget) Search(ctx context.Context) (*models.SearchResult, error) {
	l := logger.LoggerFromContext(ctx, "BookingWidget")

	w.mu.Lock()
	criteria := w.criteria
	w.mu.Unlock()

	if err := validateCriteria(criteria); err != nil {
		l.Debug().Err(err).Msg("search rejected")
		title, message := describeValidation(err)
		w.notifier.Notify(NoticeWarning, title, message)
		return nil, err
	}

	l.Info().
		Str("entry_date", criteria.EntryDate.String()).
		Str("exit_date", criteria.ExitDate.String()).
		Int("adults", criteria.Adults).
		Int("children", criteria.Children).
		Msg("searching rooms")

	result, err := w.api.FindRooms(ctx, w.hotelID, criteria)
	if err != nil {
		terr := newTransportError("search rooms", err)
		l.Error().Err(err).Msg("room search failed")
		w.notifier.Notify(NoticeError, "Error", "Could not search for available rooms.")
		return nil, terr
	}

	w.mu.Lock()
	w.applyResult(result)
	w.mu.Unlock()

	l.Info().Int("offers", len(result.Offers)).Int("blocked", result.BlockedCount()).Msg("room search finished")

	switch {
	case result.Message != "":
		w.notifier.Notify(NoticeInfo, "Availability information", result.Message)
	case result.IsEmpty():
		w.notifier.Notify(NoticeInfo, "No rooms available", DEFAULT_NO_AVAILABILITY_MESSAGE)
	}
	return result, nil
}

// applyResult must be called with mu held.
func (w *BookingWidget) applyResult(result *models.SearchResult) {
	w.result = result
	w.phase = PhaseResults
	w.rotators = make(map[string]*ImageRotator)
	w.selection.Retain(w.inResult)
}

func (w *BookingWidget) inResult(roomID string) bool {
	_, ok := w.result.Offer(roomID)
	return ok
}

// ToggleSelection selects or deselects a room of the current results and
// reports whether it is selected afterwards.
func (w *BookingWidget) ToggleSelection(roomID string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.inResult(roomID) {
		return false, fmt.Errorf("%w: %s", ErrUnknownRoom, roomID)
	}
	return w.selection.Toggle(roomID), nil
}

func (w *BookingWidget) IsSelected(roomID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection.Contains(roomID)
}

func (w *BookingWidget) SelectedRoomIDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection.IDs()
}

// ReservationPanelVisible reports whether the guest can fill in the
// reservation form.
func (w *BookingWidget) ReservationPanelVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase == PhaseResults && w.selection.Len() > 0
}

// TotalPrice sums the effective price of every selected offer.
func (w *BookingWidget) TotalPrice() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.totalPrice()
}

// totalPrice must be called with mu held.
func (w *BookingWidget) totalPrice() float64 {
	var total float64
	for _, roomID := range w.selection.IDs() {
		if offer, ok := w.result.Offer(roomID); ok {
			total += offer.EffectivePrice()
		}
	}
	return total
}

// Submit sends the reservation for the selected rooms. On success the widget
// goes back to the search phase with empty results, selection and guest
// details; search criteria are kept. On failure nothing is cleared.
func (w *BookingWidget) Submit(ctx context.Context) error {
	l := logger.LoggerFromContext(ctx, "BookingWidget")

	w.mu.Lock()
	if err := w.validateSubmission(); err != nil {
		w.mu.Unlock()
		l.Debug().Err(err).Msg("reservation rejected")
		title, message := describeValidation(err)
		w.notifier.Notify(NoticeWarning, title, message)
		return err
	}
	reservation := models.NewReservation(w.criteria, w.guest, w.selection.IDs(), w.totalPrice())
	w.mu.Unlock()

	l.Info().
		Strs("rooms", reservation.RoomsIDs).
		Float64("price", reservation.Price).
		Msg("creating reservation")

	if err := w.api.CreateReservation(ctx, reservation); err != nil {
		terr := newTransportError("create reservation", err)
		l.Error().Err(err).Int("status", terr.StatusCode).Msg("reservation failed")
		w.notifier.Notify(NoticeError, "Error", "Could not create the reservation.")
		return terr
	}

	w.mu.Lock()
	w.phase = PhaseSearch
	w.result = nil
	w.selection.Clear()
	w.guest = models.GuestDetails{}
	w.rotators = make(map[string]*ImageRotator)
	w.mu.Unlock()

	l.Info().Msg("reservation created")
	w.notifier.Notify(NoticeSuccess, "Reservation confirmed", "Your reservation has been created.")
	return nil
}

// validateSubmission must be called with mu held.
func (w *BookingWidget) validateSubmission() error {
	verr := newValidationError()
	if w.selection.Len() == 0 {
		verr.addError("rooms", ErrNoSelection.Error())
	}
	for _, field := range w.guest.MissingFields() {
		verr.addError(field, "required")
	}
	if w.criteria.EntryDate.IsZero() || w.criteria.ExitDate.IsZero() {
		verr.addError("dates", "entry and exit dates are required")
	}
	if verr.fieldsCount() > 0 {
		return verr
	}
	return nil
}

// NextPhoto advances the room's photo rotator.
func (w *BookingWidget) NextPhoto(roomID string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rotator := w.rotator(roomID)
	if rotator == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoom, roomID)
	}
	return rotator.Next(), nil
}

func (w *BookingWidget) PreviousPhoto(roomID string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rotator := w.rotator(roomID)
	if rotator == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoom, roomID)
	}
	return rotator.Previous(), nil
}

func (w *BookingWidget) JumpToPhoto(roomID string, index int) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rotator := w.rotator(roomID)
	if rotator == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoom, roomID)
	}
	return rotator.JumpTo(index)
}

// rotator returns the room's rotator, creating it on first use. It must be
// called with mu held and returns nil for rooms outside the results.
func (w *BookingWidget) rotator(roomID string) *ImageRotator {
	if r, ok := w.rotators[roomID]; ok {
		return r
	}
	offer, ok := w.result.Offer(roomID)
	if !ok {
		return nil
	}
	r := NewImageRotator(offer.PhotoURLs())
	w.rotators[roomID] = r
	return r
}

func validateCriteria(c models.SearchCriteria) error {
	verr := newValidationError()
	if c.EntryDate.IsZero() {
		verr.addError("entryDate", "required")
	}
	if c.ExitDate.IsZero() {
		verr.addError("exitDate", "required")
	}
	if !c.EntryDate.IsZero() && !c.ExitDate.IsZero() && !c.EntryDate.Before(c.ExitDate) {
		verr.addError("exitDate", "must be after entryDate")
	}
	if c.Adults < 1 {
		verr.addError("adults", "at least one adult is required")
	}
	if c.Children < 0 {
		verr.addError("children", "must not be negative")
	}
	if verr.fieldsCount() > 0 {
		return verr
	}
	return nil
}

// describeValidation turns a validation failure into a notice title and message.
func describeValidation(err error) (string, string) {
	verr := IsValidationError(err)
	if verr == nil {
		return "Invalid data", err.Error()
	}
	fields := verr.Fields()
	if _, ok := fields["rooms"]; ok {
		return "No rooms selected", "Please select at least one room."
	}
	for _, f := range []string{"name", "email", "phone"} {
		if _, ok := fields[f]; ok {
			return "Incomplete details", "Please complete all fields."
		}
	}
	for _, f := range []string{"entryDate", "exitDate", "dates"} {
		if msgs, ok := fields[f]; ok && (msgs[0] == "required" || f == "dates") {
			return "Dates required", "Please select the entry and exit dates."
		}
	}
	if _, ok := fields["exitDate"]; ok {
		return "Invalid dates", "The exit date must be after the entry date."
	}
	if _, ok := fields["adults"]; ok {
		return "Invalid guests", "At least one adult is required."
	}
	return "Invalid guests", "The number of children cannot be negative."
}
