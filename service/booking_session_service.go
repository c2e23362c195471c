package services

import (
	"context"
	"fmt"
	"io"

	"booking-widget/api/hotel"
	"booking-widget/models"
	"booking-widget/util"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SessionStore persists widget snapshots by session id.
type SessionStore interface {
	UpsertSession(sessionID string, snapshot models.WidgetSnapshot) error
	GetSession(sessionID string) (*models.WidgetSnapshot, error)
	DeleteSession(sessionID string) error
	Ping() error
}

// SessionOutcome is the result of one operation on a session.
type SessionOutcome struct {
	SessionID string     `json:"sessionId"`
	State     WidgetView `json:"state"`
	Notices   []Notice   `json:"notices"`
	// Err is the workflow error of the operation, if any. The state was
	// saved regardless.
	Err error `json:"-"`
}

// BookingSessionService hosts one BookingWidget per browser session. Each
// operation loads the snapshot, applies the change and stores it again, so
// concurrent requests on one session resolve last-write-wins.
type BookingSessionService struct {
	store     SessionStore
	api       hotel.HotelAPI
	hotelID   string
	formatter *util.PriceFormatter
	notifier  Notifier
	newID     func() string
}

// NewBookingSessionService constructs the service. notifier receives every
// notice in addition to the per-request outcome.
func NewBookingSessionService(
	store SessionStore,
	api hotel.HotelAPI,
	hotelID string,
	formatter *util.PriceFormatter,
	notifier Notifier) *BookingSessionService {

	return &BookingSessionService{
		store:     store,
		api:       api,
		hotelID:   hotelID,
		formatter: formatter,
		notifier:  notifier,
		newID:     uuid.NewString,
	}
}

// CreateSession starts a new widget in the search phase.
func (s *BookingSessionService) CreateSession() (*SessionOutcome, error) {
	sessionID := s.newID()
	widget := NewBookingWidget(s.api, s.hotelID, s.notifier)
	if err := s.store.UpsertSession(sessionID, widget.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	log.Info().Str("component", "BookingSessionService").Str("session_id", sessionID).Msg("session created")
	return &SessionOutcome{
		SessionID: sessionID,
		State:     widget.View(s.formatter),
		Notices:   []Notice{},
	}, nil
}

// Apply runs op against the session's widget and stores the new state.
// The returned error covers storage only; workflow errors are in Err.
func (s *BookingSessionService) Apply(ctx context.Context, sessionID string, op func(ctx context.Context, w *BookingWidget) error) (*SessionOutcome, error) {
	snapshot, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	recorder := NewNoticeRecorder()
	widget := RestoreBookingWidget(s.api, s.hotelID, NewMultiNotifier(s.notifier, recorder), *snapshot)

	opErr := op(ctx, widget)

	if err := s.store.UpsertSession(sessionID, widget.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return &SessionOutcome{
		SessionID: sessionID,
		State:     widget.View(s.formatter),
		Notices:   recorder.Notices(),
		Err:       opErr,
	}, nil
}

// View returns the session state without changing it.
func (s *BookingSessionService) View(sessionID string) (*SessionOutcome, error) {
	snapshot, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	widget := RestoreBookingWidget(s.api, s.hotelID, s.notifier, *snapshot)
	return &SessionOutcome{
		SessionID: sessionID,
		State:     widget.View(s.formatter),
		Notices:   []Notice{},
	}, nil
}

// Ping reports whether the session store is reachable.
func (s *BookingSessionService) Ping() error {
	return s.store.Ping()
}

// CloseSession discards the session and its widget state.
func (s *BookingSessionService) CloseSession(sessionID string) error {
	if err := s.store.DeleteSession(sessionID); err != nil {
		return err
	}
	log.Info().Str("component", "BookingSessionService").Str("session_id", sessionID).Msg("session closed")
	return nil
}

// PlotPrices writes an HTML price chart of the session's current offers.
func (s *BookingSessionService) PlotPrices(sessionID string, w io.Writer) error {
	snapshot, err := s.store.GetSession(sessionID)
	if err != nil {
		return err
	}
	period := fmt.Sprintf("%s - %s", snapshot.Criteria.EntryDate.Display(), snapshot.Criteria.ExitDate.Display())
	return util.PlotOfferPrices(snapshot.Result, period, w)
}
