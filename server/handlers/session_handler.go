package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	redisdao "booking-widget/dao/redis"
	"booking-widget/logger"
	"booking-widget/models"
	services "booking-widget/service"
	"booking-widget/util"

	"github.com/gorilla/mux"
)

const (
	SESSION_ID_PATH_ARG  = "id"
	ROOM_ID_PATH_ARG     = "roomId"
	PHOTO_INDEX_PATH_ARG = "index"
)

// SessionResponse is the body of every session endpoint.
type SessionResponse struct {
	SessionID string              `json:"sessionId"`
	State     services.WidgetView `json:"state"`
	Notices   []services.Notice   `json:"notices"`
	Error     string              `json:"error,omitempty"`
	Fields    map[string][]string `json:"fields,omitempty"`
}

// criteriaPatch holds the search form fields present in a request body.
// Absent fields keep their current value.
type criteriaPatch struct {
	EntryDate *models.Date `json:"entryDate"`
	ExitDate  *models.Date `json:"exitDate"`
	Adults    *int         `json:"adults"`
	Children  *int         `json:"children"`
}

func (p criteriaPatch) applyTo(c models.SearchCriteria) models.SearchCriteria {
	if p.EntryDate != nil {
		c.EntryDate = *p.EntryDate
	}
	if p.ExitDate != nil {
		c.ExitDate = *p.ExitDate
	}
	if p.Adults != nil {
		c.Adults = *p.Adults
	}
	if p.Children != nil {
		c.Children = *p.Children
	}
	return c
}

type SessionHandler struct {
	sessions *services.BookingSessionService
}

func NewSessionHandler(sessions *services.BookingSessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Ping handles GET /ping
func (h *SessionHandler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Ping(); err != nil {
		logger.LoggerFromContext(r.Context(), "SessionHandler").Error().Err(err).Msg("session store unreachable")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// CreateSession handles POST /v1/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.sessions.CreateSession()
	if err != nil {
		h.writeStoreError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSessionResponse(outcome))
}

// GetSession handles GET /v1/sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.sessions.View(mux.Vars(r)[SESSION_ID_PATH_ARG])
	if err != nil {
		h.writeStoreError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(outcome))
}

// CloseSession handles DELETE /v1/sessions/{id}
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.CloseSession(mux.Vars(r)[SESSION_ID_PATH_ARG]); err != nil {
		h.writeStoreError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetCriteria handles PUT /v1/sessions/{id}/criteria. Only the fields in
// the body change; "" clears a date.
func (h *SessionHandler) SetCriteria(w http.ResponseWriter, r *http.Request) {
	var patch criteriaPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	h.apply(w, r, func(ctx context.Context, widget *services.BookingWidget) error {
		widget.SetCriteria(patch.applyTo(widget.Criteria()))
		return nil
	})
}

// Search handles POST /v1/sessions/{id}/search
func (h *SessionHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(ctx context.Context, widget *services.BookingWidget) error {
		_, err := widget.Search(ctx)
		return err
	})
}

// ToggleRoom handles POST /v1/sessions/{id}/rooms/{roomId}/toggle
func (h *SessionHandler) ToggleRoom(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)[ROOM_ID_PATH_ARG]
	h.apply(w, r, func(ctx context.Context, widget *services.BookingWidget) error {
		_, err := widget.ToggleSelection(roomID)
		return err
	})
}

// NextPhoto handles POST /v1/sessions/{id}/rooms/{roomId}/photos/next
func (h *SessionHandler) NextPhoto(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)[ROOM_ID_PATH_ARG]
	h.apply(w, r, func(ctx context.Context, widget *services.BookingWidget) error {
		_, err := widget.NextPhoto(roomID)
		return err
	})
}

// PreviousPhoto handles POST /v1/sessions/{id}/rooms/{roomId}/photos/previous
func (h *SessionHandler) PreviousPhoto(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)[ROOM_ID_PATH_ARG]
	h.apply(w, r, func(ctx context.Context, widget *services.BookingWidget) error {
		_, err := widget.PreviousPhoto(roomID)
		return err
	})
}

// JumpToPhoto handles PUT /v1/sessions/{id}/rooms/{roomId}/photos/{index}
func (h *SessionHandler) JumpToPhoto(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars[PHOTO_INDEX_PATH_ARG])
	if err != nil {
		http.Error(w, "Invalid argument "+PHOTO_INDEX_PATH_ARG, http.StatusBadRequest)
		return
	}
	roomID := vars[ROOM_ID_PATH_ARG]
	h.apply(w, r, func(ctx context.Context, widget *services.BookingWidget) error {
		_, err := widget.JumpToPhoto(roomID, index)
		return err
	})
}

// SetGuest handles PUT /v1/sessions/{id}/guest
func (h *SessionHandler) SetGuest(w http.ResponseWriter, r *http.Request) {
	var guest models.GuestDetails
	if !decodeBody(w, r, &guest) {
		return
	}
	h.apply(w, r, func(ctx context.Context, widget *services.BookingWidget) error {
		widget.SetGuestDetails(guest)
		return nil
	})
}

// Submit handles POST /v1/sessions/{id}/reservation
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(ctx context.Context, widget *services.BookingWidget) error {
		return widget.Submit(ctx)
	})
}

// PriceChart handles GET /v1/sessions/{id}/prices/chart
func (h *SessionHandler) PriceChart(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.sessions.PlotPrices(mux.Vars(r)[SESSION_ID_PATH_ARG], &buf); err != nil {
		if errors.Is(err, util.ErrNothingToPlot) {
			http.Error(w, "No search results to chart", http.StatusConflict)
			return
		}
		h.writeStoreError(r.Context(), w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *SessionHandler) apply(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, widget *services.BookingWidget) error) {
	sessionID := mux.Vars(r)[SESSION_ID_PATH_ARG]
	outcome, err := h.sessions.Apply(r.Context(), sessionID, op)
	if err != nil {
		h.writeStoreError(r.Context(), w, err)
		return
	}

	resp := newSessionResponse(outcome)
	status := http.StatusOK
	if outcome.Err != nil {
		status = statusFor(outcome.Err)
		resp.Error = outcome.Err.Error()
		if verr := services.IsValidationError(outcome.Err); verr != nil {
			resp.Fields = verr.Fields()
		}
		logger.LoggerFromContext(r.Context(), "SessionHandler").Debug().
			Err(outcome.Err).
			Str("session_id", sessionID).
			Int("status", status).
			Msg("operation failed")
	}
	writeJSON(w, status, resp)
}

func (h *SessionHandler) writeStoreError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, redisdao.ErrSessionNotFound) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	logger.LoggerFromContext(ctx, "SessionHandler").Error().Err(err).Msg("session request failed")
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func statusFor(err error) int {
	switch {
	case services.IsValidationError(err) != nil:
		return http.StatusUnprocessableEntity
	case services.IsTransportError(err) != nil:
		return http.StatusBadGateway
	case errors.Is(err, services.ErrUnknownRoom):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func newSessionResponse(outcome *services.SessionOutcome) SessionResponse {
	notices := outcome.Notices
	if notices == nil {
		notices = []services.Notice{}
	}
	return SessionResponse{
		SessionID: outcome.SessionID,
		State:     outcome.State,
		Notices:   notices,
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.LoggerFromContext(context.Background(), "SessionHandler").Error().Err(err).Msg("error encoding response")
	}
}
