package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-widget/api/hotel"
	"booking-widget/config"
	redisdao "booking-widget/dao/redis"
	"booking-widget/db"
	"booking-widget/server"
	services "booking-widget/service"
	"booking-widget/util"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../../resources/find_rooms_response.json"

func newTestRouter(t *testing.T) (*mux.Router, *hotel.HotelApiClientMock) {
	t.Helper()
	router, hotelAPI, _ := newTestRouterWithRedis(t)
	return router, hotelAPI
}

func newTestRouterWithRedis(t *testing.T) (*mux.Router, *hotel.HotelApiClientMock, *db.MockRedisClient) {
	t.Helper()
	hotelAPI := hotel.NewHotelApiClientMock(fixturePath)
	redisClient := db.NewMockRedisClient(context.Background())
	store := redisdao.NewRedisSessionDAO(redisClient, time.Hour)
	sessions := services.NewBookingSessionService(store, hotelAPI, "hotel-test", util.NewPriceFormatter("en"), services.NewNoticeRecorder())

	muxRouter := mux.NewRouter()
	server.NewRouter(NewSessionHandler(sessions), muxRouter).RegisterRoutes()
	return muxRouter, hotelAPI, redisClient
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, SessionResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var resp SessionResponse
	if rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr, resp
}

func TestSessionHandler_Ping(t *testing.T) {
	router, _ := newTestRouter(t)

	rr, _ := do(t, router, "GET", "/ping", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rr.Body.String())
}

func TestSessionHandler_BookingFlow(t *testing.T) {
	router, hotelAPI := newTestRouter(t)

	rr, created := do(t, router, "POST", "/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotEmpty(t, created.SessionID)
	assert.Equal(t, services.PhaseSearch, created.State.Phase)
	base := "/v1/sessions/" + created.SessionID

	rr, resp := do(t, router, "POST", base+"/search", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.Len(t, resp.Notices, 1)
	assert.Equal(t, services.NoticeWarning, resp.Notices[0].Kind)
	assert.Contains(t, resp.Fields, "entryDate")

	rr, _ = do(t, router, "PUT", base+"/criteria", `{"entryDate":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, resp = do(t, router, "PUT", base+"/criteria", `{"entryDate":"2024-06-01","exitDate":"2024-06-05","adults":2,"children":1}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2024-06-01", resp.State.Criteria.EntryDate.String())

	rr, resp = do(t, router, "POST", base+"/search", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, services.PhaseResults, resp.State.Phase)
	require.NotNil(t, resp.State.Results)
	assert.Len(t, resp.State.Results.Rooms, 2)
	require.NotNil(t, resp.State.Results.BlockedAdvisory)
	assert.Equal(t, 1, resp.State.Results.BlockedAdvisory.Count)
	assert.Nil(t, resp.State.Reservation)

	rr, _ = do(t, router, "POST", base+"/rooms/room-cabana/toggle", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, resp = do(t, router, "POST", base+"/rooms/room-suite/toggle", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, resp.State.Reservation)
	assert.Equal(t, 342000.0, resp.State.Reservation.Total)

	rr, resp = do(t, router, "POST", base+"/rooms/room-suite/photos/previous", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, resp.State.Results.Rooms[0].Photo.Index)

	rr, resp = do(t, router, "PUT", base+"/rooms/room-suite/photos/7", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 2, resp.State.Results.Rooms[0].Photo.Index)

	rr, _ = do(t, router, "GET", base+"/prices/chart", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Suite Rio")

	rr, resp = do(t, router, "POST", base+"/reservation", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, resp.Fields, "name")
	assert.Empty(t, hotelAPI.Reservations())

	rr, _ = do(t, router, "PUT", base+"/guest", `{"name":"Ana","email":"ana@example.com","phone":"555"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, resp = do(t, router, "POST", base+"/reservation", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, services.PhaseSearch, resp.State.Phase)
	assert.Nil(t, resp.State.Results)
	require.Len(t, resp.Notices, 1)
	assert.Equal(t, services.NoticeSuccess, resp.Notices[0].Kind)

	rr, _ = do(t, router, "DELETE", base, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr, _ = do(t, router, "GET", base, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	reservations := hotelAPI.Reservations()
	require.Len(t, reservations, 1)
	assert.Equal(t, 342000.0, reservations[0].Price)
	assert.Equal(t, []string{"room-suite"}, reservations[0].RoomsIDs)
	assert.Equal(t, "2024-06-01 00:00:00.000", reservations[0].EntryDate)
}

func TestSessionHandler_UnknownSession(t *testing.T) {
	router, _ := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/v1/sessions/missing"},
		{"DELETE", "/v1/sessions/missing"},
		{"POST", "/v1/sessions/missing/search"},
		{"POST", "/v1/sessions/missing/rooms/r1/toggle"},
		{"GET", "/v1/sessions/missing/prices/chart"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rr, _ := do(t, router, p.method, p.path, "")
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestSessionHandler_SetCriteriaKeepsOmittedFields(t *testing.T) {
	router, _ := newTestRouter(t)
	_, created := do(t, router, "POST", "/v1/sessions", "")
	base := "/v1/sessions/" + created.SessionID

	rr, _ := do(t, router, "PUT", base+"/criteria", `{"entryDate":"2024-06-01","exitDate":"2024-06-05","adults":2,"children":1}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, resp := do(t, router, "PUT", base+"/criteria", `{"adults":3}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2024-06-01", resp.State.Criteria.EntryDate.String())
	assert.Equal(t, "2024-06-05", resp.State.Criteria.ExitDate.String())
	assert.Equal(t, 3, resp.State.Criteria.Adults)
	assert.Equal(t, 1, resp.State.Criteria.Children)

	rr, resp = do(t, router, "PUT", base+"/criteria", `{"entryDate":"2024-06-02"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2024-06-02", resp.State.Criteria.EntryDate.String())
	assert.Equal(t, 3, resp.State.Criteria.Adults)

	rr, resp = do(t, router, "PUT", base+"/criteria", `{"exitDate":""}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, resp.State.Criteria.ExitDate.IsZero())
	assert.Equal(t, "2024-06-02", resp.State.Criteria.EntryDate.String())

	rr, _ = do(t, router, "PUT", base+"/criteria", `{"nights":3}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionHandler_PriceChartStatuses(t *testing.T) {
	router, _, redisClient := newTestRouterWithRedis(t)
	_, created := do(t, router, "POST", "/v1/sessions", "")
	require.NoError(t, redisClient.Set(fmt.Sprintf(config.SESSION_KEY_FORMAT_V1, "broken"), "{not json", 0))

	tests := []struct {
		name       string
		path       string
		statusCode int
	}{
		{"No Results Yet", "/v1/sessions/" + created.SessionID + "/prices/chart", http.StatusConflict},
		{"Unknown Session", "/v1/sessions/missing/prices/chart", http.StatusNotFound},
		{"Unreadable Session", "/v1/sessions/broken/prices/chart", http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr, _ := do(t, router, "GET", test.path, "")
			assert.Equal(t, test.statusCode, rr.Code)
		})
	}
}
