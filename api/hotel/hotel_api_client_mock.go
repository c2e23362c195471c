package hotel

import (
	"context"
	"sync"

	"booking-widget/models"
	"booking-widget/util"

	"github.com/rs/zerolog/log"
)

// HotelApiClientMock serves room searches from a JSON fixture and keeps
// submitted reservations in memory.
type HotelApiClientMock struct {
	findRoomsPath string

	mu           sync.Mutex
	reservations []models.Reservation
}

// NewHotelApiClientMock creates a new instance of HotelApiClientMock
func NewHotelApiClientMock(findRoomsPath string) *HotelApiClientMock {
	return &HotelApiClientMock{findRoomsPath: findRoomsPath}
}

func (c *HotelApiClientMock) FindRooms(ctx context.Context, hotelID string, criteria models.SearchCriteria) (*models.SearchResult, error) {
	response, err := util.ReadSearchResultFromJSON(c.findRoomsPath)
	if err != nil {
		log.Error().Err(err).Str("component", "HotelApiClientMock").Msg("could not read find rooms response from json")
		return nil, err
	}
	return response, nil
}

func (c *HotelApiClientMock) CreateReservation(ctx context.Context, reservation models.Reservation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reservations = append(c.reservations, reservation)
	return nil
}

// Reservations returns the reservations received so far.
func (c *HotelApiClientMock) Reservations() []models.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Reservation, len(c.reservations))
	copy(out, c.reservations)
	return out
}
