package hotel

import (
	"context"

	"booking-widget/models"
)

// HotelAPI defines the interface for interacting with the hotel booking API
type HotelAPI interface {
	FindRooms(ctx context.Context, hotelID string, criteria models.SearchCriteria) (*models.SearchResult, error)
	CreateReservation(ctx context.Context, reservation models.Reservation) error
}
