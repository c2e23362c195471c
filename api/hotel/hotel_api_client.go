package hotel

import (
	"context"
	"fmt"

	"booking-widget/api"
	"booking-widget/models"
)

const FIND_ROOMS_ENDPOINT = "/rooms/find"
const RESERVATIONS_ENDPOINT = "/reservations"

// HotelApiClient embeds the common HTTPClient
type HotelApiClient struct {
	*api.HTTPClient
}

// NewHotelApiClient creates a new instance of HotelApiClient
func NewHotelApiClient(httpClient *api.HTTPClient) *HotelApiClient {
	return &HotelApiClient{
		HTTPClient: httpClient,
	}
}

// FindRooms queries room availability for the criteria and decodes either
// response shape into a SearchResult. A 2xx answer without a body is not a
// valid shape.
func (c *HotelApiClient) FindRooms(ctx context.Context, hotelID string, criteria models.SearchCriteria) (*models.SearchResult, error) {
	var response models.SearchResult
	err := c.Request(ctx, "GET", FIND_ROOMS_ENDPOINT, criteria.ToValues(hotelID), nil, nil, &response)
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	if response.Shape == "" {
		return nil, fmt.Errorf("find rooms: %w: empty response body", models.ErrUnsupportedResultShape)
	}
	return &response, nil
}

// CreateReservation posts the reservation. Only the status class matters.
func (c *HotelApiClient) CreateReservation(ctx context.Context, reservation models.Reservation) error {
	if err := c.Request(ctx, "POST", RESERVATIONS_ENDPOINT, nil, nil, reservation, nil); err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}
