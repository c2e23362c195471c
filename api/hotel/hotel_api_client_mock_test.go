package hotel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"booking-widget/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "find_rooms_response.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMockFindRooms_Success(t *testing.T) {
	client := NewHotelApiClientMock(writeFixture(t, `{"availableRooms": [{"id": "r1"}], "hasBlockedDates": true, "blockedRooms": ["r9"]}`))

	response, err := client.FindRooms(context.Background(), "hotel-1", testCriteria())

	require.NoError(t, err)
	assert.Equal(t, models.ShapeEnvelope, response.Shape)
	assert.Equal(t, 1, response.TotalAvailable)
	assert.Equal(t, 1, response.BlockedCount())
	assert.Equal(t, "r9", response.BlockedRooms[0].ID)
}

func TestMockFindRooms_MalformedJSON(t *testing.T) {
	client := NewHotelApiClientMock(writeFixture(t, `{"invalid_json`))

	response, err := client.FindRooms(context.Background(), "hotel-1", testCriteria())

	assert.Error(t, err)
	assert.Nil(t, response)
}

func TestMockCreateReservation_Records(t *testing.T) {
	client := NewHotelApiClientMock("")

	err := client.CreateReservation(context.Background(), models.Reservation{Name: "Ana", RoomsIDs: []string{"r1"}})

	require.NoError(t, err)
	require.Len(t, client.Reservations(), 1)
	assert.Equal(t, "Ana", client.Reservations()[0].Name)
}
