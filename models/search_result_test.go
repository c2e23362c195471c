package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResult_UnmarshalBareArray(t *testing.T) {
	var result SearchResult
	err := json.Unmarshal([]byte(`[
		{"id": "r1", "photos": ["https://img/1.jpg", {"url": "https://img/2.jpg"}]},
		{"id": "r2"}
	]`), &result)

	require.NoError(t, err)
	assert.Equal(t, ShapeBare, result.Shape)
	assert.Equal(t, 2, result.TotalAvailable)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, result.Offers[0].PhotoURLs())
	assert.False(t, result.HasBlockedDates)
}

func TestSearchResult_UnmarshalEnvelope(t *testing.T) {
	var result SearchResult
	err := json.Unmarshal([]byte(`{
		"availableRooms": [{"id": "r1"}, {"id": "r2"}, {"id": "r3"}],
		"totalAvailable": 5,
		"hasBlockedDates": true,
		"blockedRooms": ["r7", {"id": "r8", "name": "Cabana"}],
		"message": "Algunas fechas bloqueadas"
	}`), &result)

	require.NoError(t, err)
	assert.Equal(t, ShapeEnvelope, result.Shape)
	assert.Len(t, result.Offers, 3)
	assert.Equal(t, 5, result.TotalAvailable)
	assert.True(t, result.HasBlockedDates)
	assert.Equal(t, 2, result.BlockedCount())
	assert.Equal(t, BlockedRoom{ID: "r8", Name: "Cabana"}, result.BlockedRooms[1])
	assert.Equal(t, "Algunas fechas bloqueadas", result.Message)
}

func TestSearchResult_EnvelopeWithoutTotalCountsOffers(t *testing.T) {
	var result SearchResult
	require.NoError(t, json.Unmarshal([]byte(`{"availableRooms": [{"id": "r1"}]}`), &result))

	assert.Equal(t, 1, result.TotalAvailable)
}

func TestSearchResult_MessageOnlyEnvelope(t *testing.T) {
	var result SearchResult
	require.NoError(t, json.Unmarshal([]byte(`{"message": "No hay habitaciones"}`), &result))

	assert.True(t, result.IsEmpty())
	assert.Equal(t, "No hay habitaciones", result.Message)
}

func TestSearchResult_RejectsOtherShapes(t *testing.T) {
	inputs := []string{`"rooms"`, `42`, `true`, `null`, `{"error": "boom"}`}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var result SearchResult
			err := json.Unmarshal([]byte(input), &result)
			assert.True(t, errors.Is(err, ErrUnsupportedResultShape), "got %v", err)
		})
	}
}

func TestSearchResult_SnapshotRoundTripKeepsShape(t *testing.T) {
	original := SearchResult{Shape: ShapeBare, Offers: []RoomOffer{{ID: "r1"}}, TotalAvailable: 1}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded SearchResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ShapeBare, decoded.Shape)
	assert.Equal(t, "r1", decoded.Offers[0].ID)
}

func TestSearchResult_Offer(t *testing.T) {
	result := &SearchResult{Offers: []RoomOffer{{ID: "r1", Name: "Doble"}}}

	offer, ok := result.Offer("r1")
	assert.True(t, ok)
	assert.Equal(t, "Doble", offer.Name)

	_, ok = result.Offer("missing")
	assert.False(t, ok)

	var none *SearchResult
	_, ok = none.Offer("r1")
	assert.False(t, ok)
}
