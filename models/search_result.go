package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupportedResultShape is returned when a rooms/find response is
// neither a bare offer array nor an envelope object.
var ErrUnsupportedResultShape = errors.New("unsupported room search response shape")

type ResultShape string

const (
	ShapeBare     ResultShape = "bare"
	ShapeEnvelope ResultShape = "envelope"
)

// BlockedRoom identifies a room with blocked dates inside the searched window.
// The API sends either bare ids or {"id", "name"} objects.
type BlockedRoom struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func (b *BlockedRoom) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		b.ID = id
		return nil
	}
	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("failed to unmarshal blocked room: %w", err)
	}
	b.ID, b.Name = obj.ID, obj.Name
	return nil
}

// SearchResult is the canonical form of a rooms/find response, whichever
// shape the backend answered with.
type SearchResult struct {
	Shape           ResultShape   `json:"shape"`
	Offers          []RoomOffer   `json:"availableRooms"`
	TotalAvailable  int           `json:"totalAvailable"`
	HasBlockedDates bool          `json:"hasBlockedDates"`
	BlockedRooms    []BlockedRoom `json:"blockedRooms,omitempty"`
	Message         string        `json:"message,omitempty"`
}

var envelopeKeys = []string{"availableRooms", "totalAvailable", "hasBlockedDates", "blockedRooms", "message"}

type envelope struct {
	Offers          []RoomOffer   `json:"availableRooms"`
	TotalAvailable  *int          `json:"totalAvailable"`
	HasBlockedDates bool          `json:"hasBlockedDates"`
	BlockedRooms    []BlockedRoom `json:"blockedRooms"`
	Message         string        `json:"message"`
	Shape           ResultShape   `json:"shape"`
}

func (r *SearchResult) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrUnsupportedResultShape
	}

	switch trimmed[0] {
	case '[':
		var offers []RoomOffer
		if err := json.Unmarshal(trimmed, &offers); err != nil {
			return fmt.Errorf("failed to unmarshal room offers: %w", err)
		}
		*r = SearchResult{
			Shape:          ShapeBare,
			Offers:         offers,
			TotalAvailable: len(offers),
		}
		return nil
	case '{':
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keys); err != nil {
			return fmt.Errorf("failed to unmarshal search envelope: %w", err)
		}
		if !hasAnyKey(keys, envelopeKeys) {
			return fmt.Errorf("%w: object without availability fields", ErrUnsupportedResultShape)
		}
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return fmt.Errorf("failed to unmarshal search envelope: %w", err)
		}
		total := len(env.Offers)
		if env.TotalAvailable != nil {
			total = *env.TotalAvailable
		}
		shape := ShapeEnvelope
		if env.Shape == ShapeBare {
			shape = ShapeBare
		}
		*r = SearchResult{
			Shape:           shape,
			Offers:          env.Offers,
			TotalAvailable:  total,
			HasBlockedDates: env.HasBlockedDates,
			BlockedRooms:    env.BlockedRooms,
			Message:         env.Message,
		}
		return nil
	default:
		return fmt.Errorf("%w: starts with %q", ErrUnsupportedResultShape, trimmed[0])
	}
}

func hasAnyKey(m map[string]json.RawMessage, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func (r *SearchResult) IsEmpty() bool {
	return r == nil || len(r.Offers) == 0
}

func (r *SearchResult) BlockedCount() int {
	if r == nil {
		return 0
	}
	return len(r.BlockedRooms)
}

// Offer looks up an offer by room id.
func (r *SearchResult) Offer(roomID string) (RoomOffer, bool) {
	if r == nil {
		return RoomOffer{}, false
	}
	for _, o := range r.Offers {
		if o.ID == roomID {
			return o, true
		}
	}
	return RoomOffer{}, false
}
