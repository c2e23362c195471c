package models

// WidgetSnapshot is the persisted state of one booking widget session.
type WidgetSnapshot struct {
	Phase         string         `json:"phase"`
	Criteria      SearchCriteria `json:"criteria"`
	Result        *SearchResult  `json:"result,omitempty"`
	SelectedRooms []string       `json:"selectedRooms"`
	Guest         GuestDetails   `json:"guest"`
	PhotoIndexes  map[string]int `json:"photoIndexes,omitempty"`
}
