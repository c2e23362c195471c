package models

import (
	"net/url"
	"strconv"
)

// SearchCriteria holds the stay parameters of an availability lookup.
type SearchCriteria struct {
	EntryDate Date `json:"entryDate"`
	ExitDate  Date `json:"exitDate"`
	Adults    int  `json:"adults"`
	Children  int  `json:"children"`
}

// DefaultSearchCriteria is the state of an untouched search form.
func DefaultSearchCriteria() SearchCriteria {
	return SearchCriteria{Adults: 1, Children: 0}
}

// ToValues builds the rooms/find query arguments for the given hotel.
func (c SearchCriteria) ToValues(hotelID string) url.Values {
	q := url.Values{}
	q.Set("hotelId", hotelID)
	q.Set("entryDate", c.EntryDate.ISOInstant())
	q.Set("exitDate", c.ExitDate.ISOInstant())
	q.Set("adults", strconv.Itoa(c.Adults))
	q.Set("children", strconv.Itoa(c.Children))
	return q
}
