package models

import "strings"

type GuestDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// MissingFields lists the blank contact fields in form order.
func (g GuestDetails) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(g.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(g.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(g.Phone) == "" {
		missing = append(missing, "phone")
	}
	return missing
}
