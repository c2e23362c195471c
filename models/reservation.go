package models

// Reservation is the body of POST /reservations.
type Reservation struct {
	EntryDate string   `json:"entryDate"`
	ExitDate  string   `json:"exitDate"`
	Price     float64  `json:"price"`
	Adults    int      `json:"adults"`
	Children  int      `json:"children"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	RoomsIDs  []string `json:"roomsIds"`
}

func NewReservation(criteria SearchCriteria, guest GuestDetails, roomIDs []string, price float64) Reservation {
	return Reservation{
		EntryDate: criteria.EntryDate.ReservationTimestamp(),
		ExitDate:  criteria.ExitDate.ReservationTimestamp(),
		Price:     price,
		Adults:    criteria.Adults,
		Children:  criteria.Children,
		Name:      guest.Name,
		Phone:     guest.Phone,
		Email:     guest.Email,
		RoomsIDs:  roomIDs,
	}
}
