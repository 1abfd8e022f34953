package service

import (
	"event-hotels-backend/internal/model"
)

// Eligibility is the state reached while checking whether a user may see hotels.
type Eligibility int

const (
	NoEnrollment Eligibility = iota
	NoTicket
	Unpaid
	HotelNotIncluded
	Eligible
)

func (e Eligibility) String() string {
	switch e {
	case NoEnrollment:
		return "no_enrollment"
	case NoTicket:
		return "no_ticket"
	case Unpaid:
		return "unpaid"
	case HotelNotIncluded:
		return "hotel_not_included"
	case Eligible:
		return "eligible"
	default:
		return "unknown"
	}
}

// Evaluate derives the eligibility of an enrollment from its tickets.
// One paid ticket whose type grants a hotel is enough.
func Evaluate(tickets []model.Ticket) Eligibility {
	if len(tickets) == 0 {
		return NoTicket
	}

	state := Unpaid
	for _, t := range tickets {
		if !t.IsPaid() {
			continue
		}
		if t.TicketType.GrantsHotel() {
			return Eligible
		}
		state = HotelNotIncluded
	}
	return state
}
