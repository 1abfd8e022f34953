package model

// All lists every table owned or read by the service, in migration order.
func All() []any {
	return []any{
		&User{},
		&Session{},
		&Enrollment{},
		&Address{},
		&TicketType{},
		&Ticket{},
		&Hotel{},
		&Room{},
	}
}
