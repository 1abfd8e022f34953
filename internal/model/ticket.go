package model

import "time"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType describes what a ticket grants.
type TicketType struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Price         int       `gorm:"not null" json:"price"`
	IsRemote      bool      `gorm:"not null" json:"isRemote"`
	IncludesHotel bool      `gorm:"not null" json:"includesHotel"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"not null" json:"updatedAt"`
}

// GrantsHotel reports whether holders of this type may look at hotels.
// Remote attendance never comes with lodging.
func (t TicketType) GrantsHotel() bool {
	return !t.IsRemote && t.IncludesHotel
}

// Ticket is a purchase tied to one enrollment.
type Ticket struct {
	ID           int64        `gorm:"primaryKey" json:"id"`
	TicketTypeID int64        `gorm:"index;not null" json:"ticketTypeId"`
	EnrollmentID int64        `gorm:"index;not null" json:"enrollmentId"`
	Status       TicketStatus `gorm:"size:16;not null" json:"status"`
	CreatedAt    time.Time    `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"not null" json:"updatedAt"`

	// Associations
	TicketType TicketType `gorm:"constraint:OnDelete:CASCADE" json:"TicketType"`
}

// IsPaid reports whether the ticket has been paid for.
func (t Ticket) IsPaid() bool {
	return t.Status == TicketStatusPaid
}
