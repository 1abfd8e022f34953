package model

import "time"

// Room belongs to exactly one hotel. It is always returned with its hotel embedded.
type Room struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	HotelID   int64     `gorm:"index;not null" json:"hotelId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	// Associations
	Hotel Hotel `gorm:"constraint:OnDelete:CASCADE" json:"Hotel"`
}
