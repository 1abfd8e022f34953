package model

import "time"

// Enrollment is a user's registration for the event.
type Enrollment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CPF       string    `gorm:"column:cpf;size:14;not null" json:"cpf"`
	Birthday  time.Time `gorm:"not null" json:"birthday"`
	Phone     string    `gorm:"size:32;not null" json:"phone"`
	UserID    int64     `gorm:"uniqueIndex;not null" json:"userId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	// Associations
	User    User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Address Address `gorm:"foreignKey:EnrollmentID" json:"Address"`
}

// Address is the postal address attached to an enrollment.
type Address struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	CEP           string    `gorm:"column:cep;size:9;not null" json:"cep"`
	Street        string    `gorm:"size:255;not null" json:"street"`
	City          string    `gorm:"size:255;not null" json:"city"`
	State         string    `gorm:"size:2;not null" json:"state"`
	Number        string    `gorm:"size:16;not null" json:"number"`
	Neighborhood  string    `gorm:"size:255;not null" json:"neighborhood"`
	AddressDetail string    `gorm:"size:255" json:"addressDetail"`
	EnrollmentID  int64     `gorm:"uniqueIndex;not null" json:"enrollmentId"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"not null" json:"updatedAt"`
}
