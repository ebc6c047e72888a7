package models

import "time"

// Customer is identified by mobile number. Name and place are overwritten on
// repeat bookings; the mobile itself is immutable once set.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Mobile string `gorm:"size:20;uniqueIndex;not null" json:"mobile"`
	Place  string `gorm:"size:100" json:"place"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
