package entity

import "time"

type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:student" json:"role"`

	// student fields
	Hostel string `json:"hostel,omitempty"`
	Block  string `json:"block,omitempty"`
	Room   string `json:"room,omitempty"`
	Year   string `json:"year,omitempty"`

	// admin fields
	Designation string `json:"designation,omitempty"`

	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
