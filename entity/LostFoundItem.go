package entity

import "time"

type LostFoundItem struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Type        string `gorm:"not null" json:"type"` // lost | found
	Category    string `json:"category"`
	Location    string `json:"location"`
	Hostel      string `json:"hostel"`

	ReporterID string `gorm:"index" json:"reporterId"`
	Reporter   string `json:"reporter"` // denormalized display name
	Contact    string `json:"contact"`
	Phone      string `json:"phone"`

	Status      string     `gorm:"not null;default:active" json:"status"` // active | claimed
	ClaimedBy   *string    `json:"claimedBy,omitempty"`
	ClaimedByID *string    `json:"claimedById,omitempty"`
	ClaimedAt   *time.Time `json:"claimedAt,omitempty"`

	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
