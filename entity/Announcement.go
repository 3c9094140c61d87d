package entity

import "time"

type Announcement struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `json:"content"`
	Priority string `gorm:"not null;default:medium" json:"priority"`

	// a specific hostel name, a comma-separated list, or "All Hostels"
	Hostel string `gorm:"not null" json:"hostel"`

	AuthorID string `json:"authorId"`
	Author   string `json:"author"` // denormalized display name
	Type     string `gorm:"not null;default:general" json:"type"`

	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
