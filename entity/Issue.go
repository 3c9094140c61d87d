package entity

import "time"

type Issue struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Category    string `gorm:"not null" json:"category"`
	Priority    string `gorm:"not null;default:medium" json:"priority"`
	Status      string `gorm:"not null;default:reported" json:"status"`

	Hostel string `json:"hostel"`
	Block  string `json:"block"`
	Room   string `json:"room"`

	ReporterID string `gorm:"index" json:"reporterId"`
	Reporter   string `json:"reporter"` // denormalized display name

	AssignedTo   *string `json:"assignedTo"`
	AssignedToID *string `json:"assignedToId"`

	Visibility string `gorm:"not null;default:public" json:"visibility"`

	ReportedDate time.Time `json:"reportedDate"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Images   []string       `gorm:"serializer:json" json:"images"`
	Comments []IssueComment `gorm:"foreignKey:IssueID" json:"comments"`
}

type IssueComment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	IssueID   string    `gorm:"index" json:"-"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
