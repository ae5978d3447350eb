package models

import "time"

type Communication struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	LeadID      uint   `gorm:"index;not null" json:"lead_id"`
	SenderID    uint   `gorm:"index;not null" json:"sender_id"`
	RecipientID *uint  `json:"recipient_id,omitempty"`
	Message     string `gorm:"type:text;not null" json:"message"`

	Read   bool       `json:"read"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
