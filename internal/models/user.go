package models

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAgent  UserRole = "agent"
	RoleAdmin  UserRole = "admin"
)

// ValidUserRole reports whether role is one of the known roles.
func ValidUserRole(role string) bool {
	switch UserRole(role) {
	case RoleClient, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"size:100;not null" json:"name"`
	Email       string   `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password    string   `gorm:"size:255;not null" json:"-"`
	Role        UserRole `gorm:"size:20;not null;default:client" json:"role"`
	Phone       string   `gorm:"size:20" json:"phone,omitempty"`
	BudgetMin   *float64 `json:"budget_min,omitempty"`
	BudgetMax   *float64 `json:"budget_max,omitempty"`
	Preferences string   `gorm:"type:text" json:"preferences,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Leads []Lead `gorm:"foreignKey:UserID" json:"-"`
}
