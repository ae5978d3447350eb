package models

import "time"

// LeadStatuses lists the sales-funnel states in their implied order:
// new -> contacted -> in_progress -> qualified/unqualified -> converted/lost.
// Transitions are not enforced; any status may be set at any time.
var LeadStatuses = []string{
	"new", "contacted", "in_progress", "qualified", "unqualified", "converted", "lost",
}

// ContactMethods are the accepted values for a lead's preferred contact channel.
var ContactMethods = []string{"email", "phone", "text", "any"}

// ContactTimes are the accepted values for a lead's preferred contact time.
var ContactTimes = []string{"morning", "afternoon", "evening", "any"}

func ValidLeadStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func ValidContactMethod(m string) bool {
	for _, v := range ContactMethods {
		if v == m {
			return true
		}
	}
	return false
}

func ValidContactTime(t string) bool {
	for _, v := range ContactTimes {
		if v == t {
			return true
		}
	}
	return false
}

type Lead struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Status string `gorm:"size:50;not null;default:new" json:"status"`

	// The client who owns the lead; clients cannot reassign it.
	UserID          uint  `gorm:"index;not null" json:"user_id"`
	PropertyID      *uint `gorm:"index" json:"property_id,omitempty"`
	AssignedAgentID *uint `json:"assigned_agent_id,omitempty"`

	Source               string `gorm:"size:100" json:"source,omitempty"`
	PreferredContact     string `gorm:"size:20" json:"preferred_contact,omitempty"`
	PreferredContactTime string `gorm:"size:20" json:"preferred_contact_time,omitempty"`

	BudgetMin *float64 `json:"budget_min,omitempty"`
	BudgetMax *float64 `json:"budget_max,omitempty"`

	DesiredLocation     string   `gorm:"size:500" json:"desired_location,omitempty"`
	DesiredPropertyType string   `gorm:"size:500" json:"desired_property_type,omitempty"`
	DesiredBedrooms     *int     `json:"desired_bedrooms,omitempty"`
	DesiredBathrooms    *float64 `json:"desired_bathrooms,omitempty"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Communications []Communication `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"-"`
}
