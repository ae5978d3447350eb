package models

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"Str0ng!pass"`
}

// UserPayload carries whitelisted user update fields; nil pointers and empty
// strings mean "leave unchanged".
type UserPayload struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	BudgetMin   *float64 `json:"budget_min"`
	BudgetMax   *float64 `json:"budget_max"`
	Preferences string   `json:"preferences"`
}

// PropertyPayload is the create/update payload for properties. Optional
// numerics are pointers so absent and zero can be told apart.
type PropertyPayload struct {
	Title        string   `json:"title" form:"title"`
	Address      string   `json:"address" form:"address"`
	City         string   `json:"city" form:"city"`
	State        string   `json:"state" form:"state"`
	ZipCode      string   `json:"zip_code" form:"zip_code"`
	Price        *float64 `json:"price" form:"price"`
	PropertyType string   `json:"property_type" form:"property_type"`
	Status       string   `json:"status" form:"status"`

	Bedrooms      *int     `json:"bedrooms" form:"bedrooms"`
	Bathrooms     *float64 `json:"bathrooms" form:"bathrooms"`
	SquareFeet    *int     `json:"square_feet" form:"square_feet"`
	LotSize       *float64 `json:"lot_size" form:"lot_size"`
	YearBuilt     *int     `json:"year_built" form:"year_built"`
	ParkingSpaces *int     `json:"parking_spaces" form:"parking_spaces"`

	Latitude  *float64 `json:"latitude" form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`
}

// LeadPayload is the create/update payload for leads.
type LeadPayload struct {
	Status               string   `json:"status"`
	UserID               *uint    `json:"user_id"`
	PropertyID           *uint    `json:"property_id"`
	AssignedAgentID      *uint    `json:"assigned_agent_id"`
	Source               string   `json:"source"`
	PreferredContact     string   `json:"preferred_contact"`
	PreferredContactTime string   `json:"preferred_contact_time"`
	BudgetMin            *float64 `json:"budget_min"`
	BudgetMax            *float64 `json:"budget_max"`
	DesiredLocation      string   `json:"desired_location"`
	DesiredPropertyType  string   `json:"desired_property_type"`
	DesiredBedrooms      *int     `json:"desired_bedrooms"`
	DesiredBathrooms     *float64 `json:"desired_bathrooms"`
	Notes                string   `json:"notes"`
}

// CommunicationPayload is the create/update payload for messages.
type CommunicationPayload struct {
	LeadID      *uint  `json:"lead_id"`
	RecipientID *uint  `json:"recipient_id"`
	Message     string `json:"message"`
	Read        *bool  `json:"read"`
}
