package models

import "time"

// PropertyTypes is the fixed set of accepted property categories.
var PropertyTypes = []string{
	"townhouse", "condominium", "apartment", "retail", "shopping_centre",
	"restaurant", "hospital", "warehouse", "factory", "farmland", "raw_land",
}

// PropertyStatuses is the fixed set of listing statuses.
var PropertyStatuses = []string{"active", "pending", "sold", "withdrawn"}

func ValidPropertyType(t string) bool {
	for _, v := range PropertyTypes {
		if v == t {
			return true
		}
	}
	return false
}

func ValidPropertyStatus(s string) bool {
	for _, v := range PropertyStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Property struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Title        string   `gorm:"size:200;not null" json:"title"`
	Address      string   `gorm:"size:255;not null" json:"address"`
	City         string   `gorm:"size:100;not null" json:"city"`
	State        string   `gorm:"size:100;not null" json:"state"`
	ZipCode      string   `gorm:"size:20;not null" json:"zip_code"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Price        float64  `gorm:"not null" json:"price"`
	PropertyType string   `gorm:"size:50;not null" json:"property_type"`

	Bedrooms      *int     `json:"bedrooms,omitempty"`
	Bathrooms     *float64 `json:"bathrooms,omitempty"`
	SquareFeet    *int     `json:"square_feet,omitempty"`
	LotSize       *float64 `json:"lot_size,omitempty"`
	YearBuilt     *int     `json:"year_built,omitempty"`
	ParkingSpaces *int     `json:"parking_spaces,omitempty"`

	Status string `gorm:"size:20;not null;default:active" json:"status"`

	// Set from the authenticated caller at creation, never updated afterwards.
	AgentID uint `gorm:"index;not null" json:"agent_id"`

	Images []PropertyImage `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PropertyImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"index;not null" json:"property_id"`
	ImageURL   string `gorm:"size:255;not null" json:"image_url"`
	IsPrimary  bool   `json:"is_primary"`
	Position   int    `json:"position"`
}

// PropertyFilter narrows property listings; zero values mean "no filter".
type PropertyFilter struct {
	City         string
	PropertyType string
	Status       string
	MinPrice     *float64
	MaxPrice     *float64
	Offset       int
	Limit        int
}

type PaginationMeta struct {
	Total  int64   `json:"total"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
	Next   *string `json:"next,omitempty"`
	Prev   *string `json:"prev,omitempty"`
}

type PaginatedPropertiesResponse struct {
	Data []Property     `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
