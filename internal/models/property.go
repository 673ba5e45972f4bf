package models

import "time"

type PropertyType string

const (
	PropertyApartment  PropertyType = "Apartment"
	PropertyVilla      PropertyType = "Villa"
	PropertyPlot       PropertyType = "Plot"
	PropertyCommercial PropertyType = "Commercial"
)

var PropertyTypes = []PropertyType{PropertyApartment, PropertyVilla, PropertyPlot, PropertyCommercial}

type Property struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        PropertyType `json:"type"`
	Location    string       `json:"location"`
	Price       float64      `json:"price"`
	AreaSqft    float64      `json:"area_sqft"`
	Bed         int          `json:"bed"`
	Bath        int          `json:"bath"`
	Amenities   []string     `json:"amenities"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	OwnerName   string       `json:"owner_name"`
	OwnerPhone  string       `json:"owner_phone"`
	Images      []string     `json:"images"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}
