package models

// ListingType distinguishes residential stands from generic land plots.
type ListingType string

const (
	ListingTypeStand ListingType = "stand"
	ListingTypeLand  ListingType = "land"
)

// ListingLocation is the development area a listing belongs to.
type ListingLocation string

const (
	LocationNorth ListingLocation = "north"
	LocationEast  ListingLocation = "east"
	LocationSouth ListingLocation = "south"
)

// Listing is a single property shown in search results. Listings are
// created once at startup and never modified.
type Listing struct {
	ID       int             `json:"id"       validate:"gt=0"`
	Title    string          `json:"title"    validate:"required"`
	Type     ListingType     `json:"type"     validate:"oneof=stand land"`
	Location ListingLocation `json:"location" validate:"oneof=north east south"`
	Price    int             `json:"price"    validate:"gte=0"`
	Size     string          `json:"size"     validate:"required"`
}

// DefaultListings returns the catalogue the site ships with.
func DefaultListings() []Listing {
	return []Listing{
		{ID: 1, Title: "Northview Signature Stand", Type: ListingTypeStand, Location: LocationNorth, Price: 92000, Size: "500m²"},
		{ID: 2, Title: "Eastfield Garden Land", Type: ListingTypeLand, Location: LocationEast, Price: 43000, Size: "860m²"},
		{ID: 3, Title: "Southridge Elite Stand", Type: ListingTypeStand, Location: LocationSouth, Price: 76000, Size: "560m²"},
		{ID: 4, Title: "Northview Horizon Plot", Type: ListingTypeLand, Location: LocationNorth, Price: 51000, Size: "730m²"},
		{ID: 5, Title: "Eastfield Royal Stand", Type: ListingTypeStand, Location: LocationEast, Price: 110000, Size: "450m²"},
		{ID: 6, Title: "Southridge Crown Land", Type: ListingTypeLand, Location: LocationSouth, Price: 67000, Size: "910m²"},
	}
}
