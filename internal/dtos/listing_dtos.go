package dtos

import "github.com/estatesandstands/estates-service/internal/models"

const (
	DefaultMaxPrice = 150000
	FilterAll       = "all"
)

/*
ListingsQuery is the "request DTO" for GET /api/listings. Every field is
optional; blank or malformed values take the defaults below.

	maxPrice  int     150000
	location  string  "all"
	type      string  "all"
	q         string  ""
*/
type ListingsQuery struct {
	MaxPrice int
	Location string
	Type     string
	Q        string
}

// DefaultListingsQuery matches every listing priced at or under DefaultMaxPrice.
func DefaultListingsQuery() ListingsQuery {
	return ListingsQuery{
		MaxPrice: DefaultMaxPrice,
		Location: FilterAll,
		Type:     FilterAll,
	}
}

type ListingsResponse struct {
	Listings []models.Listing `json:"listings"`
}
