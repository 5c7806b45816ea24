package routes

const (
	// Health
	Health = "/health"

	// Site API
	Listings = "/api/listings"
	Mortgage = "/api/mortgage"
	Booking  = "/api/booking"

	// Everything else under Root is served from the static asset root
	Root = "/"
)
