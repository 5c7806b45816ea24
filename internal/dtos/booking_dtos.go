package dtos

// BookingRequest is the body of POST /api/booking after stringification and
// trimming.
type BookingRequest struct {
	Name      string `json:"name"      validate:"required"`
	Phone     string `json:"phone"     validate:"required"`
	VisitDate string `json:"visitDate" validate:"required,datetime=2006-01-02"`
}

type BookingResponse struct {
	Message   string `json:"message"`
	Reference string `json:"reference"`
}
