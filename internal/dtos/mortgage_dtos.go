package dtos

// MortgageRequest is the body of POST /api/mortgage. Missing or non-numeric
// fields are read as 0, which the calculator then rejects.
type MortgageRequest struct {
	Price   float64 `json:"price"`
	Deposit float64 `json:"deposit"`
	Rate    float64 `json:"rate"` // annual, percent
	Years   int     `json:"years"`
}

type MortgageResponse struct {
	LoanAmount     float64 `json:"loanAmount"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	Payments       int     `json:"payments"`
}
