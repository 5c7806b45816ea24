package services

import (
	"context"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/estatesandstands/estates-service/internal/dtos"
	"github.com/estatesandstands/estates-service/internal/utils"
)

type MortgageService interface {
	Calculate(ctx context.Context, req dtos.MortgageRequest) (*dtos.MortgageResponse, error)
}

type mortgageService struct {
	validate *validator.Validate
}

func NewMortgageService() MortgageService {
	return &mortgageService{validate: validator.New()}
}

// mortgageTerms are the derived inputs the amortization formula needs.
// NaN fails every gt check, so it is rejected here too.
type mortgageTerms struct {
	LoanAmount float64 `validate:"gt=0"`
	AnnualRate float64 `validate:"gt=0"`
	Years      int     `validate:"gt=0"`
}

// Calculate returns the fixed-rate amortized monthly payment:
//
//	P * r * (1+r)^n / ((1+r)^n - 1)
//
// with P = price - deposit, r = rate/100/12 and n = years*12.
func (s *mortgageService) Calculate(_ context.Context, req dtos.MortgageRequest) (*dtos.MortgageResponse, error) {
	terms := mortgageTerms{
		LoanAmount: req.Price - req.Deposit,
		AnnualRate: req.Rate,
		Years:      req.Years,
	}
	if err := s.validate.Struct(terms); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidMortgageValues, err)
	}

	monthlyRate := (terms.AnnualRate / 100) / 12
	payments := terms.Years * 12
	growth := math.Pow(1+monthlyRate, float64(payments))
	monthlyPayment := (terms.LoanAmount * monthlyRate * growth) / (growth - 1)

	loan := roundCents(terms.LoanAmount)
	monthly := roundCents(monthlyPayment)
	if !isFinite(loan) || !isFinite(monthly) {
		return nil, fmt.Errorf("%w: result out of range", utils.ErrInvalidMortgageValues)
	}

	return &dtos.MortgageResponse{
		LoanAmount:     loan,
		MonthlyPayment: monthly,
		Payments:       payments,
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
