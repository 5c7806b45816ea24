package controllers

import (
	"net/http"

	"github.com/estatesandstands/estates-service/internal/dtos"
	"github.com/estatesandstands/estates-service/internal/metrics"
	"github.com/estatesandstands/estates-service/internal/services"
	"github.com/estatesandstands/estates-service/internal/utils"
)

type BookingController struct {
	svc          services.BookingService
	maxBodyBytes int64
}

func NewBookingController(s services.BookingService, maxBodyBytes int64) *BookingController {
	return &BookingController{svc: s, maxBodyBytes: maxBodyBytes}
}

// ----------------------------------------------------------------
// POST /api/booking
// ----------------------------------------------------------------
func (c *BookingController) BookVisitHandler(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ReadJSONObject(r, c.maxBodyBytes)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	req := dtos.BookingRequest{
		Name:      body.String("name"),
		Phone:     body.String("phone"),
		VisitDate: body.String("visitDate"),
	}

	resp, err := c.svc.Book(r.Context(), req)
	metrics.RecordOutcome(metrics.BookingsTotal, err)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
