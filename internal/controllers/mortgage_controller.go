package controllers

import (
	"net/http"

	"github.com/estatesandstands/estates-service/internal/dtos"
	"github.com/estatesandstands/estates-service/internal/metrics"
	"github.com/estatesandstands/estates-service/internal/services"
	"github.com/estatesandstands/estates-service/internal/utils"
)

type MortgageController struct {
	svc          services.MortgageService
	maxBodyBytes int64
}

func NewMortgageController(s services.MortgageService, maxBodyBytes int64) *MortgageController {
	return &MortgageController{svc: s, maxBodyBytes: maxBodyBytes}
}

// ----------------------------------------------------------------
// POST /api/mortgage
// ----------------------------------------------------------------
func (c *MortgageController) CalculateHandler(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ReadJSONObject(r, c.maxBodyBytes)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	req := dtos.MortgageRequest{
		Price:   body.Float("price", 0),
		Deposit: body.Float("deposit", 0),
		Rate:    body.Float("rate", 0),
		Years:   body.Int("years", 0),
	}

	resp, err := c.svc.Calculate(r.Context(), req)
	metrics.RecordOutcome(metrics.MortgageCalculationsTotal, err)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
