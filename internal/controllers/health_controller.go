package controllers

import (
	"net/http"

	"github.com/estatesandstands/estates-service/internal/app"
	"github.com/estatesandstands/estates-service/internal/dtos"
	"github.com/estatesandstands/estates-service/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

// HealthCheckHandler => GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.ListingService.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("estates-service unhealthy")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Service unhealthy",
			err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "ok"})
}
