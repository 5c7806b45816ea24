package controllers

import (
	"net/http"
	"net/url"

	"github.com/estatesandstands/estates-service/internal/dtos"
	"github.com/estatesandstands/estates-service/internal/metrics"
	"github.com/estatesandstands/estates-service/internal/services"
	"github.com/estatesandstands/estates-service/internal/utils"
)

type ListingsController struct {
	svc services.ListingService
}

func NewListingsController(s services.ListingService) *ListingsController {
	return &ListingsController{svc: s}
}

// ----------------------------------------------------------------
// GET /api/listings?maxPrice=&location=&type=&q=
// ----------------------------------------------------------------
func (c *ListingsController) ListListingsHandler(w http.ResponseWriter, r *http.Request) {
	q := parseListingsQuery(r.URL.Query())

	listings, err := c.svc.Filter(r.Context(), q)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	metrics.ListingSearchResults.Observe(float64(len(listings)))

	utils.RespondWithJSON(w, http.StatusOK, dtos.ListingsResponse{Listings: listings})
}

// parseListingsQuery never fails: blank or malformed values take defaults.
func parseListingsQuery(values url.Values) dtos.ListingsQuery {
	q := dtos.DefaultListingsQuery()
	q.MaxPrice = utils.IntOr(values.Get("maxPrice"), dtos.DefaultMaxPrice)
	q.Location = utils.StringOr(values.Get("location"), dtos.FilterAll)
	q.Type = utils.StringOr(values.Get("type"), dtos.FilterAll)
	q.Q = values.Get("q")
	return q
}
