package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/estatesandstands/estates-service/internal/app"
	"github.com/estatesandstands/estates-service/internal/controllers"
	"github.com/estatesandstands/estates-service/internal/middleware"
)

// NewRouter builds the dispatcher: the JSON API, the metrics endpoint, a JSON
// 404 for any other POST and the static site for any other GET/HEAD.
func NewRouter(a *app.App) *mux.Router {
	cfg := a.Config

	healthCtrl := controllers.NewHealthController(a)
	listingsCtrl := controllers.NewListingsController(a.ListingService)
	mortgageCtrl := controllers.NewMortgageController(a.MortgageService, cfg.MaxBodyBytes)
	bookingCtrl := controllers.NewBookingController(a.BookingService, cfg.MaxBodyBytes)

	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.AccessLog, middleware.PrometheusMetrics)

	router.HandleFunc(Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(Listings, listingsCtrl.ListListingsHandler).Methods(http.MethodGet)
	if cfg.MetricsPath != "" {
		router.Handle(cfg.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	router.HandleFunc(Mortgage, mortgageCtrl.CalculateHandler).Methods(http.MethodPost)
	router.HandleFunc(Booking, bookingCtrl.BookVisitHandler).Methods(http.MethodPost)
	router.PathPrefix(Root).HandlerFunc(controllers.EndpointNotFoundHandler).Methods(http.MethodPost)

	static := http.FileServer(http.Dir(cfg.StaticRoot))
	router.PathPrefix(Root).Handler(static).Methods(http.MethodGet, http.MethodHead)

	// Route middleware does not run for these two, so wrap them directly.
	router.MethodNotAllowedHandler = withMiddleware(http.HandlerFunc(controllers.UnsupportedMethodHandler))
	router.NotFoundHandler = withMiddleware(http.HandlerFunc(controllers.UnsupportedMethodHandler))

	return router
}

func withMiddleware(h http.Handler) http.Handler {
	return middleware.RequestID(middleware.AccessLog(middleware.PrometheusMetrics(h)))
}
