package app

import (
	"fmt"

	"github.com/estatesandstands/estates-service/internal/config"
	"github.com/estatesandstands/estates-service/internal/models"
	"github.com/estatesandstands/estates-service/internal/repositories"
	"github.com/estatesandstands/estates-service/internal/services"
	"github.com/estatesandstands/estates-service/internal/utils"
)

// App struct holds references to config, the listing store & services.
type App struct {
	Config          *config.Config
	Listings        repositories.ListingRepository
	ListingService  services.ListingService
	MortgageService services.MortgageService
	BookingService  services.BookingService
}

// NewApp sets up the core application context. The listing catalogue is
// read once here and is immutable afterwards.
func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Info("Initializing estates-service App")

	listings := models.DefaultListings()
	if cfg.ListingsFile != "" {
		loaded, err := repositories.LoadListingsFile(cfg.ListingsFile)
		if err != nil {
			return nil, fmt.Errorf("load listings from %s: %w", cfg.ListingsFile, err)
		}
		listings = loaded
		utils.Logger.Infof("Loaded %d listings from %s", len(listings), cfg.ListingsFile)
	}

	notifier := services.NewNoopBookingNotifier()
	if cfg.BookingEmailEnabled() {
		notifier = services.NewSendgridBookingNotifier(cfg.SendgridAPIKey, services.SendgridNotifierConfig{
			OrganizationName: cfg.OrganizationName,
			FromEmail:        cfg.SendgridFromEmail,
			ToEmail:          cfg.BookingNotifyEmail,
		})
		utils.Logger.Infof("Booking notifications enabled (to %s)", cfg.BookingNotifyEmail)
	}

	a := NewAppWithListings(cfg, listings, notifier, nil)
	utils.Logger.Infof("Listing store ready with %d listings", a.Listings.Count())
	return a, nil
}

// NewAppWithListings wires the services around an explicit catalogue. Tests
// use it to inject fixtures and a fixed clock.
func NewAppWithListings(
	cfg *config.Config,
	listings []models.Listing,
	notifier services.BookingNotifier,
	clock services.Clock,
) *App {
	repo := repositories.NewInMemoryListingRepository(listings)
	return &App{
		Config:          cfg,
		Listings:        repo,
		ListingService:  services.NewListingService(repo),
		MortgageService: services.NewMortgageService(),
		BookingService:  services.NewBookingService(notifier, clock),
	}
}

// Close is a no-op here but included for consistency.
func (a *App) Close() {
	utils.Logger.Info("estates-service app shutting down.")
}
