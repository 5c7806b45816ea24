package services

import (
	"context"
	"strings"

	"github.com/estatesandstands/estates-service/internal/dtos"
	"github.com/estatesandstands/estates-service/internal/models"
	"github.com/estatesandstands/estates-service/internal/repositories"
)

type ListingService interface {
	Filter(ctx context.Context, q dtos.ListingsQuery) ([]models.Listing, error)
	Ping(ctx context.Context) error
}

type listingService struct {
	repo repositories.ListingRepository
}

func NewListingService(repo repositories.ListingRepository) ListingService {
	return &listingService{repo: repo}
}

// Filter returns the listings matching every predicate of q, in catalogue
// order. An empty result is not an error.
func (s *listingService) Filter(ctx context.Context, q dtos.ListingsQuery) ([]models.Listing, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	term := normalizeSearchText(q.Q)
	out := make([]models.Listing, 0, len(all))
	for _, l := range all {
		if l.Price > q.MaxPrice {
			continue
		}
		if q.Location != dtos.FilterAll && string(l.Location) != q.Location {
			continue
		}
		if q.Type != dtos.FilterAll && string(l.Type) != q.Type {
			continue
		}
		if term != "" && !strings.Contains(normalizeSearchText(l.Title+string(l.Location)), term) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// Ping fails when the catalogue is empty: the site has nothing to show, which
// only happens when LISTINGS_FILE holds an empty array.
func (s *listingService) Ping(_ context.Context) error {
	if s.repo.Count() == 0 {
		return errEmptyCatalogue
	}
	return nil
}

// normalizeSearchText makes matching case- and space-insensitive:
// "NORTH VIEW" and "Northview" normalize to the same text.
func normalizeSearchText(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}
