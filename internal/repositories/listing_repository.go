package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/estatesandstands/estates-service/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// ListingRepository is the read-only listing store. Order is the insertion
// order of the catalogue and never changes for the life of the process.
type ListingRepository interface {
	List(ctx context.Context) ([]models.Listing, error)
	Count() int
}

/* ------------------------------------------------------------------
   In-memory implementation
------------------------------------------------------------------ */

type inMemoryListingRepo struct {
	listings []models.Listing
}

// NewInMemoryListingRepository copies listings; later changes to the
// caller's slice are not observed. No locking is needed since nothing
// writes after construction.
func NewInMemoryListingRepository(listings []models.Listing) ListingRepository {
	cp := make([]models.Listing, len(listings))
	copy(cp, listings)
	return &inMemoryListingRepo{listings: cp}
}

func (r *inMemoryListingRepo) List(_ context.Context) ([]models.Listing, error) {
	out := make([]models.Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

func (r *inMemoryListingRepo) Count() int {
	return len(r.listings)
}

/* ------------------------------------------------------------------
   File loader
------------------------------------------------------------------ */

var validate = validator.New()

// LoadListingsFile reads a JSON array of listings and validates every entry.
func LoadListingsFile(path string) ([]models.Listing, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listings file: %w", err)
	}
	return ParseListings(raw)
}

// ParseListings decodes and validates a JSON array of listings.
func ParseListings(raw []byte) ([]models.Listing, error) {
	var listings []models.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	seen := make(map[int]struct{}, len(listings))
	for i, l := range listings {
		if err := validate.Struct(l); err != nil {
			return nil, fmt.Errorf("listing #%d (id %d): %w", i, l.ID, err)
		}
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("listing #%d: duplicate id %d", i, l.ID)
		}
		seen[l.ID] = struct{}{}
	}
	return listings, nil
}
