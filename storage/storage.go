package storage

import (
	"context"
	"errors"

	"github.com/Daniellmm/3D-backend/models"
)

// ErrNotFound is returned when no listing matches the requested id,
// including ids that do not parse as a valid ObjectID.
var ErrNotFound = errors.New("listing not found")

// ListingStore is the persistence contract the HTTP handlers depend on.
type ListingStore interface {
	InsertListing(ctx context.Context, listing models.Listing) (string, error)
	GetAllListings(ctx context.Context) ([]models.Listing, error)
	GetListingByID(ctx context.Context, id string) (models.Listing, error)
}
