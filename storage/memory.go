package storage

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Daniellmm/3D-backend/models"
)

// MemoryStore keeps listings in process memory. It backs handler tests
// that need a store without a running MongoDB.
type MemoryStore struct {
	mu       sync.RWMutex
	listings map[string]models.Listing
	order    []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{listings: make(map[string]models.Listing)}
}

func (s *MemoryStore) InsertListing(_ context.Context, listing models.Listing) (string, error) {
	listing.ID = primitive.NewObjectID()
	id := listing.ID.Hex()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[id] = listing
	s.order = append(s.order, id)
	return id, nil
}

func (s *MemoryStore) GetAllListings(_ context.Context) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]models.Listing, 0, len(s.order))
	for _, id := range s.order {
		listings = append(listings, s.listings[id])
	}
	return listings, nil
}

func (s *MemoryStore) GetListingByID(_ context.Context, id string) (models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, exists := s.listings[id]
	if !exists {
		return models.Listing{}, ErrNotFound
	}
	return listing, nil
}
