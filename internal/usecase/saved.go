package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/naka-gawa/candidate-search/internal/storage"
)

// SavedCandidatesKey is the store key holding the accepted candidates.
const SavedCandidatesKey = "savedCandidates"

// SavedList is the append-only list of accepted candidates, mirrored to a
// store as a JSON array after every append.
type SavedList struct {
	store  storage.Store
	key    string
	items  []domain.Candidate
	logger *log.Logger
}

// NewSavedList creates a SavedList persisted under key (SavedCandidatesKey when empty).
func NewSavedList(store storage.Store, key string, logger *log.Logger) *SavedList {
	if key == "" {
		key = SavedCandidatesKey
	}
	return &SavedList{
		store:  store,
		key:    key,
		logger: logger,
	}
}

// Hydrate replaces the in-memory list with the stored one. Content that is
// not a JSON array of candidates is logged and removed from the store, and
// the list starts empty; only store access errors are returned.
func (s *SavedList) Hydrate(ctx context.Context) error {
	s.items = nil
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to read saved candidates: %w", err)
	}
	if !ok || raw == "" {
		return nil
	}
	var items []domain.Candidate
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Printf("Error parsing saved candidates: %v", err)
		if err := s.store.Delete(ctx, s.key); err != nil {
			return fmt.Errorf("failed to remove saved candidates: %w", err)
		}
		return nil
	}
	s.items = items
	s.logger.Printf("Usecase: hydrated %d saved candidates.", len(items))
	return nil
}

// Append adds c and writes the whole list to the store before returning.
// When the write fails the list is left unchanged.
func (s *SavedList) Append(ctx context.Context, c domain.Candidate) error {
	next := make([]domain.Candidate, len(s.items), len(s.items)+1)
	copy(next, s.items)
	next = append(next, c)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to marshal saved candidates: %w", err)
	}
	if err := s.store.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to persist saved candidates: %w", err)
	}
	s.items = next
	return nil
}

// Items returns a copy of the saved candidates in acceptance order.
func (s *SavedList) Items() []domain.Candidate {
	items := make([]domain.Candidate, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of saved candidates.
func (s *SavedList) Len() int {
	return len(s.items)
}
