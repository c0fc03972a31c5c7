package service

import (
	"context"
	"encoding/json"

	"github.com/caseline/caseline/internal/cache"
)

// DraftService autosaves sections of the intake form so a half-finished form
// survives reloads. Sections are opaque JSON; the server validates only the
// section name and leaves the payload to the form.
type DraftService struct {
	store *cache.DraftStore
}

func NewDraftService(store *cache.DraftStore) *DraftService {
	return &DraftService{store: store}
}

func (s *DraftService) Save(ctx context.Context, userID, section string, data json.RawMessage) error {
	return s.store.Set(ctx, userID, section, data)
}

func (s *DraftService) Get(ctx context.Context, userID, section string) (json.RawMessage, error) {
	data, err := s.store.Get(ctx, userID, section)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (s *DraftService) Delete(ctx context.Context, userID, section string) error {
	return s.store.Delete(ctx, userID, section)
}

// Clear drops every cached section, called once the form is submitted.
func (s *DraftService) Clear(ctx context.Context, userID string) error {
	return s.store.Clear(ctx, userID)
}
