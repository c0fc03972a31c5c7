package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "caseline:draft:"

// Draft sections mirror the steps of the intake form. Each section is cached
// independently so a half-finished form survives a page reload.
const (
	SectionContactInfo  = "contact_info"
	SectionEmployerInfo = "employer_info"
	SectionEvents       = "events"
	SectionComplaints   = "complaints"
	SectionCurrentStep  = "current_step"
)

var sections = []string{
	SectionContactInfo,
	SectionEmployerInfo,
	SectionEvents,
	SectionComplaints,
	SectionCurrentStep,
}

var (
	ErrDraftNotFound  = errors.New("draft not found")
	ErrUnknownSection = errors.New("unknown draft section")
)

// ValidSection reports whether name is one of the known draft sections.
func ValidSection(name string) bool {
	for _, s := range sections {
		if s == name {
			return true
		}
	}
	return false
}

// DraftStore is the keyed persistence port for form autosave: values are
// scoped per user, expire after the configured TTL (1 hour by default), and
// can be cleared as a whole scope when the form is submitted.
type DraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDraftStore(addr, password string, ttl time.Duration) *DraftStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &DraftStore{rdb: rdb, ttl: ttl}
}

// Ping verifies the cache is reachable; used by the health endpoint.
func (s *DraftStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *DraftStore) Close() error {
	return s.rdb.Close()
}

func key(userID, section string) string {
	return draftKeyPrefix + userID + ":" + section
}

// Set saves one section of a user's draft, resetting its expiry.
func (s *DraftStore) Set(ctx context.Context, userID, section string, data []byte) error {
	if !ValidSection(section) {
		return ErrUnknownSection
	}
	err := s.rdb.Set(ctx, key(userID, section), data, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to save draft section %q: %w", section, err)
	}
	return nil
}

// Get returns one section of a user's draft. Expired or missing sections
// yield ErrDraftNotFound.
func (s *DraftStore) Get(ctx context.Context, userID, section string) ([]byte, error) {
	if !ValidSection(section) {
		return nil, ErrUnknownSection
	}
	data, err := s.rdb.Get(ctx, key(userID, section)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft section %q: %w", section, err)
	}
	return data, nil
}

// Delete removes one section of a user's draft.
func (s *DraftStore) Delete(ctx context.Context, userID, section string) error {
	if !ValidSection(section) {
		return ErrUnknownSection
	}
	return s.rdb.Del(ctx, key(userID, section)).Err()
}

// Clear removes every draft section for the user, e.g. after submission.
func (s *DraftStore) Clear(ctx context.Context, userID string) error {
	keys := make([]string, len(sections))
	for i, section := range sections {
		keys[i] = key(userID, section)
	}
	return s.rdb.Del(ctx, keys...).Err()
}
