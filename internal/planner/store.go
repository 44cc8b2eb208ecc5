package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/blob"
)

// Store owns the canonical event list and its persistence round-trip.
// It is the single writer: mutations are serialized by a mutex so no
// partially-written list is ever observable, even with concurrent API
// requests.
type Store struct {
	mu   sync.Mutex
	blob blob.Store
}

// NewStore creates a Store over the given blob store.
func NewStore(b blob.Store) *Store {
	return &Store{blob: b}
}

// Load reads the persisted event list. A missing key or an unparsable
// blob degrades to an empty list rather than an error: stored garbage
// must never brick the planner.
func (s *Store) Load() ([]Event, error) {
	data, err := s.blob.Get(blob.KeyEvents)
	if err != nil {
		if errors.Is(err, blob.ErrNoKey) {
			return []Event{}, nil
		}
		return nil, fmt.Errorf("planner: load events: %w", err)
	}
	var list []Event
	if err := json.Unmarshal(data, &list); err != nil {
		slog.Warn("stored event list is unparsable, starting empty",
			slog.String("error", err.Error()))
		return []Event{}, nil
	}
	if list == nil {
		list = []Event{}
	}
	return list, nil
}

// Save persists the full list, replacing prior content.
func (s *Store) Save(list []Event) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("planner: encode events: %w", err)
	}
	if err := s.blob.Put(blob.KeyEvents, data); err != nil {
		return fmt.Errorf("planner: save events: %w", err)
	}
	return nil
}

// Add validates ev, assigns it an immutable ID, appends it, and persists.
// It returns the new list; the created event is its last element. No
// dedup check is performed.
func (s *Store) Add(ev Event) ([]Event, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	ev.ID = newID()

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	list = append(list, ev)
	if err := s.Save(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the event at index, preserving relative order of the
// rest. A failed persist leaves the prior state fully intact.
func (s *Store) Delete(index int) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: %d of %d", apperr.ErrIndexOutOfRange, index, len(list))
	}
	next := make([]Event, 0, len(list)-1)
	next = append(next, list[:index]...)
	next = append(next, list[index+1:]...)
	if err := s.Save(next); err != nil {
		return nil, err
	}
	return next, nil
}

// DeleteByID removes the event carrying id. Identity-based deletion is
// the surface the API and MCP layers use; positional Delete exists for
// callers that still hold an index.
func (s *Store) DeleteByID(id string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i, ev := range list {
		if ev.ID == id {
			next := make([]Event, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if err := s.Save(next); err != nil {
				return nil, err
			}
			return next, nil
		}
	}
	return nil, fmt.Errorf("%w: event %s", apperr.ErrNotFound, id)
}

// Get returns the event carrying id.
func (s *Store) Get(id string) (Event, error) {
	list, err := s.Load()
	if err != nil {
		return Event{}, err
	}
	for _, ev := range list {
		if ev.ID == id {
			return ev, nil
		}
	}
	return Event{}, fmt.Errorf("%w: event %s", apperr.ErrNotFound, id)
}

// SetWorkEmail persists the invite recipient address.
func (s *Store) SetWorkEmail(email string) error {
	if err := validation.Validate(email, validation.Required, is.EmailFormat); err != nil {
		return fmt.Errorf("planner: work email: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.blob.Put(blob.KeyWorkEmail, []byte(email)); err != nil {
		return fmt.Errorf("planner: save work email: %w", err)
	}
	return nil
}

// WorkEmail returns the stored recipient address, or "" when unset.
func (s *Store) WorkEmail() (string, error) {
	data, err := s.blob.Get(blob.KeyWorkEmail)
	if err != nil {
		if errors.Is(err, blob.ErrNoKey) {
			return "", nil
		}
		return "", fmt.Errorf("planner: load work email: %w", err)
	}
	return string(data), nil
}
