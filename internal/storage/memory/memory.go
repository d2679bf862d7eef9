// Package memory provides an in-memory Store used by tests and the
// database-free demo mode.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/cx-tal-miterani/group-checkin/internal/models"
	"github.com/cx-tal-miterani/group-checkin/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps every aggregate in maps guarded by a single RWMutex. Records
// are copied through JSON on the way in and out, so callers never share
// memory with the store. This mirrors the text-serialized record semantics
// of the persistent backends.
type Store struct {
	mu         sync.RWMutex
	groups     map[string]models.Group
	rosters    map[string]models.Roster
	seatMaps   map[string]models.SeatMap
	selections map[string]models.ServiceSelections
	passes     map[string]models.BoardingPassSet
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		groups:     make(map[string]models.Group),
		rosters:    make(map[string]models.Roster),
		seatMaps:   make(map[string]models.SeatMap),
		selections: make(map[string]models.ServiceSelections),
		passes:     make(map[string]models.BoardingPassSet),
	}
}

func clone[T any](src T, dst *T) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

func (s *Store) ListGroups(ctx context.Context) ([]models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		var out models.Group
		if err := clone(g, &out); err != nil {
			return nil, err
		}
		groups = append(groups, out)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].CreatedAt.Before(groups[j].CreatedAt)
	})
	return groups, nil
}

func (s *Store) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	var out models.Group
	if err := clone(g, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) PutGroup(ctx context.Context, group *models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored models.Group
	if err := clone(*group, &stored); err != nil {
		return err
	}
	s.groups[group.ID] = stored
	return nil
}

func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.groups, id)
	delete(s.rosters, id)
	delete(s.seatMaps, id)
	delete(s.selections, id)
	delete(s.passes, id)
	return nil
}

func (s *Store) GetRoster(ctx context.Context, groupID string) (*models.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rosters[groupID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	var out models.Roster
	if err := clone(r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) PutRoster(ctx context.Context, roster *models.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored models.Roster
	if err := clone(*roster, &stored); err != nil {
		return err
	}
	s.rosters[roster.GroupID] = stored
	return nil
}

func (s *Store) GetSeatMap(ctx context.Context, groupID string) (*models.SeatMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.seatMaps[groupID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	var out models.SeatMap
	if err := clone(m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) PutSeatMap(ctx context.Context, seatMap *models.SeatMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored models.SeatMap
	if err := clone(*seatMap, &stored); err != nil {
		return err
	}
	s.seatMaps[seatMap.GroupID] = stored
	return nil
}

func (s *Store) GetSelections(ctx context.Context, groupID string) (*models.ServiceSelections, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sel, ok := s.selections[groupID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	var out models.ServiceSelections
	if err := clone(sel, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) PutSelections(ctx context.Context, selections *models.ServiceSelections) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored models.ServiceSelections
	if err := clone(*selections, &stored); err != nil {
		return err
	}
	s.selections[selections.GroupID] = stored
	return nil
}

func (s *Store) GetBoardingPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.passes[groupID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	var out models.BoardingPassSet
	if err := clone(p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) PutBoardingPasses(ctx context.Context, passes *models.BoardingPassSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored models.BoardingPassSet
	if err := clone(*passes, &stored); err != nil {
		return err
	}
	s.passes[passes.GroupID] = stored
	return nil
}

func (s *Store) Close() error { return nil }
