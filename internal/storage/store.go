// Package storage defines the persistence contract for check-in state.
//
// Every aggregate (roster, seat map, selections, passes) is read and written
// as a whole record keyed by group ID. Writes are last-writer-wins: two
// callers updating the same record concurrently will silently overwrite each
// other. That matches the product's wizard flow, where each screen loads its
// slice on entry and writes it back wholesale.
package storage

import (
	"context"
	"errors"

	"github.com/cx-tal-miterani/group-checkin/internal/models"
)

var ErrNotFound = errors.New("not found")

// Store is the repository interface for all check-in aggregates.
type Store interface {
	// Groups.
	ListGroups(ctx context.Context) ([]models.Group, error)
	GetGroup(ctx context.Context, id string) (*models.Group, error)
	PutGroup(ctx context.Context, group *models.Group) error
	// DeleteGroup removes the group and cascades to its roster, seat map,
	// service selections and boarding passes.
	DeleteGroup(ctx context.Context, id string) error

	// Per-group whole-record aggregates. Getters return ErrNotFound when no
	// record has been written yet; callers default to an empty record.
	GetRoster(ctx context.Context, groupID string) (*models.Roster, error)
	PutRoster(ctx context.Context, roster *models.Roster) error

	GetSeatMap(ctx context.Context, groupID string) (*models.SeatMap, error)
	PutSeatMap(ctx context.Context, seatMap *models.SeatMap) error

	GetSelections(ctx context.Context, groupID string) (*models.ServiceSelections, error)
	PutSelections(ctx context.Context, selections *models.ServiceSelections) error

	GetBoardingPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error)
	PutBoardingPasses(ctx context.Context, passes *models.BoardingPassSet) error

	// Close releases any resources held by the store.
	Close() error
}
