package repository

import (
	"context"

	"neabi/internal/domain/entity"
	"neabi/internal/errors"
)

// Sentinel errors surfaced by EventRepository.Register. The conditional
// update cannot distinguish its failure causes, so the repository re-reads
// the row to report the precise one.
var (
	ErrEventNotFound           = errors.New("event not found")
	ErrRegistrationNotRequired = errors.New("event does not require registration")
	ErrEventCapacityReached    = errors.New("event capacity reached")
)

// EventFilter narrows event listings. Status is always set by the use case
// (default "upcoming"); "Todos" disables the category and type filters.
type EventFilter struct {
	Status    entity.EventStatus
	Category  string
	EventType entity.EventType
	Featured  bool
	Limit     int
	Offset    int
}

// EventRepository persists events.
type EventRepository interface {
	// List returns a page of events ordered by date ascending, then start
	// time ascending (soonest first).
	List(ctx context.Context, filter EventFilter) ([]*entity.Event, error)

	// Count returns the total number of events matching the filter, ignoring
	// Limit and Offset.
	Count(ctx context.Context, filter EventFilter) (int64, error)

	// FindBySlug retrieves an event regardless of status.
	FindBySlug(ctx context.Context, slug string) (*entity.Event, error)

	// FindByID retrieves an event by primary key.
	FindByID(ctx context.Context, id uint) (*entity.Event, error)

	// SlugExists reports whether any event already uses the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Create persists a new event row and backfills the generated ID.
	Create(ctx context.Context, event *entity.Event) error

	// Update applies the given column values to the event.
	Update(ctx context.Context, id uint, fields map[string]any) error

	// Delete hard-deletes the event.
	Delete(ctx context.Context, id uint) error

	// Register atomically increments the registered counter while it is below
	// capacity. Fails with ErrEventNotFound, ErrRegistrationNotRequired or
	// ErrEventCapacityReached.
	Register(ctx context.Context, id uint) error

	// DistinctCategories lists the distinct categories of non-cancelled
	// events, ordered by name.
	DistinctCategories(ctx context.Context) ([]string, error)

	// Stats aggregates event counters for the admin dashboard.
	Stats(ctx context.Context) (*entity.EventStats, error)
}
