package usecase

import (
	"context"
	"time"

	"neabi/internal/domain/entity"
)

// --- Input DTOs ---

// ListEventsInput narrows and pages the public event listing. Zero values
// fall back to the defaults (page 1, limit 6, status upcoming).
type ListEventsInput struct {
	Page      int
	Limit     int
	Category  string
	EventType entity.EventType
	Status    entity.EventStatus
	Featured  bool
}

// CreateEventInput defines the data required to publish an event. Optional
// fields left at their zero value receive defaults (price "Gratuito", status
// upcoming); RegistrationRequired defaults to true when nil.
type CreateEventInput struct {
	Title                string
	Description          string
	Date                 time.Time
	StartTime            string
	EndTime              string
	Location             string
	Category             string
	EventType            entity.EventType
	Capacity             int
	Organizer            string
	Speakers             []string
	Featured             bool
	RegistrationRequired *bool
	Price                string
	Status               entity.EventStatus
}

// UpdateEventInput carries a partial update; nil fields are left untouched.
// Setting Title re-derives the slug.
type UpdateEventInput struct {
	Title                *string
	Description          *string
	Date                 *time.Time
	StartTime            *string
	EndTime              *string
	Location             *string
	Category             *string
	EventType            *entity.EventType
	Capacity             *int
	Organizer            *string
	Speakers             *[]string
	Featured             *bool
	RegistrationRequired *bool
	Price                *string
	Status               *entity.EventStatus
}

// --- Output DTOs ---

// EventView is the wire representation of an event.
type EventView struct {
	ID                   uint     `json:"id"`
	Title                string   `json:"title"`
	Slug                 string   `json:"slug"`
	Description          string   `json:"description"`
	Date                 string   `json:"date"`
	StartTime            string   `json:"start_time"`
	EndTime              string   `json:"end_time"`
	Location             string   `json:"location"`
	Category             string   `json:"category"`
	EventType            string   `json:"event_type"`
	Capacity             int      `json:"capacity"`
	Registered           int      `json:"registered"`
	Organizer            string   `json:"organizer"`
	Speakers             []string `json:"speakers"`
	ImageURL             string   `json:"image_url"`
	Status               string   `json:"status"`
	Featured             bool     `json:"featured"`
	RegistrationRequired bool     `json:"registration_required"`
	Price                string   `json:"price"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
}

// EventPagination describes the page window of an event listing.
type EventPagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalEvents int64 `json:"total_events"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ListEventsOutput is the paged event listing.
type ListEventsOutput struct {
	Events     []*EventView    `json:"events"`
	Pagination EventPagination `json:"pagination"`
}

// CreateEventOutput confirms a created event.
type CreateEventOutput struct {
	Message string `json:"message"`
	EventID uint   `json:"event_id"`
	Slug    string `json:"slug"`
}

// UpdateEventOutput confirms an update, or reports that nothing changed.
type UpdateEventOutput struct {
	Message string `json:"message"`
}

// EventUsecase defines the interface for event business operations.
type EventUsecase interface {
	// ListEvents returns a filtered page of events with pagination metadata.
	ListEvents(ctx context.Context, input ListEventsInput) (*ListEventsOutput, error)

	// GetEventBySlug fetches an event regardless of status.
	GetEventBySlug(ctx context.Context, slug string) (*EventView, error)

	// CreateEvent publishes a new event.
	CreateEvent(ctx context.Context, input CreateEventInput) (*CreateEventOutput, error)

	// UpdateEvent applies a partial update to the event.
	UpdateEvent(ctx context.Context, id uint, input UpdateEventInput) (*UpdateEventOutput, error)

	// DeleteEvent removes the event.
	DeleteEvent(ctx context.Context, id uint) error

	// Register claims one seat on a capacity-limited event.
	Register(ctx context.Context, id uint) error

	// Categories lists the distinct categories of non-cancelled events,
	// prefixed with the "Todos" sentinel.
	Categories(ctx context.Context) ([]string, error)

	// Stats aggregates event counters for the admin dashboard.
	Stats(ctx context.Context) (*entity.EventStats, error)
}
