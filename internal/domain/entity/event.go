package entity

import "time"

// EventStatus is the lifecycle stage of an event, also used as a list filter.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// IsValid checks if the EventStatus is a valid value.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	default:
		return false
	}
}

// EventType describes how an event is attended.
type EventType string

const (
	EventTypePresencial EventType = "presencial"
	EventTypeOnline     EventType = "online"
	EventTypeHibrido    EventType = "hibrido"
)

// IsValid checks if the EventType is a valid value.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypePresencial, EventTypeOnline, EventTypeHibrido:
		return true
	default:
		return false
	}
}

// Event is a scheduled activity with optional capacity-limited registration.
// Invariant: Registered never exceeds Capacity while RegistrationRequired.
type Event struct {
	ID                   uint
	Title                string
	Slug                 string
	Description          string
	Date                 time.Time
	StartTime            string
	EndTime              string
	Location             string
	Category             string
	EventType            EventType
	Capacity             int
	Registered           int
	Organizer            string
	Speakers             []string
	ImageURL             string
	Status               EventStatus
	Featured             bool
	RegistrationRequired bool
	Price                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// EventStats aggregates counters for the admin dashboard.
type EventStats struct {
	Total              int64 `json:"total"`
	Upcoming           int64 `json:"upcoming"`
	Ongoing            int64 `json:"ongoing"`
	Completed          int64 `json:"completed"`
	TotalRegistrations int64 `json:"totalRegistrations"`
}
