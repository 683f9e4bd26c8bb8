package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "neabi/internal/delivery/context"
	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/domain/repository"
	"neabi/internal/slug"
	"neabi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultEventPageSize = 6
	defaultEventPrice    = "Gratuito"

	eventDateLayout = "2006-01-02"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListEvents returns a filtered page of events with pagination metadata.
func (srv *eventService) ListEvents(ctx context.Context, input usecase.ListEventsInput) (*usecase.ListEventsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultEventPageSize
	}
	status := input.Status
	if status == "" {
		status = entity.EventStatusUpcoming
	}
	category := input.Category
	if category == filterAll {
		category = ""
	}
	eventType := input.EventType
	if string(eventType) == filterAll {
		eventType = ""
	}

	filter := repository.EventFilter{
		Status:    status,
		Category:  category,
		EventType: eventType,
		Featured:  input.Featured,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	total, err := srv.eventRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count events")
	}

	events, err := srv.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	views := make([]*usecase.EventView, 0, len(events))
	for _, event := range events {
		views = append(views, toEventView(event))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.ListEventsOutput{
		Events: views,
		Pagination: usecase.EventPagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalEvents: total,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	}, nil
}

// GetEventBySlug fetches an event regardless of status.
func (srv *eventService) GetEventBySlug(ctx context.Context, slugStr string) (*usecase.EventView, error) {
	event, err := srv.eventRepo.FindBySlug(ctx, slugStr)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to load event")
	}

	return toEventView(event), nil
}

// CreateEvent publishes a new event.
func (srv *eventService) CreateEvent(ctx context.Context, input usecase.CreateEventInput) (*usecase.CreateEventOutput, error) {
	slugStr := slug.Make(input.Title)

	exists, err := srv.eventRepo.SlugExists(ctx, slugStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check event slug")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateEventTitle
	}

	price := input.Price
	if price == "" {
		price = defaultEventPrice
	}
	status := input.Status
	if status == "" {
		status = entity.EventStatusUpcoming
	}
	registrationRequired := true
	if input.RegistrationRequired != nil {
		registrationRequired = *input.RegistrationRequired
	}
	speakers := input.Speakers
	if speakers == nil {
		speakers = []string{}
	}

	event := &entity.Event{
		Title:                input.Title,
		Slug:                 slugStr,
		Description:          input.Description,
		Date:                 input.Date,
		StartTime:            input.StartTime,
		EndTime:              input.EndTime,
		Location:             input.Location,
		Category:             input.Category,
		EventType:            input.EventType,
		Capacity:             input.Capacity,
		Organizer:            input.Organizer,
		Speakers:             speakers,
		Status:               status,
		Featured:             input.Featured,
		RegistrationRequired: registrationRequired,
		Price:                price,
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to create event", slog.String("title", input.Title), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID), slog.String("slug", slugStr))

	return &usecase.CreateEventOutput{
		Message: "Evento criado com sucesso",
		EventID: event.ID,
		Slug:    slugStr,
	}, nil
}

// UpdateEvent applies a partial update. A request with no recognized fields
// reports "no changes" without touching the row.
func (srv *eventService) UpdateEvent(ctx context.Context, id uint, input usecase.UpdateEventInput) (*usecase.UpdateEventOutput, error) {
	if _, err := srv.eventRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to load event for update")
	}

	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
		fields["slug"] = slug.Make(*input.Title)
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Date != nil {
		fields["date"] = *input.Date
	}
	if input.StartTime != nil {
		fields["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		fields["end_time"] = *input.EndTime
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.EventType != nil {
		fields["event_type"] = string(*input.EventType)
	}
	if input.Capacity != nil {
		fields["capacity"] = *input.Capacity
	}
	if input.Organizer != nil {
		fields["organizer"] = *input.Organizer
	}
	if input.Speakers != nil {
		fields["speakers"] = *input.Speakers
	}
	if input.Featured != nil {
		fields["featured"] = *input.Featured
	}
	if input.RegistrationRequired != nil {
		fields["registration_required"] = *input.RegistrationRequired
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Status != nil {
		fields["status"] = string(*input.Status)
	}

	if len(fields) == 0 {
		return &usecase.UpdateEventOutput{Message: noChangesMessage}, nil
	}

	if err := srv.eventRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}
		srv.log(ctx).Error("Failed to update event", slog.Any("eventID", id), slog.Any("error", err))

		return nil, err
	}

	return &usecase.UpdateEventOutput{Message: "Evento atualizado com sucesso"}, nil
}

// DeleteEvent removes the event.
func (srv *eventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := srv.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return errors.Wrap(err, "failed to delete event")
	}

	srv.log(ctx).Info("Event deleted", slog.Any("eventID", id))

	return nil
}

// Register claims one seat on the event. The repository increments the
// counter atomically, so the capacity ceiling holds under concurrent
// registrations.
func (srv *eventService) Register(ctx context.Context, id uint) error {
	err := srv.eventRepo.Register(ctx, id)
	switch {
	case err == nil:
		srv.log(ctx).Info("Event registration accepted", slog.Any("eventID", id))

		return nil
	case errors.Is(err, repository.ErrEventNotFound):
		return domainerrors.ErrEventNotFound
	case errors.Is(err, repository.ErrRegistrationNotRequired):
		return domainerrors.ErrRegistrationNotRequired
	case errors.Is(err, repository.ErrEventCapacityReached):
		return domainerrors.ErrEventFull
	default:
		return errors.Wrap(err, "failed to register for event")
	}
}

// Categories lists the distinct categories of non-cancelled events, prefixed
// with the sentinel the frontend uses to mean "no filter".
func (srv *eventService) Categories(ctx context.Context) ([]string, error) {
	categories, err := srv.eventRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list event categories")
	}

	return append([]string{filterAll}, categories...), nil
}

// Stats aggregates event counters for the admin dashboard.
func (srv *eventService) Stats(ctx context.Context) (*entity.EventStats, error) {
	stats, err := srv.eventRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate event stats")
	}

	return stats, nil
}

// toEventView flattens an event entity into its wire representation.
func toEventView(event *entity.Event) *usecase.EventView {
	speakers := event.Speakers
	if speakers == nil {
		speakers = []string{}
	}

	return &usecase.EventView{
		ID:                   event.ID,
		Title:                event.Title,
		Slug:                 event.Slug,
		Description:          event.Description,
		Date:                 event.Date.Format(eventDateLayout),
		StartTime:            event.StartTime,
		EndTime:              event.EndTime,
		Location:             event.Location,
		Category:             event.Category,
		EventType:            string(event.EventType),
		Capacity:             event.Capacity,
		Registered:           event.Registered,
		Organizer:            event.Organizer,
		Speakers:             speakers,
		ImageURL:             event.ImageURL,
		Status:               string(event.Status),
		Featured:             event.Featured,
		RegistrationRequired: event.RegistrationRequired,
		Price:                event.Price,
		CreatedAt:            event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            event.UpdatedAt.Format(time.RFC3339),
	}
}
