package handler

import (
	"net/http"
	"strings"
	"time"

	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const eventDateLayout = "2006-01-02"

// EventHandler holds dependencies for event handlers.
type EventHandler struct {
	uc usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

type listEventsQuery struct {
	Page     int    `query:"page" json:"page" validate:"omitempty,gte=1"`
	Limit    int    `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=50"`
	Category string `query:"category" json:"category"`
	Type     string `query:"type" json:"type" validate:"omitempty,oneof=presencial online hibrido Todos"`
	Status   string `query:"status" json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	Featured bool   `query:"featured" json:"featured"`
}

type createEventRequest struct {
	Title                string   `json:"title" validate:"required,min=5,max=200"`
	Description          string   `json:"description" validate:"required,min=10"`
	Date                 string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime            string   `json:"start_time" validate:"required,hhmm"`
	EndTime              string   `json:"end_time" validate:"required,hhmm"`
	Location             string   `json:"location" validate:"required,min=2"`
	Category             string   `json:"category" validate:"required,min=2"`
	EventType            string   `json:"event_type" validate:"required,oneof=presencial online hibrido"`
	Capacity             int      `json:"capacity" validate:"required,gte=1"`
	Organizer            string   `json:"organizer" validate:"required,min=2"`
	Speakers             []string `json:"speakers"`
	Featured             bool     `json:"featured"`
	RegistrationRequired *bool    `json:"registration_required"`
	Price                string   `json:"price"`
	Status               string   `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type updateEventRequest struct {
	Title                *string   `json:"title" validate:"omitempty,min=5,max=200"`
	Description          *string   `json:"description" validate:"omitempty,min=10"`
	Date                 *string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime            *string   `json:"start_time" validate:"omitempty,hhmm"`
	EndTime              *string   `json:"end_time" validate:"omitempty,hhmm"`
	Location             *string   `json:"location" validate:"omitempty,min=2"`
	Category             *string   `json:"category" validate:"omitempty,min=2"`
	EventType            *string   `json:"event_type" validate:"omitempty,oneof=presencial online hibrido"`
	Capacity             *int      `json:"capacity" validate:"omitempty,gte=1"`
	Organizer            *string   `json:"organizer" validate:"omitempty,min=2"`
	Speakers             *[]string `json:"speakers"`
	Featured             *bool     `json:"featured"`
	RegistrationRequired *bool     `json:"registration_required"`
	Price                *string   `json:"price"`
	Status               *string   `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

// List returns the public paged event listing.
func (h *EventHandler) List(c echo.Context) error {
	var query listEventsQuery
	if err := c.Bind(&query); err != nil {
		return domainerrors.ErrInvalidQueryParams
	}
	if err := validateQuery(c, &query); err != nil {
		return err
	}

	output, err := h.uc.ListEvents(c.Request().Context(), usecase.ListEventsInput{
		Page:      query.Page,
		Limit:     query.Limit,
		Category:  query.Category,
		EventType: entity.EventType(query.Type),
		Status:    entity.EventStatus(query.Status),
		Featured:  query.Featured,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// GetBySlug returns a single event regardless of status.
func (h *EventHandler) GetBySlug(c echo.Context) error {
	event, err := h.uc.GetEventBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, event)
}

// Create publishes a new event.
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := time.Parse(eventDateLayout, req.Date)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("date deve estar no formato AAAA-MM-DD")
	}

	output, err := h.uc.CreateEvent(c.Request().Context(), usecase.CreateEventInput{
		Title:                req.Title,
		Description:          req.Description,
		Date:                 date,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Location:             req.Location,
		Category:             req.Category,
		EventType:            entity.EventType(req.EventType),
		Capacity:             req.Capacity,
		Organizer:            req.Organizer,
		Speakers:             req.Speakers,
		Featured:             req.Featured,
		RegistrationRequired: req.RegistrationRequired,
		Price:                req.Price,
		Status:               entity.EventStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output)
}

// Update applies a partial update to an existing event.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdateEventInput{
		Title:                req.Title,
		Description:          req.Description,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Location:             req.Location,
		Category:             req.Category,
		Capacity:             req.Capacity,
		Organizer:            req.Organizer,
		Speakers:             req.Speakers,
		Featured:             req.Featured,
		RegistrationRequired: req.RegistrationRequired,
		Price:                req.Price,
	}
	if req.Date != nil {
		date, err := time.Parse(eventDateLayout, *req.Date)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("date deve estar no formato AAAA-MM-DD")
		}
		input.Date = &date
	}
	if req.EventType != nil {
		eventType := entity.EventType(*req.EventType)
		input.EventType = &eventType
	}
	if req.Status != nil {
		status := entity.EventStatus(*req.Status)
		input.Status = &status
	}

	output, err := h.uc.UpdateEvent(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Delete removes an event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Evento deletado com sucesso",
	})
}

// Register claims one seat on a capacity-limited event.
func (h *EventHandler) Register(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Register(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Inscrição realizada com sucesso",
	})
}

// Categories lists the distinct categories of non-cancelled events.
func (h *EventHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, categories)
}

// Stats aggregates event counters for the admin dashboard.
func (h *EventHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, stats)
}
