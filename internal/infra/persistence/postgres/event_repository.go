package postgres

import (
	"context"
	"encoding/json"
	"time"

	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/domain/repository"
	"neabi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the domain.EventRepository interface using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (repo *eventRepository) applyEventFilter(db *gorm.DB, filter repository.EventFilter) *gorm.DB {
	if filter.Status != "" {
		db = db.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.EventType != "" {
		db = db.Where("event_type = ?", string(filter.EventType))
	}
	if filter.Featured {
		db = db.Where("featured = ?", true)
	}

	return db
}

// List returns a page of events ordered soonest first.
func (repo *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
	var eventMs []*model.EventModel

	db := repo.applyEventFilter(repo.db.WithContext(ctx), filter).
		Order("date ASC, start_time ASC")

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	if err := db.Find(&eventMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// Count returns the number of events matching the filter.
func (repo *eventRepository) Count(ctx context.Context, filter repository.EventFilter) (int64, error) {
	var count int64
	db := repo.applyEventFilter(repo.db.WithContext(ctx).Model(&model.EventModel{}), filter)
	if err := db.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count events")
	}

	return count, nil
}

// FindBySlug retrieves an event regardless of status.
func (repo *eventRepository) FindBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by slug")
	}

	return toEventDomain(&eventM), nil
}

// FindByID retrieves an event by primary key.
func (repo *eventRepository) FindByID(ctx context.Context, id uint) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).First(&eventM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return toEventDomain(&eventM), nil
}

// SlugExists reports whether any event already uses the slug.
func (repo *eventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check event slug")
	}

	return count > 0, nil
}

// Create persists a new event row and backfills the generated ID.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM, err := fromEventDomain(event)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEventTitle
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// Update applies the given column values to the event.
func (repo *eventRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	// The speakers column stores JSON; encode a raw slice transparently.
	if speakers, ok := fields["speakers"].([]string); ok {
		encoded, err := json.Marshal(speakers)
		if err != nil {
			return errors.Wrap(err, "failed to encode event speakers")
		}
		fields["speakers"] = string(encoded)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateEventTitle
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete hard-deletes the event.
func (repo *eventRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.EventModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Register increments the registered counter with a single conditional
// UPDATE, so two concurrent registrations can never push the counter past
// capacity. When no row changes, the event is re-read to report which
// precondition failed.
func (repo *eventRepository) Register(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ? AND registration_required = ? AND registered < capacity", id, true).
		Updates(map[string]any{
			"registered": gorm.Expr("registered + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to register for event")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).First(&eventM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrEventNotFound
		}

		return errors.Wrap(err, "failed to inspect event after registration miss")
	}

	if !eventM.RegistrationRequired {
		return repository.ErrRegistrationNotRequired
	}

	return repository.ErrEventCapacityReached
}

// DistinctCategories lists the categories of non-cancelled events.
func (repo *eventRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("status <> ?", string(entity.EventStatusCancelled)).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list event categories")
	}

	return categories, nil
}

// Stats aggregates event counters for the admin dashboard.
func (repo *eventRepository) Stats(ctx context.Context) (*entity.EventStats, error) {
	var stats entity.EventStats

	row := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Select(
			"COUNT(*) AS total, "+
				"COUNT(*) FILTER (WHERE status = ?) AS upcoming, "+
				"COUNT(*) FILTER (WHERE status = ?) AS ongoing, "+
				"COUNT(*) FILTER (WHERE status = ?) AS completed, "+
				"COALESCE(SUM(registered), 0) AS total_registrations",
			string(entity.EventStatusUpcoming),
			string(entity.EventStatusOngoing),
			string(entity.EventStatusCompleted),
		).
		Row()
	if err := row.Scan(&stats.Total, &stats.Upcoming, &stats.Ongoing, &stats.Completed, &stats.TotalRegistrations); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate event stats")
	}

	return &stats, nil
}

// toEventDomain converts a GORM EventModel to a domain Event entity,
// decoding the JSON speakers column.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	var speakers []string
	if data.Speakers != "" {
		// A malformed column yields an empty speaker list rather than a
		// failed fetch.
		_ = json.Unmarshal([]byte(data.Speakers), &speakers)
	}

	return &entity.Event{
		ID:                   data.ID,
		Title:                data.Title,
		Slug:                 data.Slug,
		Description:          data.Description,
		Date:                 data.Date,
		StartTime:            data.StartTime,
		EndTime:              data.EndTime,
		Location:             data.Location,
		Category:             data.Category,
		EventType:            entity.EventType(data.EventType),
		Capacity:             data.Capacity,
		Registered:           data.Registered,
		Organizer:            data.Organizer,
		Speakers:             speakers,
		ImageURL:             data.ImageURL,
		Status:               entity.EventStatus(data.Status),
		Featured:             data.Featured,
		RegistrationRequired: data.RegistrationRequired,
		Price:                data.Price,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromEventDomain converts a domain Event entity to a GORM EventModel,
// encoding the speakers slice as JSON.
func fromEventDomain(data *entity.Event) (*model.EventModel, error) {
	if data == nil {
		return nil, nil
	}

	speakers, err := json.Marshal(data.Speakers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event speakers")
	}

	return &model.EventModel{
		ID:                   data.ID,
		Title:                data.Title,
		Slug:                 data.Slug,
		Description:          data.Description,
		Date:                 data.Date,
		StartTime:            data.StartTime,
		EndTime:              data.EndTime,
		Location:             data.Location,
		Category:             data.Category,
		EventType:            string(data.EventType),
		Capacity:             data.Capacity,
		Registered:           data.Registered,
		Organizer:            data.Organizer,
		Speakers:             string(speakers),
		ImageURL:             data.ImageURL,
		Status:               string(data.Status),
		Featured:             data.Featured,
		RegistrationRequired: data.RegistrationRequired,
		Price:                data.Price,
	}, nil
}
