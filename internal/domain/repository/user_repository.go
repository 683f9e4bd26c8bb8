// Package repository defines the persistence contracts of the domain. The use
// case layer depends on these interfaces only; the GORM implementations live
// under internal/infra/persistence.
package repository

import (
	"context"

	"neabi/internal/domain/entity"
	"neabi/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists user accounts.
type UserRepository interface {
	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a user by its case-normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and backfills the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error
}
