package postgres

import (
	"context"
	"log/slog"
	"strings"

	"neabi/internal/domain/entity"
	"neabi/internal/domain/service"
	"neabi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the relational schema from the persistence
// models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.SessionModel{},
		&model.CategoryModel{},
		&model.TagModel{},
		&model.PostModel{},
		&model.EventModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

type seedCategory struct {
	name        string
	slug        string
	description string
}

var seedCategories = []seedCategory{
	{"Educação", "educacao", "Artigos sobre educação e diversidade"},
	{"Cultura", "cultura", "Cultura afro-brasileira e indígena"},
	{"Ciência", "ciencia", "Pesquisas e descobertas científicas"},
	{"Literatura", "literatura", "Literatura afrodiaspórica"},
	{"Política", "politica", "Políticas públicas e ações afirmativas"},
	{"Religião", "religiao", "Religiões de matriz africana"},
	{"Arte", "arte", "Arte e expressões culturais"},
	{"Sociedade", "sociedade", "Questões sociais e inclusão"},
}

var seedTags = []string{
	"representatividade",
	"quilombos",
	"povos indígenas",
	"literatura",
	"políticas afirmativas",
	"mulheres negras",
	"resistência",
	"cultura afro-brasileira",
	"conhecimento tradicional",
	"sustentabilidade",
	"diáspora africana",
	"identidade",
	"universidade",
	"inclusão",
	"religião",
	"candomblé",
	"umbanda",
	"ciência",
	"protagonismo feminino",
	"ancestralidade",
	"expressão cultural",
	"juventude negra",
	"mercado de trabalho",
	"oportunidades",
	"antirracismo",
	"metodologia",
}

// Seed inserts the default accounts and the category and tag vocabulary.
// Every insert is idempotent, so running it on an already seeded database is
// a no-op.
func Seed(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	if err := seedUsers(ctx, db, hasher, logger); err != nil {
		return err
	}

	for _, category := range seedCategories {
		if err := db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.CategoryModel{
				Name:        category.name,
				Slug:        category.slug,
				Description: category.description,
			}).Error; err != nil {
			return errors.Wrapf(err, "failed to seed category %q", category.name)
		}
	}

	for _, tagName := range seedTags {
		slug := strings.ReplaceAll(strings.ToLower(tagName), " ", "-")
		if err := db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.TagModel{Name: tagName, Slug: slug}).Error; err != nil {
			return errors.Wrapf(err, "failed to seed tag %q", tagName)
		}
	}

	logger.InfoContext(ctx, "initial data seeded")

	return nil
}

// seedUsers creates the default admin and reader accounts once. Presence of
// any admin account means the database was already seeded.
func seedUsers(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	var adminCount int64
	if err := db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", entity.RoleAdmin.String()).
		Count(&adminCount).Error; err != nil {
		return errors.Wrap(err, "failed to check for admin account")
	}
	if adminCount > 0 {
		return nil
	}

	defaults := []struct {
		email     string
		password  string
		firstName string
		lastName  string
		role      entity.Role
	}{
		{"admin@neabi.edu.br", "admin123", "Administrador", "NEABI", entity.RoleAdmin},
		{"leitor@neabi.edu.br", "leitor123", "Usuário", "Leitor", entity.RoleReader},
	}

	for _, account := range defaults {
		hash, err := hasher.Hash(account.password)
		if err != nil {
			return errors.Wrapf(err, "failed to hash password for %s", account.email)
		}

		if err := db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.UserModel{
				Email:        account.email,
				PasswordHash: hash,
				FirstName:    account.firstName,
				LastName:     account.lastName,
				Role:         account.role.String(),
			}).Error; err != nil {
			return errors.Wrapf(err, "failed to seed account %s", account.email)
		}

		logger.InfoContext(ctx, "default account created",
			slog.String("email", account.email),
			slog.String("role", account.role.String()))
	}

	return nil
}
