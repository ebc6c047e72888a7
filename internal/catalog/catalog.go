package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/models"
)

// Catalog is the registry of bookable service types. Deactivation is a soft
// delete: bookings keep referencing deactivated services.
type Catalog struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// --------- Inputs ---------

type CreateServiceInput struct {
	Name        string
	Description string
	Price       float64
	DurationMin int
}

type UpdateServicePatch struct {
	Name        *string
	Description *string
	Price       *float64
	DurationMin *int
	IsActive    *bool
}

// --------- Operations ---------

func (s *Catalog) Create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	svc := models.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		DurationMin: in.DurationMin,
		IsActive:    true,
	}

	if err := s.db.WithContext(ctx).Create(&svc).Error; err != nil {
		return nil, translateUniqueViolation(err, "service_name_taken")
	}
	return &svc, nil
}

// translateUniqueViolation maps a postgres duplicate-key error to a Conflict
// business error; anything else passes through.
func translateUniqueViolation(err error, code string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httperr.ErrConflict(code)
	}
	return err
}

func (s *Catalog) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *Catalog) Get(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

func (s *Catalog) Update(ctx context.Context, id uint, patch UpdateServicePatch) (*models.Service, error) {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		svc.Name = *patch.Name
	}
	if patch.Description != nil {
		svc.Description = *patch.Description
	}
	if patch.Price != nil {
		svc.Price = *patch.Price
	}
	if patch.DurationMin != nil {
		svc.DurationMin = *patch.DurationMin
	}
	if patch.IsActive != nil {
		svc.IsActive = *patch.IsActive
	}

	if err := s.db.WithContext(ctx).Save(svc).Error; err != nil {
		return nil, translateUniqueViolation(err, "service_name_taken")
	}
	return svc, nil
}

func (s *Catalog) Deactivate(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.IsActive = false
	if err := s.db.WithContext(ctx).Save(svc).Error; err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Catalog) Search(ctx context.Context, query string) ([]models.Service, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var services []models.Service
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
