package directory

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/models"
)

// Directory resolves customers by mobile number. The mobile is the identity
// key and never changes once set.
type Directory struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// --------- Inputs ---------

type CreateCustomerInput struct {
	Name   string
	Mobile string
	Place  string
}

type UpdateCustomerPatch struct {
	Name  *string
	Place *string
}

// --------- Operations ---------

func (d *Directory) Create(ctx context.Context, in CreateCustomerInput) (*models.Customer, error) {
	existing, err := d.GetByMobile(ctx, in.Mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrConflict("mobile_already_registered")
	}

	customer := models.Customer{
		Name:   in.Name,
		Mobile: in.Mobile,
		Place:  in.Place,
	}

	if err := d.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (d *Directory) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := d.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("customer_not_found")
		}
		return nil, err
	}
	return &customer, nil
}

// GetByMobile is an existence probe used during booking intake. A missing
// customer is (nil, nil), not an error.
func (d *Directory) GetByMobile(ctx context.Context, mobile string) (*models.Customer, error) {
	var customer models.Customer
	err := d.db.WithContext(ctx).
		Where("mobile = ?", mobile).
		First(&customer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (d *Directory) Update(ctx context.Context, id uint, patch UpdateCustomerPatch) (*models.Customer, error) {
	customer, err := d.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Place != nil {
		customer.Place = *patch.Place
	}

	if err := d.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (d *Directory) Search(ctx context.Context, query string) ([]models.Customer, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var customers []models.Customer
	if err := d.db.WithContext(ctx).
		Where(
			"LOWER(name) LIKE ? OR mobile LIKE ? OR LOWER(place) LIKE ?",
			like, like, like,
		).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// UpsertByMobile overwrites name/place for an existing mobile, or creates the
// customer. Calling it twice with the same values changes nothing.
func (d *Directory) UpsertByMobile(ctx context.Context, name, mobile, place string) (*models.Customer, error) {
	customer, err := d.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}

	if customer != nil {
		customer.Name = name
		customer.Place = place
		if err := d.db.WithContext(ctx).Save(customer).Error; err != nil {
			return nil, err
		}
		return customer, nil
	}

	created := models.Customer{
		Name:   name,
		Mobile: mobile,
		Place:  place,
	}
	if err := d.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}
