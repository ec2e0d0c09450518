package repository

import (
	"context"

	"gorm.io/gorm"

	"hhcc/internal/model"
)

// CareCenterRepository defines care center persistence operations.
type CareCenterRepository interface {
	List(ctx context.Context) ([]model.CareCenter, error)
	FindByID(ctx context.Context, id uint) (*model.CareCenter, error)
	Upsert(ctx context.Context, center *model.CareCenter) error
}

type careCenterRepository struct {
	db *gorm.DB
}

// NewCareCenterRepository creates a new care center repository.
func NewCareCenterRepository(db *gorm.DB) CareCenterRepository {
	return &careCenterRepository{db: db}
}

func (r *careCenterRepository) List(ctx context.Context) ([]model.CareCenter, error) {
	var centers []model.CareCenter
	if err := r.db.WithContext(ctx).Order("id").Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *careCenterRepository) FindByID(ctx context.Context, id uint) (*model.CareCenter, error) {
	var center model.CareCenter
	if err := r.db.WithContext(ctx).First(&center, id).Error; err != nil {
		return nil, err
	}
	return &center, nil
}

func (r *careCenterRepository) Upsert(ctx context.Context, center *model.CareCenter) error {
	return r.db.WithContext(ctx).Save(center).Error
}

// ServiceRepository defines service persistence operations.
type ServiceRepository interface {
	List(ctx context.Context) ([]model.Service, error)
	FindByID(ctx context.Context, id uint) (*model.Service, error)
	Upsert(ctx context.Context, svc *model.Service) error
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) List(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uint) (*model.Service, error) {
	var svc model.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) Upsert(ctx context.Context, svc *model.Service) error {
	return r.db.WithContext(ctx).Save(svc).Error
}
