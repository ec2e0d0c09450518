package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hhcc/internal/cache"
	apperrors "hhcc/internal/errors"
	"hhcc/internal/model"
	"hhcc/internal/repository"
)

const catalogCacheTTL = 5 * time.Minute

const (
	careCentersCacheKey = "catalog:care_centers"
	servicesCacheKey    = "catalog:services"
)

// CatalogService serves the read-only reference data (care centers and
// offered services) with fail-safe caching.
type CatalogService interface {
	ListCareCenters(ctx context.Context) ([]model.CareCenter, error)
	GetCareCenter(ctx context.Context, id uint) (*model.CareCenter, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, id uint) (*model.Service, error)
	SeedCareCenters(ctx context.Context, centers []model.CareCenter) (int, error)
	SeedServices(ctx context.Context, services []model.Service) (int, error)
}

type catalogService struct {
	centerRepo  repository.CareCenterRepository
	serviceRepo repository.ServiceRepository
	cache       *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(centerRepo repository.CareCenterRepository, serviceRepo repository.ServiceRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		centerRepo:  centerRepo,
		serviceRepo: serviceRepo,
		cache:       cache,
	}
}

func (s *catalogService) ListCareCenters(ctx context.Context) ([]model.CareCenter, error) {
	if data, _ := s.cache.Get(ctx, careCentersCacheKey); data != nil {
		var cached []model.CareCenter
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	centers, err := s.centerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(centers); err == nil {
		_ = s.cache.Set(ctx, careCentersCacheKey, payload, catalogCacheTTL)
	}
	return centers, nil
}

func (s *catalogService) GetCareCenter(ctx context.Context, id uint) (*model.CareCenter, error) {
	center, err := s.centerRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCareCenterNotFound
		}
		return nil, err
	}
	return center, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]model.Service, error) {
	if data, _ := s.cache.Get(ctx, servicesCacheKey); data != nil {
		var cached []model.Service
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(services); err == nil {
		_ = s.cache.Set(ctx, servicesCacheKey, payload, catalogCacheTTL)
	}
	return services, nil
}

func (s *catalogService) GetService(ctx context.Context, id uint) (*model.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

// SeedCareCenters upserts reference rows and invalidates the cache.
func (s *catalogService) SeedCareCenters(ctx context.Context, centers []model.CareCenter) (int, error) {
	count := 0
	for i := range centers {
		if err := s.centerRepo.Upsert(ctx, &centers[i]); err != nil {
			return count, fmt.Errorf("seed care center %d: %w", centers[i].ID, err)
		}
		count++
	}
	_ = s.cache.Delete(ctx, careCentersCacheKey)
	return count, nil
}

// SeedServices upserts reference rows and invalidates the cache.
func (s *catalogService) SeedServices(ctx context.Context, services []model.Service) (int, error) {
	count := 0
	for i := range services {
		if err := s.serviceRepo.Upsert(ctx, &services[i]); err != nil {
			return count, fmt.Errorf("seed service %d: %w", services[i].ID, err)
		}
		count++
	}
	_ = s.cache.Delete(ctx, servicesCacheKey)
	return count, nil
}
