package service

import (
	"context"
	"encoding/json"

	"campushelper/internal/cache"
	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
	"campushelper/internal/repository"
)

const busCacheKey = "bus:all"

// BusService exposes bus schedule operations.
type BusService interface {
	List(ctx context.Context) ([]model.BusSchedule, error)
	ListByRoute(ctx context.Context, route string) ([]model.BusSchedule, error)
	ListRoutes(ctx context.Context) ([]string, error)
	Create(ctx context.Context, schedule *model.BusSchedule) (*model.BusSchedule, error)
	Update(ctx context.Context, id uint, patch model.BusSchedulePatch) (*model.BusSchedule, error)
	Delete(ctx context.Context, id uint) error
}

type busService struct {
	repo  repository.BusRepository
	cache *cache.Client
}

// NewBusService builds a BusService with repository and cache.
func NewBusService(repo repository.BusRepository, cache *cache.Client) BusService {
	return &busService{repo: repo, cache: cache}
}

func (s *busService) List(ctx context.Context) ([]model.BusSchedule, error) {
	if data, _ := s.cache.Get(ctx, busCacheKey); data != nil {
		var cached []model.BusSchedule
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	schedules, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(schedules); err == nil {
		_ = s.cache.Set(ctx, busCacheKey, payload, resourceCacheTTL)
	}
	return schedules, nil
}

// ListByRoute returns schedules whose route contains the fragment; an empty
// result is NotFound, matching the read contract for route lookups.
func (s *busService) ListByRoute(ctx context.Context, route string) ([]model.BusSchedule, error) {
	schedules, err := s.repo.ListByRoute(ctx, route)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return schedules, nil
}

// ListRoutes returns the distinct route names.
func (s *busService) ListRoutes(ctx context.Context) ([]string, error) {
	return s.repo.ListRoutes(ctx)
}

// Create rejects a second departure for the same route, time and bus number.
func (s *busService) Create(ctx context.Context, schedule *model.BusSchedule) (*model.BusSchedule, error) {
	exists, err := s.repo.ExistsSchedule(ctx, schedule.Route, schedule.Time, schedule.BusNo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConflict
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, busCacheKey)
	return schedule, nil
}

func (s *busService) Update(ctx context.Context, id uint, patch model.BusSchedulePatch) (*model.BusSchedule, error) {
	schedule, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, busCacheKey)
	return schedule, nil
}

func (s *busService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, busCacheKey)
	return nil
}
