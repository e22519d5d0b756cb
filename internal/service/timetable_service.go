package service

import (
	"context"
	"encoding/json"
	"time"

	"campushelper/internal/cache"
	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
	"campushelper/internal/repository"
)

const (
	timetableCacheKey = "timetable:all"
	resourceCacheTTL  = 5 * time.Minute
)

// TimetableService exposes timetable operations. Reads are open; mutations
// are reached only through the admin gate.
type TimetableService interface {
	List(ctx context.Context) ([]model.Timetable, error)
	ListByDay(ctx context.Context, day string) ([]model.Timetable, error)
	Create(ctx context.Context, entry *model.Timetable) (*model.Timetable, error)
	Update(ctx context.Context, id uint, patch model.TimetablePatch) (*model.Timetable, error)
	Delete(ctx context.Context, id uint) error
}

type timetableService struct {
	repo  repository.TimetableRepository
	cache *cache.Client
}

// NewTimetableService builds a TimetableService with repository and cache.
func NewTimetableService(repo repository.TimetableRepository, cache *cache.Client) TimetableService {
	return &timetableService{repo: repo, cache: cache}
}

func (s *timetableService) List(ctx context.Context) ([]model.Timetable, error) {
	if data, _ := s.cache.Get(ctx, timetableCacheKey); data != nil {
		var cached []model.Timetable
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(entries); err == nil {
		_ = s.cache.Set(ctx, timetableCacheKey, payload, resourceCacheTTL)
	}
	return entries, nil
}

func (s *timetableService) ListByDay(ctx context.Context, day string) ([]model.Timetable, error) {
	return s.repo.ListByDay(ctx, normalizeDay(day))
}

// Create rejects a second entry for the same day, time and room.
func (s *timetableService) Create(ctx context.Context, entry *model.Timetable) (*model.Timetable, error) {
	entry.Day = normalizeDay(entry.Day)

	exists, err := s.repo.ExistsSlot(ctx, entry.Day, entry.Time, entry.Room)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConflict
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, timetableCacheKey)
	return entry, nil
}

func (s *timetableService) Update(ctx context.Context, id uint, patch model.TimetablePatch) (*model.Timetable, error) {
	if patch.Day != nil {
		day := normalizeDay(*patch.Day)
		patch.Day = &day
	}
	entry, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, timetableCacheKey)
	return entry, nil
}

func (s *timetableService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, timetableCacheKey)
	return nil
}
