package service

import (
	"context"
	"encoding/json"

	"campushelper/internal/cache"
	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
	"campushelper/internal/repository"
)

const canteenCacheKey = "canteen:all"

// CanteenService exposes canteen menu operations.
type CanteenService interface {
	List(ctx context.Context, category string) ([]model.CanteenMenu, error)
	ListByDay(ctx context.Context, day, category string) ([]model.CanteenMenu, error)
	ListCategories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, item *model.CanteenMenu) (*model.CanteenMenu, error)
	Update(ctx context.Context, id uint, patch model.CanteenMenuPatch) (*model.CanteenMenu, error)
	Delete(ctx context.Context, id uint) error
}

type canteenService struct {
	repo  repository.CanteenRepository
	cache *cache.Client
}

// NewCanteenService builds a CanteenService with repository and cache.
func NewCanteenService(repo repository.CanteenRepository, cache *cache.Client) CanteenService {
	return &canteenService{repo: repo, cache: cache}
}

// List returns menu items, optionally filtered by category. Only the
// unfiltered listing is cached.
func (s *canteenService) List(ctx context.Context, category string) ([]model.CanteenMenu, error) {
	category = normalizeCategory(category)
	if category != "" {
		return s.repo.List(ctx, category)
	}

	if data, _ := s.cache.Get(ctx, canteenCacheKey); data != nil {
		var cached []model.CanteenMenu
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, canteenCacheKey, payload, resourceCacheTTL)
	}
	return items, nil
}

func (s *canteenService) ListByDay(ctx context.Context, day, category string) ([]model.CanteenMenu, error) {
	return s.repo.ListByDay(ctx, normalizeDay(day), normalizeCategory(category))
}

// ListCategories returns the distinct non-empty categories.
func (s *canteenService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

// Create rejects a duplicate item name on the same day.
func (s *canteenService) Create(ctx context.Context, item *model.CanteenMenu) (*model.CanteenMenu, error) {
	item.Day = normalizeDay(item.Day)
	item.Category = normalizeCategory(item.Category)

	exists, err := s.repo.ExistsItem(ctx, item.Day, item.Item)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConflict
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, canteenCacheKey)
	return item, nil
}

func (s *canteenService) Update(ctx context.Context, id uint, patch model.CanteenMenuPatch) (*model.CanteenMenu, error) {
	if patch.Day != nil {
		day := normalizeDay(*patch.Day)
		patch.Day = &day
	}
	if patch.Category != nil {
		category := normalizeCategory(*patch.Category)
		patch.Category = &category
	}
	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, canteenCacheKey)
	return item, nil
}

func (s *canteenService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, canteenCacheKey)
	return nil
}
