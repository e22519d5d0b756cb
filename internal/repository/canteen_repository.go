package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
)

// CanteenRepository defines persistence operations for canteen menu items.
type CanteenRepository interface {
	Create(ctx context.Context, item *model.CanteenMenu) error
	List(ctx context.Context, category string) ([]model.CanteenMenu, error)
	ListByDay(ctx context.Context, day, category string) ([]model.CanteenMenu, error)
	ListCategories(ctx context.Context) ([]string, error)
	ExistsItem(ctx context.Context, day, item string) (bool, error)
	Update(ctx context.Context, id uint, patch model.CanteenMenuPatch) (*model.CanteenMenu, error)
	Delete(ctx context.Context, id uint) error
}

type canteenRepository struct {
	db *gorm.DB
}

// NewCanteenRepository builds a GORM-backed repository.
func NewCanteenRepository(db *gorm.DB) CanteenRepository {
	return &canteenRepository{db: db}
}

func (r *canteenRepository) Create(ctx context.Context, item *model.CanteenMenu) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// List returns all menu items, optionally filtered by category.
func (r *canteenRepository) List(ctx context.Context, category string) ([]model.CanteenMenu, error) {
	query := r.db.WithContext(ctx).Model(&model.CanteenMenu{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []model.CanteenMenu
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *canteenRepository) ListByDay(ctx context.Context, day, category string) ([]model.CanteenMenu, error) {
	query := r.db.WithContext(ctx).Where("day = ?", day)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []model.CanteenMenu
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListCategories returns the distinct non-empty categories on the menu.
func (r *canteenRepository) ListCategories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&model.CanteenMenu{}).
		Where("category <> ''").
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ExistsItem reports whether the named item is already on the menu for the day.
func (r *canteenRepository) ExistsItem(ctx context.Context, day, item string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CanteenMenu{}).
		Where("day = ? AND item = ?", day, item).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *canteenRepository) Update(ctx context.Context, id uint, patch model.CanteenMenuPatch) (*model.CanteenMenu, error) {
	var item model.CanteenMenu
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if patch.Day != nil {
			item.Day = *patch.Day
		}
		if patch.Item != nil {
			item.Item = *patch.Item
		}
		if patch.Price != nil {
			item.Price = *patch.Price
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *canteenRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.CanteenMenu{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
