package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
)

// BusRepository defines persistence operations for bus schedules.
type BusRepository interface {
	Create(ctx context.Context, schedule *model.BusSchedule) error
	List(ctx context.Context) ([]model.BusSchedule, error)
	ListByRoute(ctx context.Context, route string) ([]model.BusSchedule, error)
	ListRoutes(ctx context.Context) ([]string, error)
	ExistsSchedule(ctx context.Context, route, timeSlot, busNo string) (bool, error)
	Update(ctx context.Context, id uint, patch model.BusSchedulePatch) (*model.BusSchedule, error)
	Delete(ctx context.Context, id uint) error
}

type busRepository struct {
	db *gorm.DB
}

// NewBusRepository builds a GORM-backed repository.
func NewBusRepository(db *gorm.DB) BusRepository {
	return &busRepository{db: db}
}

func (r *busRepository) Create(ctx context.Context, schedule *model.BusSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *busRepository) List(ctx context.Context) ([]model.BusSchedule, error) {
	var schedules []model.BusSchedule
	if err := r.db.WithContext(ctx).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// ListByRoute matches routes containing the given fragment.
func (r *busRepository) ListByRoute(ctx context.Context, route string) ([]model.BusSchedule, error) {
	var schedules []model.BusSchedule
	if err := r.db.WithContext(ctx).Where("route LIKE ?", "%"+route+"%").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// ListRoutes returns the distinct route names with at least one departure.
func (r *busRepository) ListRoutes(ctx context.Context) ([]string, error) {
	routes := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&model.BusSchedule{}).
		Distinct().
		Pluck("route", &routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// ExistsSchedule reports whether a departure already exists for the given
// route, time and bus number.
func (r *busRepository) ExistsSchedule(ctx context.Context, route, timeSlot, busNo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BusSchedule{}).
		Where("route = ? AND time = ? AND bus_no = ?", route, timeSlot, busNo).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *busRepository) Update(ctx context.Context, id uint, patch model.BusSchedulePatch) (*model.BusSchedule, error) {
	var schedule model.BusSchedule
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&schedule, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if patch.Route != nil {
			schedule.Route = *patch.Route
		}
		if patch.Time != nil {
			schedule.Time = *patch.Time
		}
		if patch.BusNo != nil {
			schedule.BusNo = *patch.BusNo
		}
		return tx.Save(&schedule).Error
	})
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *busRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.BusSchedule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
