package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
)

// TimetableRepository defines persistence operations for timetable entries.
type TimetableRepository interface {
	Create(ctx context.Context, entry *model.Timetable) error
	List(ctx context.Context) ([]model.Timetable, error)
	ListByDay(ctx context.Context, day string) ([]model.Timetable, error)
	ExistsSlot(ctx context.Context, day, timeSlot, room string) (bool, error)
	Update(ctx context.Context, id uint, patch model.TimetablePatch) (*model.Timetable, error)
	Delete(ctx context.Context, id uint) error
}

type timetableRepository struct {
	db *gorm.DB
}

// NewTimetableRepository builds a GORM-backed repository.
func NewTimetableRepository(db *gorm.DB) TimetableRepository {
	return &timetableRepository{db: db}
}

func (r *timetableRepository) Create(ctx context.Context, entry *model.Timetable) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *timetableRepository) List(ctx context.Context) ([]model.Timetable, error) {
	var entries []model.Timetable
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *timetableRepository) ListByDay(ctx context.Context, day string) ([]model.Timetable, error) {
	var entries []model.Timetable
	if err := r.db.WithContext(ctx).Where("day = ?", day).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ExistsSlot reports whether an entry already occupies the given day, time
// and room.
func (r *timetableRepository) ExistsSlot(ctx context.Context, day, timeSlot, room string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Timetable{}).
		Where("day = ? AND time = ? AND room = ?", day, timeSlot, room).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *timetableRepository) Update(ctx context.Context, id uint, patch model.TimetablePatch) (*model.Timetable, error) {
	var entry model.Timetable
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if patch.Day != nil {
			entry.Day = *patch.Day
		}
		if patch.Time != nil {
			entry.Time = *patch.Time
		}
		if patch.Subject != nil {
			entry.Subject = *patch.Subject
		}
		if patch.Room != nil {
			entry.Room = *patch.Room
		}
		return tx.Save(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timetableRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Timetable{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
