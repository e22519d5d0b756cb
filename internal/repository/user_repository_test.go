package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Timetable{}, &model.BusSchedule{}, &model.CanteenMenu{}))
	return db
}

func newUser(username, email string) *model.User {
	return &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		IsActive:     true,
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newUser("alice", "alice@campus.edu")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "alice@campus.edu", found.Email)

	_, err = repo.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_Create_Conflicts(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice", "alice@campus.edu")))

	err := repo.Create(ctx, newUser("alice", "other@campus.edu"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	err = repo.Create(ctx, newUser("other", "alice@campus.edu"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserRepository_Create_ConcurrentSameUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	const attempts = 10
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, newUser("alice", "alice@campus.edu"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrConflict)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository_Update_Patch(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newUser("alice", "alice@campus.edu")
	require.NoError(t, repo.Create(ctx, user))

	isAdmin := true
	updated, err := repo.Update(ctx, user.ID, model.UserPatch{IsAdmin: &isAdmin})
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)
	// Untouched fields survive the patch.
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "alice@campus.edu", updated.Email)
	assert.True(t, updated.IsActive)

	isActive := false
	updated, err = repo.Update(ctx, user.ID, model.UserPatch{IsActive: &isActive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.True(t, updated.IsAdmin)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	isAdmin := true
	_, err := repo.Update(context.Background(), 999, model.UserPatch{IsAdmin: &isAdmin})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_Update_ConflictOnTakenUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice", "alice@campus.edu")))
	bob := newUser("bob", "bob@campus.edu")
	require.NoError(t, repo.Create(ctx, bob))

	taken := "alice"
	_, err := repo.Update(ctx, bob.ID, model.UserPatch{Username: &taken})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
