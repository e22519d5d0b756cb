package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campushelper/internal/auth"
	"campushelper/internal/config"
	"campushelper/internal/handler"
	"campushelper/internal/model"
	"campushelper/internal/repository"
	"campushelper/internal/service"
)

func newTestApp(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Timetable{}, &model.BusSchedule{}, &model.CanteenMenu{}))

	userRepo := repository.NewUserRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	busRepo := repository.NewBusRepository(db)
	canteenRepo := repository.NewCanteenRepository(db)

	tokens := auth.NewTokenService("test-secret", 15*time.Minute)
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	timetableService := service.NewTimetableService(timetableRepo, nil)
	busService := service.NewBusService(busRepo, nil)
	canteenService := service.NewCanteenService(canteenRepo, nil)

	e := echo.New()
	Register(
		e,
		&config.Config{},
		authService,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewTimetableHandler(timetableService),
		handler.NewBusHandler(busService),
		handler.NewCanteenHandler(canteenService),
	)
	return e, db
}

func seedUser(t *testing.T, db *gorm.DB, username, password string, isAdmin bool) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	repo := repository.NewUserRepository(db)
	require.NoError(t, repo.Create(context.Background(), &model.User{
		Username:     username,
		Email:        username + "@campus.edu",
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		IsActive:     true,
	}))
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/auth/login", "", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp handler.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func TestOpenReadsAdminWrites(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "pw123", false)
	seedUser(t, db, "root", "rootpw", true)

	// Reads are open: no token required.
	rec := doJSON(e, http.MethodGet, "/timetable", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Writes without a token are unauthenticated.
	rec = doJSON(e, http.MethodPost, "/timetable", "", `{"day":"monday","time":"09:00-10:00","subject":"Math","room":"R101"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A valid non-admin token is forbidden.
	tokenA := login(t, e, "alice", "pw123")
	rec = doJSON(e, http.MethodPost, "/timetable", tokenA, `{"day":"monday","time":"09:00-10:00","subject":"Math","room":"R101"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// An admin token succeeds.
	tokenB := login(t, e, "root", "rootpw")
	rec = doJSON(e, http.MethodPost, "/timetable", tokenB, `{"day":"monday","time":"09:00-10:00","subject":"Math","room":"R101"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Timetable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Monday", created.Day)

	// Non-admin delete is forbidden; admin delete succeeds.
	rec = doJSON(e, http.MethodDelete, "/timetable/1", tokenA, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/timetable/1", tokenB, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_UniformFailureMessage(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "pw123", false)

	unknown := doJSON(e, http.MethodPost, "/auth/login", "", `{"username":"nobody","password":"pw123"}`)
	wrongPw := doJSON(e, http.MethodPost, "/auth/login", "", `{"username":"alice","password":"pw123x"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	// Unknown user and wrong password are indistinguishable.
	assert.JSONEq(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestLogin_DisabledAccountIndistinguishable(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "pw123", false)

	wrongPw := doJSON(e, http.MethodPost, "/auth/login", "", `{"username":"alice","password":"nope"}`)

	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "alice").Update("is_active", false).Error)
	disabled := doJSON(e, http.MethodPost, "/auth/login", "", `{"username":"alice","password":"pw123"}`)

	assert.Equal(t, http.StatusUnauthorized, disabled.Code)
	assert.JSONEq(t, wrongPw.Body.String(), disabled.Body.String())
}

func TestDeactivationTakesEffectImmediately(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "pw123", false)

	token := login(t, e, "alice", "pw123")

	rec := doJSON(e, http.MethodGet, "/auth/me", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "alice").Update("is_active", false).Error)

	// The token itself is still unexpired and correctly signed.
	rec = doJSON(e, http.MethodGet, "/auth/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACCOUNT_DISABLED")
}

func TestUserManagement_AdminOnly(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "pw123", false)
	seedUser(t, db, "root", "rootpw", true)

	tokenA := login(t, e, "alice", "pw123")
	tokenB := login(t, e, "root", "rootpw")

	body := `{"username":"carol","email":"carol@campus.edu","password":"secret1"}`
	rec := doJSON(e, http.MethodPost, "/users", tokenA, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPost, "/users", tokenB, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	// Password hash never appears on the wire.
	assert.NotContains(t, rec.Body.String(), "secret1")
	assert.NotContains(t, rec.Body.String(), "password")

	// Duplicate username conflicts.
	rec = doJSON(e, http.MethodPost, "/users", tokenB, `{"username":"carol","email":"carol2@campus.edu","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBusRouteLookup(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "root", "rootpw", true)
	token := login(t, e, "root", "rootpw")

	rec := doJSON(e, http.MethodPost, "/bus", token, `{"route":"Main Gate to Engineering Block","time":"08:00","bus_no":"BUS-001"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Substring match on the route.
	rec = doJSON(e, http.MethodGet, "/bus/Engineering", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/bus/Nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The same departure cannot be registered twice.
	rec = doJSON(e, http.MethodPost, "/bus", token, `{"route":"Main Gate to Engineering Block","time":"08:00","bus_no":"BUS-001"}`)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestBusRoutesList_Distinct(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "root", "rootpw", true)
	token := login(t, e, "root", "rootpw")

	for _, body := range []string{
		`{"route":"Main Gate to Engineering Block","time":"08:00","bus_no":"BUS-001"}`,
		`{"route":"Main Gate to Engineering Block","time":"09:00","bus_no":"BUS-001"}`,
		`{"route":"Hostel to Academic Block","time":"08:30","bus_no":"BUS-002"}`,
	} {
		rec := doJSON(e, http.MethodPost, "/bus", token, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(e, http.MethodGet, "/bus/routes/list", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"Main Gate to Engineering Block", "Hostel to Academic Block"}, resp["routes"])
}

func TestCanteenCategoriesList_Distinct(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "root", "rootpw", true)
	token := login(t, e, "root", "rootpw")

	for _, body := range []string{
		`{"day":"Monday","item":"Samosa","price":15,"category":"Snacks"}`,
		`{"day":"Tuesday","item":"Tea","price":10,"category":"Beverages"}`,
		`{"day":"Wednesday","item":"Coffee","price":20,"category":"beverages"}`,
	} {
		rec := doJSON(e, http.MethodPost, "/canteen", token, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(e, http.MethodGet, "/canteen/categories/list", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"snacks", "beverages"}, resp["categories"])
}
