package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campushelper/internal/model"
	"campushelper/internal/service"
)

// TimetableHandler handles timetable endpoints.
type TimetableHandler struct {
	svc service.TimetableService
}

// NewTimetableHandler creates a handler layer.
func NewTimetableHandler(svc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

// CreateTimetableRequest represents a new timetable entry.
type CreateTimetableRequest struct {
	Day     string `json:"day" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Room    string `json:"room" validate:"required"`
}

// List godoc
// @Summary List all timetable entries
// @Tags timetable
// @Produce json
// @Success 200 {array} model.Timetable
// @Router /timetable [get]
func (h *TimetableHandler) List(c echo.Context) error {
	entries, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// ListByDay godoc
// @Summary List timetable entries for a day
// @Tags timetable
// @Produce json
// @Param day path string true "Day of week"
// @Success 200 {array} model.Timetable
// @Router /timetable/{day} [get]
func (h *TimetableHandler) ListByDay(c echo.Context) error {
	entries, err := h.svc.ListByDay(c.Request().Context(), c.Param("day"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary Add a timetable entry
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTimetableRequest true "Timetable entry"
// @Success 201 {object} model.Timetable
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /timetable [post]
func (h *TimetableHandler) Create(c echo.Context) error {
	var req CreateTimetableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.svc.Create(c.Request().Context(), &model.Timetable{
		Day:     req.Day,
		Time:    req.Time,
		Subject: req.Subject,
		Room:    req.Room,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// Update godoc
// @Summary Update a timetable entry
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param request body model.TimetablePatch true "Fields to update"
// @Success 200 {object} model.Timetable
// @Failure 404 {object} errors.ErrorResponse
// @Router /timetable/{id} [put]
func (h *TimetableHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var patch model.TimetablePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	entry, err := h.svc.Update(c.Request().Context(), uint(id), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete a timetable entry
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /timetable/{id} [delete]
func (h *TimetableHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "timetable entry deleted successfully",
	})
}
