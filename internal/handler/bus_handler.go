package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campushelper/internal/model"
	"campushelper/internal/service"
)

// BusHandler handles bus schedule endpoints.
type BusHandler struct {
	svc service.BusService
}

// NewBusHandler creates a handler layer.
func NewBusHandler(svc service.BusService) *BusHandler {
	return &BusHandler{svc: svc}
}

// CreateBusScheduleRequest represents a new bus departure.
type CreateBusScheduleRequest struct {
	Route string `json:"route" validate:"required"`
	Time  string `json:"time" validate:"required"`
	BusNo string `json:"bus_no" validate:"required"`
}

// List godoc
// @Summary List all bus schedules
// @Tags bus
// @Produce json
// @Success 200 {array} model.BusSchedule
// @Router /bus [get]
func (h *BusHandler) List(c echo.Context) error {
	schedules, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, schedules)
}

// ListByRoute godoc
// @Summary List bus timings for a route
// @Tags bus
// @Produce json
// @Param route path string true "Route name or fragment"
// @Success 200 {array} model.BusSchedule
// @Failure 404 {object} errors.ErrorResponse
// @Router /bus/{route} [get]
func (h *BusHandler) ListByRoute(c echo.Context) error {
	schedules, err := h.svc.ListByRoute(c.Request().Context(), c.Param("route"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, schedules)
}

// ListRoutes godoc
// @Summary List distinct route names
// @Tags bus
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /bus/routes/list [get]
func (h *BusHandler) ListRoutes(c echo.Context) error {
	routes, err := h.svc.ListRoutes(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string][]string{"routes": routes})
}

// Create godoc
// @Summary Add a bus departure
// @Tags bus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBusScheduleRequest true "Bus departure"
// @Success 201 {object} model.BusSchedule
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /bus [post]
func (h *BusHandler) Create(c echo.Context) error {
	var req CreateBusScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	schedule, err := h.svc.Create(c.Request().Context(), &model.BusSchedule{
		Route: req.Route,
		Time:  req.Time,
		BusNo: req.BusNo,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, schedule)
}

// Update godoc
// @Summary Update a bus departure
// @Tags bus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param request body model.BusSchedulePatch true "Fields to update"
// @Success 200 {object} model.BusSchedule
// @Failure 404 {object} errors.ErrorResponse
// @Router /bus/{id} [put]
func (h *BusHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var patch model.BusSchedulePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	schedule, err := h.svc.Update(c.Request().Context(), uint(id), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, schedule)
}

// Delete godoc
// @Summary Delete a bus departure
// @Tags bus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /bus/{id} [delete]
func (h *BusHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "bus schedule deleted successfully",
	})
}
