package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campushelper/internal/model"
	"campushelper/internal/service"
)

// CanteenHandler handles canteen menu endpoints.
type CanteenHandler struct {
	svc service.CanteenService
}

// NewCanteenHandler creates a handler layer.
func NewCanteenHandler(svc service.CanteenService) *CanteenHandler {
	return &CanteenHandler{svc: svc}
}

// CreateCanteenMenuRequest represents a new menu item.
type CreateCanteenMenuRequest struct {
	Day      string  `json:"day" validate:"required"`
	Item     string  `json:"item" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Category string  `json:"category"`
}

// List godoc
// @Summary List all menu items
// @Tags canteen
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} model.CanteenMenu
// @Router /canteen [get]
func (h *CanteenHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListByDay godoc
// @Summary List menu items for a day
// @Tags canteen
// @Produce json
// @Param day path string true "Day of week"
// @Param category query string false "Filter by category"
// @Success 200 {array} model.CanteenMenu
// @Router /canteen/{day} [get]
func (h *CanteenHandler) ListByDay(c echo.Context) error {
	items, err := h.svc.ListByDay(c.Request().Context(), c.Param("day"), c.QueryParam("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListCategories godoc
// @Summary List distinct menu categories
// @Tags canteen
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /canteen/categories/list [get]
func (h *CanteenHandler) ListCategories(c echo.Context) error {
	categories, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string][]string{"categories": categories})
}

// Create godoc
// @Summary Add a menu item
// @Tags canteen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCanteenMenuRequest true "Menu item"
// @Success 201 {object} model.CanteenMenu
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /canteen [post]
func (h *CanteenHandler) Create(c echo.Context) error {
	var req CreateCanteenMenuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.svc.Create(c.Request().Context(), &model.CanteenMenu{
		Day:      req.Day,
		Item:     req.Item,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Update a menu item
// @Tags canteen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body model.CanteenMenuPatch true "Fields to update"
// @Success 200 {object} model.CanteenMenu
// @Failure 404 {object} errors.ErrorResponse
// @Router /canteen/{id} [put]
func (h *CanteenHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var patch model.CanteenMenuPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	item, err := h.svc.Update(c.Request().Context(), uint(id), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a menu item
// @Tags canteen
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /canteen/{id} [delete]
func (h *CanteenHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "menu item deleted successfully",
	})
}
