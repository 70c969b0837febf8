package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/kitlab/jersey-shop/internal/service"
	"github.com/kitlab/jersey-shop/internal/transport"
	"github.com/kitlab/jersey-shop/pkg/logging"
)

type ComboHTTP struct {
	Svc *service.ComboService
}

func (h *ComboHTTP) CreateCombo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "combo.create")

	var req transport.CreateComboRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("combo_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	combo, err := h.Svc.CreateCombo(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("combo_create_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("combo_create_error", "status", 500, "reason", "cannot add combo to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add combo to db")
	}

	l.Info("combo_create_success", "combo_id", combo.ID)
	return c.JSON(http.StatusCreated, combo)
}

func (h *ComboHTTP) ListCombos(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "combo.list")

	items, err := h.Svc.ListCombos(ctx)
	if err != nil {
		l.Error("combo_list_error", "status", 500, "reason", "cannot get combos", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get combos")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ComboHTTP) GetCombo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "combo.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("combo_get_error", "status", 400, "reason", "id is not a valid uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid uuid")
	}

	combo, err := h.Svc.GetCombo(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("combo_get_error", "status", 404, "reason", "combo not found")
			return echo.NewHTTPError(http.StatusNotFound, "combo not found")
		}
		l.Error("combo_get_error", "status", 500, "reason", "cannot get combo", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get combo")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "combo": combo})
}

func (h *ComboHTTP) UpdateCombo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "combo.update")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("combo_update_error", "status", 400, "reason", "id is not a valid uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid uuid")
	}

	var req transport.UpdateComboRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("combo_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	combo, err := h.Svc.UpdateCombo(ctx, req, id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("combo_update_error", "status", 404, "reason", "combo not found")
			return echo.NewHTTPError(http.StatusNotFound, "combo not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("combo_update_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("combo_update_error", "status", 500, "reason", "cannot update combo", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update combo")
		}
	}

	l.Info("combo_update_success", "combo_id", combo.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "combo": combo})
}

func (h *ComboHTTP) DeleteCombo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "combo.delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("combo_delete_error", "status", 400, "reason", "id is not a valid uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid uuid")
	}

	combo, err := h.Svc.DeleteCombo(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("combo_delete_error", "status", 404, "reason", "combo not found")
			return echo.NewHTTPError(http.StatusNotFound, "combo not found")
		}
		l.Error("combo_delete_error", "status", 500, "reason", "cannot delete combo", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete combo")
	}

	l.Info("combo_delete_success", "combo_id", combo.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "combo": combo})
}
