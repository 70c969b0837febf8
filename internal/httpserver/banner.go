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

type BannerHTTP struct {
	Svc *service.BannerService
}

func (h *BannerHTTP) CreateBanner(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.create")

	var req transport.CreateBannerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("banner_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	banner, err := h.Svc.CreateBanner(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("banner_create_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("banner_create_error", "status", 500, "reason", "cannot add banner to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add banner to db")
	}

	l.Info("banner_create_success", "banner_id", banner.ID)
	return c.JSON(http.StatusCreated, banner)
}

func (h *BannerHTTP) ListBanners(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.list")

	items, err := h.Svc.ListBanners(ctx)
	if err != nil {
		l.Error("banner_list_error", "status", 500, "reason", "cannot get banners", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get banners")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *BannerHTTP) GetBanner(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("banner_get_error", "status", 400, "reason", "id is not a valid uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid uuid")
	}

	banner, err := h.Svc.GetBanner(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("banner_get_error", "status", 404, "reason", "banner not found")
			return echo.NewHTTPError(http.StatusNotFound, "banner not found")
		}
		l.Error("banner_get_error", "status", 500, "reason", "cannot get banner", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get banner")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "banner": banner})
}

func (h *BannerHTTP) UpdateBanner(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.update")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("banner_update_error", "status", 400, "reason", "id is not a valid uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid uuid")
	}

	var req transport.UpdateBannerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("banner_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	banner, err := h.Svc.UpdateBanner(ctx, req, id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("banner_update_error", "status", 404, "reason", "banner not found")
			return echo.NewHTTPError(http.StatusNotFound, "banner not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("banner_update_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("banner_update_error", "status", 500, "reason", "cannot update banner", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update banner")
		}
	}

	l.Info("banner_update_success", "banner_id", banner.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "banner": banner})
}

func (h *BannerHTTP) DeleteBanner(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("banner_delete_error", "status", 400, "reason", "id is not a valid uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid uuid")
	}

	banner, err := h.Svc.DeleteBanner(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("banner_delete_error", "status", 404, "reason", "banner not found")
			return echo.NewHTTPError(http.StatusNotFound, "banner not found")
		}
		l.Error("banner_delete_error", "status", 500, "reason", "cannot delete banner", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete banner")
	}

	l.Info("banner_delete_success", "banner_id", banner.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "banner": banner})
}
