package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/kitlab/jersey-shop/internal/events"
	"github.com/kitlab/jersey-shop/internal/service"
	"github.com/kitlab/jersey-shop/internal/transport"
	"github.com/kitlab/jersey-shop/pkg/logging"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	key, _ := event["orderId"].(string)
	if err := h.Producer.Publish(ctx, events.TopicOrderEvents, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("event_publish_failed", "topic", events.TopicOrderEvents, "error", err)
	}
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("order_place_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.PlaceOrder(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("order_place_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("order_place_error", "status", 500, "reason", "cannot add order to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add order to db")
	}

	h.publish(c, map[string]any{
		"type":       "order_placed",
		"orderId":    order.ID.String(),
		"buyerEmail": order.BuyerEmail,
		"totalPrice": order.TotalPrice,
	})

	l.Info("order_place_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "order": order})
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	orders, err := h.Svc.ListOrders(ctx)
	if err != nil {
		l.Error("order_list_error", "status", 500, "reason", "cannot get orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get orders")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "orders": orders})
}

func (h *OrderHTTP) ListMyOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_my")

	orders, err := h.Svc.ListMyOrders(ctx, c.QueryParam("email"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("order_list_my_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("order_list_my_error", "status", 404, "reason", "no orders for this email")
			return echo.NewHTTPError(http.StatusNotFound, "no orders found for this email")
		default:
			l.Error("order_list_my_error", "status", 500, "reason", "cannot get orders", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot get orders")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "orders": orders})
}

func (h *OrderHTTP) PatchOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.patch")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("order_patch_error", "status", 400, "reason", "id is not a valid uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid uuid")
	}

	var req transport.PatchOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("order_patch_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.PatchOrder(ctx, req, id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("order_patch_error", "status", 404, "reason", "order not found")
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("order_patch_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("order_patch_error", "status", 500, "reason", "cannot update order", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update order")
		}
	}

	h.publish(c, map[string]any{
		"type":    "order_updated",
		"orderId": order.ID.String(),
		"status":  order.Status,
	})

	l.Info("order_patch_success", "order_id", order.ID, "order_status", order.Status)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "order": order})
}
