package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitlab/jersey-shop/internal/service"
	"github.com/kitlab/jersey-shop/internal/transport"
	"github.com/kitlab/jersey-shop/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) AdminLogin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.admin_login")

	var req transport.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("admin_login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.AdminLogin(req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("admin_login_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Warn("admin_login_failed", "status", 401, "username", req.Username)
		return echo.NewHTTPError(http.StatusUnauthorized, "wrong username or password")
	}

	l.Info("admin_login_success")
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("register_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrConflict):
			l.Warn("register_error", "status", 409, "reason", "email already registered")
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		default:
			l.Error("register_error", "status", 500, "reason", "cannot create user", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot create user")
		}
	}

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "user": user})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("login_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Warn("login_failed", "status", 401, "email", req.Email)
		return echo.NewHTTPError(http.StatusUnauthorized, "wrong email or password")
	}

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

// Check re-runs the credential comparison and reports the role. There is
// no session state to consult, so the caller resubmits credentials as
// query parameters.
func (h *AuthHTTP) Check(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.check")

	email := c.QueryParam("email")
	password := c.QueryParam("password")

	user, err := h.Svc.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("check_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Warn("check_failed", "status", 401, "email", email)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "role": user.Role})
}

// Logout acknowledges and does nothing. There is no server-side session
// to tear down.
func (h *AuthHTTP) Logout(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "auth.logout")
	l.Info("logout_success")
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "logged out"})
}
