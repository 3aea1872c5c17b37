package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/weishuo-labs/weishuo-backend/internal/apperr"
	"github.com/weishuo-labs/weishuo-backend/internal/auth"
	"github.com/weishuo-labs/weishuo-backend/internal/dto"
)

type AuthRouter struct {
	e       *echo.Echo
	service *auth.Service
}

func NewAuthRouter(e *echo.Echo, service *auth.Service) *AuthRouter {
	return &AuthRouter{
		e:       e,
		service: service,
	}
}

func (r *AuthRouter) Bind() {
	r.e.POST("/api/auth/register", r.registerHandler)
	r.e.POST("/api/auth/login", r.loginHandler)
}

func (r *AuthRouter) registerHandler(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	resp, err := r.service.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

func (r *AuthRouter) loginHandler(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	resp, err := r.service.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
