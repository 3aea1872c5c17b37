package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/weishuo-labs/weishuo-backend/internal/news"
)

const defaultChannel = "hot"

type NewsRouter struct {
	e       *echo.Echo
	service *news.Service
}

func NewNewsRouter(e *echo.Echo, service *news.Service) *NewsRouter {
	return &NewsRouter{
		e:       e,
		service: service,
	}
}

func (r *NewsRouter) Bind() {
	r.e.GET("/api/news/latest", r.latestHandler)
}

func (r *NewsRouter) latestHandler(c echo.Context) error {
	channel := c.QueryParam("channel")
	if channel == "" {
		channel = defaultChannel
	}

	items := r.service.FetchLatest(c.Request().Context(), channel)
	return c.JSON(http.StatusOK, items)
}
