package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/weishuo-labs/weishuo-backend/internal/auth"
	"github.com/weishuo-labs/weishuo-backend/internal/config"
	"github.com/weishuo-labs/weishuo-backend/internal/news"
	"github.com/weishuo-labs/weishuo-backend/internal/router"
	"github.com/weishuo-labs/weishuo-backend/internal/server"
	"github.com/weishuo-labs/weishuo-backend/internal/storage/pg"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: os.Getenv("DATABASE_URL")})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	newsCfg := config.LoadNews()
	if !newsCfg.IsConfigured() {
		slog.Warn("News API key is not configured, the feed will serve cached records only")
	}

	channels, err := news.LoadChannelMapFile(os.Getenv("NEWS_CHANNELS_FILE"))
	if err != nil {
		slog.Error("Failed to load channel map", "error", err)
		os.Exit(1)
	}

	newsService := news.NewService(
		news.NewClient(newsCfg),
		pg.NewBackupStore(pool),
		news.NewMapper(),
		channels,
	)
	authService := auth.NewService(pg.NewUserStore(pool))

	s := server.NewServer(echo.New(), cfg, pg.NewHealthChecker(pool))

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "weishuo backend is running")
	})

	router.NewNewsRouter(s.Echo, newsService).Bind()
	router.NewAuthRouter(s.Echo, authService).Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
