package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/stvmedia/media-portal/config"
	"github.com/stvmedia/media-portal/internal/auth"
	"github.com/stvmedia/media-portal/internal/db"
	"github.com/stvmedia/media-portal/internal/filestore"
	"github.com/stvmedia/media-portal/internal/offline"
	"github.com/stvmedia/media-portal/internal/portal"
	"github.com/stvmedia/media-portal/internal/rest"
	"github.com/stvmedia/media-portal/internal/rpc"
)

type App struct {
	DB      *db.Repository
	Logger  *slog.Logger
	Echo    *echo.Echo
	Fetcher *offline.Fetcher
	Config  *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	files := filestore.NewDisk(cfg.Storage.Root, cfg.Storage.PublicBaseURL)
	manager := portal.NewManager(repo, files)

	timeout := time.Duration(cfg.Cache.HTTPTimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	fetcher := offline.NewFetcher(
		cfg.Cache.Version,
		cfg.Cache.Origin,
		&http.Client{Timeout: timeout},
		offline.NewRegistry(),
		logger,
	)

	handler := rest.NewHandler(manager, fetcher, logger)
	e := handler.RegisterRoutes(auth.NewVerifier(cfg.Auth.Secret))

	rpcServer := rpc.New(logger, manager)
	e.Any("/rpc", echo.WrapHandler(rpcServer))

	return &App{
		DB:      repo,
		Logger:  logger,
		Echo:    e,
		Fetcher: fetcher,
		Config:  cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	// A failed install leaves older cache generations in place; the new
	// generation only takes over once its shell is fully precached.
	if err := a.Fetcher.Install(ctx, a.Config.Cache.ShellURLs); err != nil {
		a.Logger.Warn("offline precache failed, keeping previous cache generation", "error", err)
	} else {
		a.Fetcher.Activate()
	}

	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
