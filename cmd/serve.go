package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"discussion/internal/app"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// ServeCommand starts the HTTP API.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the discussion API server",
		Flags:  ServeFlags(),
		Action: Serve,
	}
}

// ServeFlags are shared by the serve command and the bare binary, which
// serves by default.
func ServeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Port for the API server, overrides SERVER_PORT",
		},
		&cli.BoolFlag{
			Name:  "migrate",
			Usage: "Migrate the schema before serving",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "seed",
			Usage: "Seed demo participants before serving",
		},
	}
}

func Serve(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	application, err := app.Bootstrap(cfg, logger, app.Options{
		Migrate: c.Bool("migrate"),
		Seed:    c.Bool("seed"),
	})
	if err != nil {
		logger.Error("Failed to bootstrap application", zap.Error(err))
		return err
	}
	defer application.Close()

	addr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    addr,
		Handler: application.Router.Engine,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server started", zap.String("addr", "localhost"+addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	case <-quit:
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server exited gracefully")
	return nil
}
