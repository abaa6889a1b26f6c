package cmd

import (
	"fmt"

	"discussion/internal/config"
	"discussion/internal/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// setup loads .env files, reads the configuration and builds the logger the
// commands share.
func setup(c *cli.Context) (*config.Config, *zap.Logger, error) {
	bootLogger, err := utils.NewLogger("dev")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize zap logger: %w", err)
	}
	utils.LoadEnv(bootLogger, c.StringSlice("env-file")...)
	_ = bootLogger.Sync()

	cfg := config.LoadConfig()
	if port := c.String("port"); port != "" {
		cfg.ServerPort = port
	}

	logger, err := utils.NewLogger(cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize zap logger: %w", err)
	}

	logger.Info("Config loaded",
		zap.String("server_port", cfg.ServerPort),
		zap.String("db_host", cfg.DBHost),
		zap.String("redis_url", cfg.RedisURL),
		zap.String("env", cfg.Env),
		zap.String("delete_policy", cfg.DeletePolicy),
	)
	return &cfg, logger, nil
}
