package cmd

import (
	"discussion/internal/db"
	"discussion/internal/db/seeder"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// MigrateCommand creates or updates the schema and exits.
func MigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the comment and participant tables",
		Action: func(c *cli.Context) error {
			cfg, logger, err := setup(c)
			if err != nil {
				return err
			}
			defer logger.Sync()

			conn, err := db.Connect(cfg, logger)
			if err != nil {
				logger.Error("Failed to connect to database", zap.Error(err))
				return err
			}
			return db.Migrate(conn, logger)
		},
	}
}

// SeedCommand migrates and loads the demo participants.
func SeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Seed demo participants and thread memberships",
		Action: func(c *cli.Context) error {
			cfg, logger, err := setup(c)
			if err != nil {
				return err
			}
			defer logger.Sync()

			conn, err := db.Connect(cfg, logger)
			if err != nil {
				logger.Error("Failed to connect to database", zap.Error(err))
				return err
			}
			if err := db.Migrate(conn, logger); err != nil {
				return err
			}
			return seeder.NewSeeder(conn, logger).Seed(c.Context)
		},
	}
}
