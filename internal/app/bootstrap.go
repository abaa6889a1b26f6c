package app

import (
	"context"
	"errors"

	"discussion/internal/app/comment"
	"discussion/internal/app/health"
	"discussion/internal/app/moderation"
	"discussion/internal/app/participant"
	"discussion/internal/config"
	"discussion/internal/db"
	"discussion/internal/db/seeder"
	"discussion/internal/providers/redis"
	"discussion/internal/router"
	"discussion/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
	Redis  *redis.RedisProvider
}

type Options struct {
	Migrate bool
	Seed    bool
}

func Bootstrap(cfg *config.Config, logger *zap.Logger, opts Options) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if opts.Migrate {
		if err := db.Migrate(dbConn, logger); err != nil {
			return nil, err
		}
	}

	if opts.Seed {
		seed := seeder.NewSeeder(dbConn, logger)
		if err := seed.Seed(context.Background()); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)

	participantRepo := participant.NewRepository(dbConn)
	participantService := participant.NewService(participantRepo, redisProvider, logger)

	commentRepo := comment.NewCachedRepository(comment.NewRepository(dbConn), redisProvider, cfg.RedisTTL, logger)
	moderators := moderation.NewStatic(cfg.ModeratorIDs)
	commentService := comment.NewService(commentRepo, participantService, logger, comment.Options{
		Moderator:        moderators,
		DeletePolicy:     comment.DeletePolicy(cfg.DeletePolicy),
		MaxContentLength: cfg.MaxContentLength,
	})

	logger.Info("Comment service ready",
		zap.String("delete_policy", cfg.DeletePolicy),
		zap.Int("max_content_length", cfg.MaxContentLength),
		zap.Int("moderators", moderators.Len()),
	)

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	commentHandler := comment.NewHandler(commentService, logger)
	participantHandler := participant.NewHandler(participantService)

	r := router.NewRouter(logger)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterCommentRoutes(commentHandler)
	r.RegisterParticipantRoutes(participantHandler)
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
		Redis:  redisProvider,
	}, nil
}

// Close releases the redis client and the database pool.
func (a *Application) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
