package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const defaultCheckTimeout = 2 * time.Second

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Services  []Service `json:"services"`
}

type Service struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker pings the comment store and the comment cache. A nil
// dependency is skipped.
type HealthChecker struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Timeout time.Duration
}

type dependency struct {
	name string
	ping func(ctx context.Context) error
}

func (h *HealthChecker) dependencies() []dependency {
	var deps []dependency
	if h.DB != nil {
		deps = append(deps, dependency{name: "PostgreSQL", ping: func(ctx context.Context) error {
			sqlDB, err := h.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}})
	}
	if h.Redis != nil {
		deps = append(deps, dependency{name: "Redis", ping: func(ctx context.Context) error {
			return h.Redis.Ping(ctx).Err()
		}})
	}
	return deps
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}

	services := []Service{}
	overallStatus := "healthy"
	for _, p := range h.dependencies() {
		service := Service{Name: p.name, Status: "up"}
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		if err := p.ping(checkCtx); err != nil {
			service.Status = "down"
			service.Message = err.Error()
			overallStatus = "degraded"
		}
		cancel()
		services = append(services, service)
	}

	return HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}
