package api

import (
	"context"
	"log"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/labstack/echo/v4"

	"github.com/surhub/startup-weekend/internal/localstore"
)

type HealthChecker interface {
	HealthCheck() echo.HandlerFunc
}

type healthChecker struct {
	health *health.Health
}

func MustNewHealthChecker(checks ...health.Config) HealthChecker {
	h, _ := health.New(health.WithComponent(health.Component{Name: "startup-weekend", Version: "v0.1.0"}))

	for _, check := range checks {
		if err := h.Register(check); err != nil {
			log.Fatal("failed to register health check:", err)
		}
	}

	return &healthChecker{
		health: h,
	}
}

// LocalStoreCheck reports whether the client-state store is reachable.
func LocalStoreCheck(store *localstore.Store) health.Config {
	return health.Config{
		Name:    "localstore",
		Timeout: 2 * time.Second,
		Check: func(ctx context.Context) error {
			return store.Ping(ctx)
		},
	}
}

func (h *healthChecker) HealthCheck() echo.HandlerFunc {
	return echo.WrapHandler(h.health.Handler())
}
