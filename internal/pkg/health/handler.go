package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/database"
	natspkg "github.com/rentride/rentride/internal/pkg/nats"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Status reports the health of the service and its dependencies
type Status struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// Checker probes the service's backing dependencies
type Checker struct {
	serviceName string
	version     string
	postgres    *database.PostgresClient
	redis       *database.RedisClient
	nats        *natspkg.Client
}

// NewChecker creates a health checker over the given dependencies. Any of
// them may be nil and is then skipped.
func NewChecker(serviceName, version string, postgres *database.PostgresClient, redis *database.RedisClient, nats *natspkg.Client) *Checker {
	return &Checker{
		serviceName: serviceName,
		version:     version,
		postgres:    postgres,
		redis:       redis,
		nats:        nats,
	}
}

// RegisterEndpoints registers ping, health and readiness endpoints
func (h *Checker) RegisterEndpoints(e *echo.Echo) {
	e.GET("/ping", h.handlePing)
	e.GET("/health", h.handleHealth)
	e.GET("/health/ready", h.handleHealth)
	e.GET("/health/live", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

func (h *Checker) handlePing(c echo.Context) error {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return c.JSON(http.StatusOK, BuildInfo{
		Version:     h.version,
		ServiceName: h.serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
		ServerTime:  time.Now(),
	})
}

func (h *Checker) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	deps := map[string]string{}
	healthy := true

	if h.postgres != nil {
		if err := h.postgres.GetDB().PingContext(ctx); err != nil {
			deps["postgres"] = "down"
			healthy = false
		} else {
			deps["postgres"] = "up"
		}
	}

	if h.redis != nil {
		if err := h.redis.GetClient().Ping(ctx).Err(); err != nil {
			deps["redis"] = "down"
			healthy = false
		} else {
			deps["redis"] = "up"
		}
	}

	if h.nats != nil {
		if h.nats.IsConnected() {
			deps["nats"] = "up"
		} else {
			deps["nats"] = "down"
			healthy = false
		}
	}

	status := Status{Status: "ok", Dependencies: deps}
	code := http.StatusOK
	if !healthy {
		status.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, status)
}
