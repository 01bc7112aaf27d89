package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/sportclub/club-ui/config"
	"github.com/sportclub/club-ui/internal/adapters/authroles"
	redisadapter "github.com/sportclub/club-ui/internal/adapters/redis"
	"github.com/sportclub/club-ui/internal/backend"
	"github.com/sportclub/club-ui/internal/service"
)

// ServiceDeps holds the external dependencies services are built from.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer holds the application services.
type ServiceContainer struct {
	Auth    *service.AuthService
	Backend *backend.Client
}

// NewServices constructs the application services from their dependencies.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	sessions := redisadapter.NewSessionStore(deps.RedisClient)

	auth := service.NewAuthService(service.AuthServiceOptions{
		Sessions: sessions,
		Roles:    authroles.StaticDashboardMapper{},
	})

	client, err := backend.New(backend.Options{
		Config: deps.Config.Backend,
		Logger: deps.Logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("backend client: %w", err)
	}

	return ServiceContainer{
		Auth:    auth,
		Backend: client,
	}, nil
}
