package internal

import (
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/service/ses"

	"github.com/sweldohq/payroll-reconciler/internal/auth"
	"github.com/sweldohq/payroll-reconciler/internal/config"
	"github.com/sweldohq/payroll-reconciler/internal/hrapi"
	"github.com/sweldohq/payroll-reconciler/internal/middlewares"
)

//StatusRoute health check route
func StatusRoute() (route config.Route) {
	route = config.Route{
		Path:    "/health",
		Method:  http.MethodGet,
		Handler: middlewares.RuntimeHealthCheck(),
	}
	return route
}

type ServerConfig interface {
	Version() string
	HRAPIClient() hrapi.ClientInterface
	HRAuthEndpoint() string
	AuthTokenFileLocation() string
	XlsFileLocation() string
	EmailClient() *ses.SES
	EmailTo() string
	EmailFrom() string
}

func SetupServer(cfg ServerConfig) *config.Server {
	basePath := fmt.Sprintf("/%v", cfg.Version())
	service := NewService(cfg.HRAPIClient(), cfg.XlsFileLocation(), cfg.EmailClient(), cfg.EmailTo(), cfg.EmailFrom())
	authService := auth.NewAuthService(cfg.HRAuthEndpoint(), cfg.AuthTokenFileLocation())
	routes := append(Routes(service), auth.Route(authService))
	server := config.NewServer().
		WithRoutes(
			"", StatusRoute(),
		).
		WithRoutes(
			basePath,
			routes...,
		)
	return server
}
