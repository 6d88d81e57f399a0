package auth

import (
	"context"
	"net/http"

	"github.com/sweldohq/payroll-reconciler/internal/config"
	"github.com/sweldohq/payroll-reconciler/internal/model"
)

type AuthHandler interface {
	Login(ctx context.Context, email string, password string) (*model.TokenResponse, error)
}

func Route(handler AuthHandler) (route config.Route) {
	route = config.Route{
		Path:    "/auth/login",
		Method:  http.MethodPost,
		Handler: LoginHandler(handler),
	}

	return route
}
