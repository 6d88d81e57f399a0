package auth

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/sweldohq/payroll-reconciler/internal/util"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginHandler(handler AuthHandler) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		contextLogger := log.WithContext(ctx)

		var body loginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			contextLogger.WithError(err).Error("could not parse login request body")
			util.WithBodyAndStatus(nil, http.StatusBadRequest, w)
			return
		}

		resp, err := handler.Login(ctx, body.Email, body.Password)
		if err != nil {
			contextLogger.WithError(err).Error("Failed to fetch the access token")
			util.WithBodyAndStatus("Failed to authenticate with the HR backend", http.StatusUnauthorized, w)
			return
		}

		util.WithBodyAndStatus(resp, http.StatusOK, w)
	}
}
