package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/sweldohq/payroll-reconciler/internal/model"
)

const filePerm = 0600

type Service struct {
	authEndpoint     string
	AuthTokenFileLoc string
}

func NewAuthService(authURL string, authFileLoc string) *Service {
	return &Service{
		authEndpoint:     authURL,
		AuthTokenFileLoc: authFileLoc,
	}
}

// Login exchanges the operator's credentials for a token pair and persists
// it to the token file the API client reads on every outgoing call.
func (service Service) Login(ctx context.Context, email string, password string) (*model.TokenResponse, error) {
	ctxLogger := log.WithContext(ctx)
	creds, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		ctxLogger.WithError(err).Error("could not marshal login credentials")
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, service.authEndpoint, bytes.NewReader(creds))
	if err != nil {
		ctxLogger.WithError(err).Error("could not create HTTP request")
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Set("accept", "application/json")

	// Send out the HTTP request
	httpClient := http.Client{}
	res, err := httpClient.Do(req)
	if err != nil {
		ctxLogger.WithError(err).Error("could not send HTTP request")
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		ctxLogger.Infof("status returned from the HR auth service is %s", res.Status)
		return nil, fmt.Errorf("hr auth service returned status: %s", res.Status)
	}

	var resp *model.TokenResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		ctxLogger.WithError(err).Error("could not parse JSON response")
		return nil, err
	}

	file, err := json.MarshalIndent(resp, "", " ")
	if err != nil {
		ctxLogger.WithError(err).Error("Error preparing the json to write to file")
		return nil, err
	}

	err = ioutil.WriteFile(service.AuthTokenFileLoc, file, filePerm)
	if err != nil {
		ctxLogger.WithError(err).Error("Error writing token to file")
		return nil, err
	}
	return resp, nil
}
