package hrapi

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"time"

	"github.com/googleapis/gax-go/v2"
	log "github.com/sirupsen/logrus"

	"github.com/sweldohq/payroll-reconciler/internal/customhttp"
	"github.com/sweldohq/payroll-reconciler/internal/model"
)

const (
	headerKeyAuth        = "Authorization"
	headerKeyContentType = "Content-Type"
	bearer               = "Bearer"
	contentTypeJSON      = "application/json"

	accessTokenFetchErr = "Error fetching the access token"
)

// ClientInterface covers every payroll backend resource the reconciliation
// engine consumes. Reads are filtered by user id; writes follow the backend's
// POST-to-create / PUT-to-replace convention.
type ClientInterface interface {
	GetSalaryRecords(ctx context.Context, userID int) ([]Salary, error)
	GetEarnings(ctx context.Context, userID int) ([]Earnings, error)
	GetDeductions(ctx context.Context, userID int) ([]Deductions, error)
	GetTotalOvertime(ctx context.Context, userID int) ([]TotalOvertime, error)
	GetOvertimeHours(ctx context.Context, userID int) ([]OvertimeHoursEntry, error)

	CreateEarnings(ctx context.Context, record Earnings) (*Earnings, error)
	UpdateEarnings(ctx context.Context, id int, record Earnings) error
	CreateDeductions(ctx context.Context, record Deductions) (*Deductions, error)
	UpdateDeductions(ctx context.Context, id int, record Deductions) error
	CreateTotalOvertime(ctx context.Context, record TotalOvertime) (*TotalOvertime, error)
	UpdateTotalOvertime(ctx context.Context, id int, record TotalOvertime) error

	SSSContribution(ctx context.Context, salary float64) (float64, error)
	PhilhealthContribution(ctx context.Context, salary float64) (float64, error)
	PagibigContribution(ctx context.Context, salary float64) (float64, error)
}

func NewClient(endpoint string, c customhttp.HTTPCommand, authTokenLoc string, rateLimitTimeout time.Duration) *client {
	return &client{
		URL:               endpoint,
		Client:            c,
		AuthTokenLocation: authTokenLoc,
		RateLimitBackoff:  defaultRateLimitBackoff,
		RateLimitTimeout:  rateLimitTimeout,
	}
}

type client struct {
	URL               string
	Client            customhttp.HTTPCommand
	AuthTokenLocation string
	RateLimitBackoff  *gax.Backoff
	RateLimitTimeout  time.Duration
}

func (c *client) getAccessToken(ctx context.Context) (string, error) {
	var data *model.TokenResponse
	contextLogger := log.WithContext(ctx)
	sessionFile, err := ioutil.ReadFile(c.AuthTokenLocation)
	if err != nil {
		contextLogger.WithError(err).Errorf("error reading json file containing access token")
		return "", err
	}

	err = json.Unmarshal(sessionFile, &data)
	if err != nil {
		contextLogger.WithError(err).Errorf("error un marshalling json file containing access token")
		return "", err
	}
	return data.AccessToken, nil
}
