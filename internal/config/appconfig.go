package config

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"

	"github.com/sweldohq/payroll-reconciler/internal/customhttp"
	"github.com/sweldohq/payroll-reconciler/internal/hrapi"
)

type ApplicationConfig struct {
	envValues   *envConfig
	hrClient    hrapi.ClientInterface
	emailClient *ses.SES
}

//Version returns application version
func (cfg *ApplicationConfig) Version() string {
	return cfg.envValues.Version
}

//ServerPort returns the port no to listen for requests
func (cfg *ApplicationConfig) ServerPort() int {
	return cfg.envValues.ServerPort
}

//HRAPIClient returns the payroll backend client
func (cfg *ApplicationConfig) HRAPIClient() hrapi.ClientInterface {
	return cfg.hrClient
}

//HRAuthEndpoint returns the backend token endpoint
func (cfg *ApplicationConfig) HRAuthEndpoint() string {
	return cfg.envValues.HRAuthEndpoint
}

//AuthTokenFileLocation returns the temp loc to store the auth token file
func (cfg *ApplicationConfig) AuthTokenFileLocation() string {
	return cfg.envValues.AuthTokenFileLocation
}

//XlsFileLocation returns the file location to read the payroll roster
func (cfg *ApplicationConfig) XlsFileLocation() string {
	return cfg.envValues.XlsFileLocation
}

//EmailClient returns the ses client with config
func (cfg *ApplicationConfig) EmailClient() *ses.SES {
	return cfg.emailClient
}

//EmailTo returns the to email address
func (cfg *ApplicationConfig) EmailTo() string {
	return cfg.envValues.EmailTo
}

//EmailFrom returns the From email address
func (cfg *ApplicationConfig) EmailFrom() string {
	return cfg.envValues.EmailFrom
}

//NewApplicationConfig loads config values from environment and initialises config
func NewApplicationConfig() *ApplicationConfig {
	envValues := NewEnvironmentConfig()
	httpCommand := NewHTTPCommand()
	hrClient := hrapi.NewClient(envValues.HRAPIEndpoint, httpCommand, envValues.AuthTokenFileLocation,
		time.Duration(envValues.RateLimitTimeout)*time.Minute)
	emailClient := ses.New(session.New(), aws.NewConfig().WithRegion(envValues.AWSRegion))
	return &ApplicationConfig{
		envValues:   envValues,
		hrClient:    hrClient,
		emailClient: emailClient,
	}
}

// NewHTTPCommand returns the HTTP client
func NewHTTPCommand() customhttp.HTTPCommand {
	httpCommand := customhttp.New(
		customhttp.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
	).Build()

	return httpCommand
}
