package config

import (
	"os"
	"strconv"
)

type envConfig struct {
	LogLevel              string
	ServerPort            int
	Version               string
	HRAPIEndpoint         string
	HRAuthEndpoint        string
	AuthTokenFileLocation string
	XlsFileLocation       string
	EmailTo               string
	EmailFrom             string
	AWSRegion             string
	RateLimitTimeout      int
}

func NewEnvironmentConfig() *envConfig {
	return &envConfig{
		LogLevel:              getEnvString("LOG_LEVEL", "INFO"),
		ServerPort:            getEnvInt("SERVER_PORT", 0),
		Version:               getEnvString("VERSION", ""),
		HRAPIEndpoint:         getEnvString("HR_API_ENDPOINT", ""),
		HRAuthEndpoint:        getEnvString("HR_AUTH_ENDPOINT", ""),
		AuthTokenFileLocation: getEnvString("AUTH_TOKEN_FILE_LOCATION", ""),
		XlsFileLocation:       getEnvString("XLS_FILE_LOCATION", ""),
		EmailTo:               getEnvString("EMAIL_TO", ""),
		EmailFrom:             getEnvString("EMAIL_FROM", ""),
		AWSRegion:             getEnvString("AWS_REGION", "ap-southeast-1"),
		RateLimitTimeout:      getEnvInt("RATE_LIMIT_TIMEOUT", 1),
	}
}

// helper function to read an environment or return a default value
func getEnvString(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

// helper function to read an environment or return a default value
func getEnvInt(key string, defaultVal int) int {
	val, err := strconv.Atoi(getEnvString(key, strconv.Itoa(defaultVal)))
	if err == nil {
		return val
	}

	return defaultVal
}
