package hrapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"github.com/googleapis/gax-go/v2"
	log "github.com/sirupsen/logrus"
)

// The benefits schedule endpoints sit behind the backend's rate limiter, so
// these reads run through a retry loop: 429 and transport timeouts back off
// and try again until the retry context expires, everything else fails fast.

func (c *client) SSSContribution(ctx context.Context, salary float64) (float64, error) {
	return c.contribution(ctx, "SSSContribution", c.buildContributionEndpoint("sss", salary))
}

func (c *client) PhilhealthContribution(ctx context.Context, salary float64) (float64, error) {
	return c.contribution(ctx, "PhilhealthContribution", c.buildContributionEndpoint("philhealth", salary))
}

func (c *client) PagibigContribution(ctx context.Context, salary float64) (float64, error) {
	return c.contribution(ctx, "PagibigContribution", c.buildContributionEndpoint("pagibig", salary))
}

func (c *client) contribution(ctx context.Context, apiName string, endpoint string) (float64, error) {
	var d time.Duration

	retryCtx, cancel, backOff := newRetry(ctx, c.RateLimitBackoff, c.RateLimitTimeout)
	defer cancel()

	for {
		res, err := c.getContribution(ctx, apiName, endpoint)
		if err != nil {
			if errors.Is(err, unauthorized) {
				return 0, err
			}

			if errors.Is(err, nonRetryable) {
				return 0, err
			}

			d = backOff.Pause()
			if innerErr := gax.Sleep(retryCtx, d); innerErr != nil {
				return 0, fmt.Errorf("failed, retry limit expired: %v", err)
			}
			continue
		}
		return res, nil
	}
}

func (c *client) getContribution(ctx context.Context, apiName string, endpoint string) (float64, error) {
	contextLogger := log.WithContext(ctx)
	httpRequest, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		contextLogger.WithError(err).Errorf(accessTokenFetchErr)
		return 0, fmt.Errorf("%s: %v %w", accessTokenFetchErr, err, nonRetryable)
	}
	httpRequest.Header.Set(headerKeyAuth, fmt.Sprintf("%s %s", bearer, accessToken))

	res, err := c.Client.Do(httpRequest)
	if err != nil {
		// transport failures, timeouts included, are retried
		return 0, fmt.Errorf("failed to execute %s request. Cause %v", apiName, err)
	}

	defer func() {
		if err = res.Body.Close(); err != nil {
			contextLogger.WithError(err).Errorf("Error closing the ioReader. %v", err)
		}
	}()

	err = getHTTPStatusCode(ctx, res, apiName)
	if err != nil {
		return 0, err
	}

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		contextLogger.WithError(err).Errorf("error reading benefits API resp body (%s)", body)
		return 0, fmt.Errorf("error reading benefits API resp body. cause: %v %w", err, nonRetryable)
	}

	response := &ContributionResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		contextLogger.WithError(err).Errorf("there was an error un marshalling the benefits API resp. %v", err)
		return 0, fmt.Errorf("there was an error un marshalling the benefits API resp. cause: %v %w", err, nonRetryable)
	}

	return float64(response.Contribution), nil
}

func (c *client) buildContributionEndpoint(scheme string, salary float64) string {
	return c.URL + "/benefits/" + scheme + "/?salary=" + strconv.FormatFloat(salary, 'f', 2, 64)
}
