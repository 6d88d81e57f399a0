package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
)

func (c *client) GetEarnings(ctx context.Context, userID int) ([]Earnings, error) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Fetching earnings record for user: ", userID)
	httpRequest, err := http.NewRequest(http.MethodGet, c.buildEarningsQueryEndpoint(userID), nil)
	if err != nil {
		return nil, err
	}

	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		contextLogger.WithError(err).Errorf(accessTokenFetchErr)
		return nil, err
	}
	httpRequest.Header.Set(headerKeyAuth, fmt.Sprintf("%s %s", bearer, accessToken))

	resp, err := c.Client.Do(httpRequest)
	if err != nil {
		contextLogger.WithError(err).Errorf("there was an error calling the earnings API. %v", err)
		return nil, err
	}

	defer func() {
		if err = resp.Body.Close(); err != nil {
			contextLogger.WithError(err).Errorf("Error closing the ioReader. %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		contextLogger.Infof("status returned from payroll service %s ", resp.Status)
		return nil, fmt.Errorf("payroll service (GetEarnings) returned status: %s ", resp.Status)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		contextLogger.WithError(err).Errorf("error reading earnings API resp body (%s)", body)
		return nil, err
	}

	var response []Earnings
	if err := json.Unmarshal(body, &response); err != nil {
		contextLogger.WithError(err).Errorf("there was an error un marshalling the earnings API resp. %v", err)
		return nil, err
	}

	return response, nil
}

func (c *client) CreateEarnings(ctx context.Context, record Earnings) (*Earnings, error) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Creating earnings record for user: ", record.User)

	body, err := c.submit(ctx, "CreateEarnings", http.MethodPost, c.buildEarningsCollectionEndpoint(), record)
	if err != nil {
		return nil, err
	}

	created := &Earnings{}
	if err := json.Unmarshal(body, created); err != nil {
		contextLogger.WithError(err).Errorf("there was an error un marshalling the earnings API resp. %v", err)
		return nil, err
	}

	return created, nil
}

func (c *client) UpdateEarnings(ctx context.Context, id int, record Earnings) error {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Updating earnings record: ", id)

	_, err := c.submit(ctx, "UpdateEarnings", http.MethodPut, c.buildEarningsRecordEndpoint(id), record)
	return err
}

// submit sends a JSON write to the backend and returns the response body.
// Non-2xx responses surface the server's error payload so the caller can
// relay the backend's own validation detail.
func (c *client) submit(ctx context.Context, apiName string, method string, endpoint string, record interface{}) ([]byte, error) {
	contextLogger := log.WithContext(ctx)
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	httpRequest, err := http.NewRequest(method, endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}

	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		contextLogger.WithError(err).Errorf(accessTokenFetchErr)
		return nil, err
	}
	httpRequest.Header.Set(headerKeyAuth, fmt.Sprintf("%s %s", bearer, accessToken))
	httpRequest.Header.Set(headerKeyContentType, contentTypeJSON)
	httpRequest.Header.Set("Accept", contentTypeJSON)

	resp, err := c.Client.Do(httpRequest)
	if err != nil {
		contextLogger.WithError(err).Errorf("there was an error calling the payroll API. %v", err)
		return nil, err
	}

	defer func() {
		if err = resp.Body.Close(); err != nil {
			contextLogger.WithError(err).Errorf("Error closing the ioReader. %v", err)
		}
	}()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		contextLogger.WithError(err).Errorf("error reading payroll API resp body (%s)", body)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		contextLogger.Infof("status returned from payroll service %s ", resp.Status)
		return nil, fmt.Errorf("payroll service (%s) returned status %s: %s", apiName, resp.Status, body)
	}

	return body, nil
}

func (c *client) buildEarningsQueryEndpoint(userID int) string {
	return c.URL + "/earnings/?user=" + strconv.Itoa(userID)
}

func (c *client) buildEarningsCollectionEndpoint() string {
	return c.URL + "/earnings/"
}

func (c *client) buildEarningsRecordEndpoint(id int) string {
	return c.URL + "/earnings/" + strconv.Itoa(id) + "/"
}
