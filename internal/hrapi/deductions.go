package hrapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
)

func (c *client) GetDeductions(ctx context.Context, userID int) ([]Deductions, error) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Fetching deductions record for user: ", userID)
	httpRequest, err := http.NewRequest(http.MethodGet, c.buildDeductionsQueryEndpoint(userID), nil)
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
		contextLogger.WithError(err).Errorf("there was an error calling the deductions API. %v", err)
		return nil, err
	}

	defer func() {
		if err = resp.Body.Close(); err != nil {
			contextLogger.WithError(err).Errorf("Error closing the ioReader. %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		contextLogger.Infof("status returned from payroll service %s ", resp.Status)
		return nil, fmt.Errorf("payroll service (GetDeductions) returned status: %s ", resp.Status)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		contextLogger.WithError(err).Errorf("error reading deductions API resp body (%s)", body)
		return nil, err
	}

	var response []Deductions
	if err := json.Unmarshal(body, &response); err != nil {
		contextLogger.WithError(err).Errorf("there was an error un marshalling the deductions API resp. %v", err)
		return nil, err
	}

	return response, nil
}

func (c *client) CreateDeductions(ctx context.Context, record Deductions) (*Deductions, error) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Creating deductions record for user: ", record.User)

	body, err := c.submit(ctx, "CreateDeductions", http.MethodPost, c.buildDeductionsCollectionEndpoint(), record)
	if err != nil {
		return nil, err
	}

	created := &Deductions{}
	if err := json.Unmarshal(body, created); err != nil {
		contextLogger.WithError(err).Errorf("there was an error un marshalling the deductions API resp. %v", err)
		return nil, err
	}

	return created, nil
}

func (c *client) UpdateDeductions(ctx context.Context, id int, record Deductions) error {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Updating deductions record: ", id)

	_, err := c.submit(ctx, "UpdateDeductions", http.MethodPut, c.buildDeductionsRecordEndpoint(id), record)
	return err
}

func (c *client) buildDeductionsQueryEndpoint(userID int) string {
	return c.URL + "/deductions/?user=" + strconv.Itoa(userID)
}

func (c *client) buildDeductionsCollectionEndpoint() string {
	return c.URL + "/deductions/"
}

func (c *client) buildDeductionsRecordEndpoint(id int) string {
	return c.URL + "/deductions/" + strconv.Itoa(id) + "/"
}
