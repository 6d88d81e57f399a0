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

// Like every backend list endpoint, the overtime collections come back as
// bare JSON arrays. Paging is not a concern: the reads are filtered down to
// a single user.

func (c *client) GetTotalOvertime(ctx context.Context, userID int) ([]TotalOvertime, error) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Fetching overtime totals for user: ", userID)
	httpRequest, err := http.NewRequest(http.MethodGet, c.buildTotalOvertimeQueryEndpoint(userID), nil)
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
		contextLogger.WithError(err).Errorf("there was an error calling the totalovertime API. %v", err)
		return nil, err
	}

	defer func() {
		if err = resp.Body.Close(); err != nil {
			contextLogger.WithError(err).Errorf("Error closing the ioReader. %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		contextLogger.Infof("status returned from payroll service %s ", resp.Status)
		return nil, fmt.Errorf("payroll service (GetTotalOvertime) returned status: %s ", resp.Status)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		contextLogger.WithError(err).Errorf("error reading totalovertime API resp body (%s)", body)
		return nil, err
	}

	var response []TotalOvertime
	if err := json.Unmarshal(body, &response); err != nil {
		contextLogger.WithError(err).Errorf("there was an error un marshalling the totalovertime API resp. %v", err)
		return nil, err
	}

	return response, nil
}

func (c *client) GetOvertimeHours(ctx context.Context, userID int) ([]OvertimeHoursEntry, error) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Fetching overtime hour entries for user: ", userID)
	httpRequest, err := http.NewRequest(http.MethodGet, c.buildOvertimeHoursQueryEndpoint(userID), nil)
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
		contextLogger.WithError(err).Errorf("there was an error calling the overtimehours API. %v", err)
		return nil, err
	}

	defer func() {
		if err = resp.Body.Close(); err != nil {
			contextLogger.WithError(err).Errorf("Error closing the ioReader. %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		contextLogger.Infof("status returned from payroll service %s ", resp.Status)
		return nil, fmt.Errorf("payroll service (GetOvertimeHours) returned status: %s ", resp.Status)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		contextLogger.WithError(err).Errorf("error reading overtimehours API resp body (%s)", body)
		return nil, err
	}

	var response []OvertimeHoursEntry
	if err := json.Unmarshal(body, &response); err != nil {
		contextLogger.WithError(err).Errorf("there was an error un marshalling the overtimehours API resp. %v", err)
		return nil, err
	}

	return response, nil
}

func (c *client) CreateTotalOvertime(ctx context.Context, record TotalOvertime) (*TotalOvertime, error) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Creating overtime totals record for user: ", record.User)

	body, err := c.submit(ctx, "CreateTotalOvertime", http.MethodPost, c.buildTotalOvertimeCollectionEndpoint(), record)
	if err != nil {
		return nil, err
	}

	created := &TotalOvertime{}
	if err := json.Unmarshal(body, created); err != nil {
		contextLogger.WithError(err).Errorf("there was an error un marshalling the totalovertime API resp. %v", err)
		return nil, err
	}

	return created, nil
}

func (c *client) UpdateTotalOvertime(ctx context.Context, id int, record TotalOvertime) error {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Updating overtime totals record: ", id)

	_, err := c.submit(ctx, "UpdateTotalOvertime", http.MethodPut, c.buildTotalOvertimeRecordEndpoint(id), record)
	return err
}

func (c *client) buildTotalOvertimeQueryEndpoint(userID int) string {
	return c.URL + "/totalovertime/?user=" + strconv.Itoa(userID)
}

func (c *client) buildTotalOvertimeCollectionEndpoint() string {
	return c.URL + "/totalovertime/"
}

func (c *client) buildTotalOvertimeRecordEndpoint(id int) string {
	return c.URL + "/totalovertime/" + strconv.Itoa(id) + "/"
}

func (c *client) buildOvertimeHoursQueryEndpoint(userID int) string {
	return c.URL + "/overtimehours/?user=" + strconv.Itoa(userID)
}
