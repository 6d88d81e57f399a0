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

// GetSalaryRecords is an existence check: a non-empty result means the user
// already has payroll data linked up.
func (c *client) GetSalaryRecords(ctx context.Context, userID int) ([]Salary, error) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Fetching salary records for user: ", userID)
	httpRequest, err := http.NewRequest(http.MethodGet, c.buildSalaryQueryEndpoint(userID), nil)
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
		contextLogger.WithError(err).Errorf("there was an error calling the salary API. %v", err)
		return nil, err
	}

	defer func() {
		if err = resp.Body.Close(); err != nil {
			contextLogger.WithError(err).Errorf("Error closing the ioReader. %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		contextLogger.Infof("status returned from payroll service %s ", resp.Status)
		return nil, fmt.Errorf("payroll service (GetSalaryRecords) returned status: %s ", resp.Status)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		contextLogger.WithError(err).Errorf("error reading salary API resp body (%s)", body)
		return nil, err
	}

	var response []Salary
	if err := json.Unmarshal(body, &response); err != nil {
		contextLogger.WithError(err).Errorf("there was an error un marshalling the salary API resp. %v", err)
		return nil, err
	}

	return response, nil
}

func (c *client) buildSalaryQueryEndpoint(userID int) string {
	return c.URL + "/salary/?user=" + strconv.Itoa(userID)
}
