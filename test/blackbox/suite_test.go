package blackbox

import (
	"context"
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	"github.com/sweldohq/payroll-reconciler/internal/customhttp"
	"github.com/sweldohq/payroll-reconciler/internal/hrapi"
)

var (
	earningsResp = `[
    {
        "id": 5,
        "user": 101,
        "basic_rate": "9500.00",
        "basic": "4750.00",
        "allowance": "750.00",
        "ntax": null,
        "vacationleave": "0.00",
        "sickleave": "0.00",
        "bereavementleave": "0.00"
    }
]`

	totalOvertimeResp = `[
    {
        "id": 7,
        "user": 101,
        "total_regularot": "114.18",
        "total_overtime": "114.18",
        "biweek_start": "2022-06-13"
    }
]`
)

// entrypoint for test
func TestApiSuite(t *testing.T) {
	suite.Run(t, new(apiSuite))
}

type apiSuite struct {
	suite.Suite

	ctx    context.Context
	client hrapi.ClientInterface
}

func (a *apiSuite) SetupSuite() {
	// block all HTTP requests
	httpmock.Activate()

	a.ctx = context.Background()

	tokenFile, err := ioutil.TempFile("", "hr_session.json")
	a.Require().NoError(err)
	_, err = tokenFile.Write([]byte(`{"access": "e", "refresh": "f"}`))
	a.Require().NoError(err)
	a.Require().NoError(tokenFile.Close())

	a.client = hrapi.NewClient("http://hr-backend.test", customhttp.New().Build(), tokenFile.Name(), time.Second)
}

func (a *apiSuite) TearDownTest() {
	// remove any mocks after each test
	httpmock.Reset()
}

func (a *apiSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (a *apiSuite) Test_GetEarnings() {
	httpmock.RegisterResponder(http.MethodGet, "http://hr-backend.test/earnings/",
		httpmock.NewStringResponder(http.StatusOK, earningsResp))

	got, err := a.client.GetEarnings(a.ctx, 101)
	a.Require().NoError(err)
	a.Require().Len(got, 1)
	a.Require().Equal(hrapi.Number(9500), got[0].BasicRate)
	// junk amounts coerce to zero at the wire boundary
	a.Require().Equal(hrapi.Number(0), got[0].NTax)
}

func (a *apiSuite) Test_GetTotalOvertime() {
	httpmock.RegisterResponder(http.MethodGet, "http://hr-backend.test/totalovertime/",
		httpmock.NewStringResponder(http.StatusOK, totalOvertimeResp))

	got, err := a.client.GetTotalOvertime(a.ctx, 101)
	a.Require().NoError(err)
	a.Require().Len(got, 1)
	a.Require().Equal(7, got[0].ID)
	a.Require().Equal(hrapi.Number(114.18), got[0].TotalOvertime)
}

func (a *apiSuite) Test_ExistingTotalOvertime_IsUpdatedInPlace() {
	httpmock.RegisterResponder(http.MethodGet, "http://hr-backend.test/totalovertime/",
		httpmock.NewStringResponder(http.StatusOK, totalOvertimeResp))
	httpmock.RegisterResponder(http.MethodPut, "http://hr-backend.test/totalovertime/7/",
		httpmock.NewStringResponder(http.StatusOK, `{"id": 7, "user": 101, "total_overtime": "228.36"}`))

	existing, err := a.client.GetTotalOvertime(a.ctx, 101)
	a.Require().NoError(err)
	a.Require().Len(existing, 1)

	err = a.client.UpdateTotalOvertime(a.ctx, existing[0].ID, hrapi.TotalOvertime{User: 101, TotalOvertime: 228.36})
	a.Require().NoError(err)

	// the replace endpoint must be hit; a create here would duplicate the record
	info := httpmock.GetCallCountInfo()
	a.Require().Equal(1, info["PUT http://hr-backend.test/totalovertime/7/"])
	a.Require().Zero(info["POST http://hr-backend.test/totalovertime/"])
}

func (a *apiSuite) Test_CreateDeductions() {
	httpmock.RegisterResponder(http.MethodPost, "http://hr-backend.test/deductions/",
		httpmock.NewStringResponder(http.StatusCreated, `{"id": 12, "user": 101, "sss": "495.00"}`))

	created, err := a.client.CreateDeductions(a.ctx, hrapi.Deductions{User: 101, SSS: 495})
	a.Require().NoError(err)
	a.Require().Equal(12, created.ID)
}
