package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"

	"github.com/sweldohq/payroll-reconciler/internal/config"
	"github.com/sweldohq/payroll-reconciler/internal/payroll"
	"github.com/sweldohq/payroll-reconciler/internal/util"
)

const supportedFileFormat = ".xlsx"

type PayrollAPIHandler interface {
	ReconcilePayroll(ctx context.Context, userID int, monthlyRate float64) (*payroll.ReconciledPayroll, payroll.IdentifierCache, error)
	SavePayroll(ctx context.Context, userID int, p *payroll.ReconciledPayroll, cache payroll.IdentifierCache) (payroll.IdentifierCache, error)
	RunPayrollBatch(ctx context.Context) []string
}

// PayrollResponse is the reconciled view plus the record ids the caller must
// echo back on save so updates replace instead of duplicating.
type PayrollResponse struct {
	Payroll     *payroll.ReconciledPayroll `json:"payroll"`
	Identifiers payroll.IdentifierCache    `json:"identifiers"`
}

type SavePayrollRequest struct {
	Payroll     *payroll.ReconciledPayroll `json:"payroll"`
	Identifiers payroll.IdentifierCache    `json:"identifiers"`
}

type SavePayrollError struct {
	Error       string                  `json:"error"`
	Identifiers payroll.IdentifierCache `json:"identifiers"`
}

// ReconcileHandler serves GET /payroll/{userID}. An optional rate_per_month
// query param seeds the basic rate when the employee has no records yet.
func ReconcileHandler(handler PayrollAPIHandler) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		contextLogger := log.WithContext(ctx)

		userID, err := strconv.Atoi(mux.Vars(req)["userID"])
		if err != nil {
			contextLogger.WithError(err).Error("Invalid user id in request path")
			util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
			return
		}

		var monthlyRate float64
		if rate := req.URL.Query().Get("rate_per_month"); rate != "" {
			monthlyRate, err = strconv.ParseFloat(rate, 64)
			if err != nil {
				contextLogger.WithError(err).Error("Invalid rate_per_month in request query")
				util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
				return
			}
		}

		p, cache, err := handler.ReconcilePayroll(ctx, userID, monthlyRate)
		if err != nil {
			if errors.Is(err, payroll.ErrMissingIdentifier) {
				util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
				return
			}
			contextLogger.WithError(err).Errorf("Failed to reconcile payroll for user %v", userID)
			util.WithBodyAndStatus(nil, http.StatusInternalServerError, res)
			return
		}
		util.WithBodyAndStatus(PayrollResponse{Payroll: p, Identifiers: cache}, http.StatusOK, res)
	}
}

// SaveHandler serves POST /payroll/{userID}. A partial write failure returns
// 502 with the ids captured so far, so the client can retry without
// duplicating the records already created.
func SaveHandler(handler PayrollAPIHandler) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		contextLogger := log.WithContext(ctx)

		userID, err := strconv.Atoi(mux.Vars(req)["userID"])
		if err != nil {
			contextLogger.WithError(err).Error("Invalid user id in request path")
			util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
			return
		}

		var body SavePayrollRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Payroll == nil {
			contextLogger.WithError(err).Error("Failed to parse save payroll request body")
			util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
			return
		}

		cache, err := handler.SavePayroll(ctx, userID, body.Payroll, body.Identifiers)
		if err != nil {
			if errors.Is(err, payroll.ErrMissingIdentifier) {
				util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
				return
			}
			contextLogger.WithError(err).Errorf("Failed to save payroll for user %v", userID)
			util.WithBodyAndStatus(SavePayrollError{Error: err.Error(), Identifiers: cache}, http.StatusBadGateway, res)
			return
		}
		util.WithBodyAndStatus(PayrollResponse{Payroll: body.Payroll, Identifiers: cache}, http.StatusOK, res)
	}
}

// BatchHandler serves POST /runPayroll with a multipart roster upload.
func BatchHandler(handler PayrollAPIHandler) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		contextLogger := log.WithContext(ctx)

		var errResult []string
		_, fileHeader, err := req.FormFile("file")
		if err != nil {
			contextLogger.WithError(err).Error("Failed to get the file from request")
			util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
			return
		}

		if filepath.Ext(fileHeader.Filename) != supportedFileFormat {
			contextLogger.Error("Unable to open the uploaded file. Please confirm the file is in .xlsx format.")
			util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
			return
		}

		err = parseRequestBody(req)
		if err != nil {
			util.WithBodyAndStatus(nil, http.StatusInternalServerError, res)
			return
		}

		errResult = handler.RunPayrollBatch(ctx)
		if len(errResult) > 0 {
			contextLogger.Error("There were some errors during the payroll run")
			util.WithBodyAndStatus(errResult, http.StatusInternalServerError, res)
			return
		}
		util.WithBodyAndStatus("", http.StatusOK, res)
	}
}

func parseRequestBody(req *http.Request) error {
	ctx := req.Context()
	envValues := config.NewEnvironmentConfig()
	contextLogger := log.WithContext(ctx)
	err := req.ParseMultipartForm(32 << 20)
	if err != nil {
		contextLogger.WithError(err).Error("Failed to parse request body")
		return err
	}

	file, _, err := req.FormFile("file")
	if err != nil {
		contextLogger.WithError(err).Error("Failed to get the file from request")
		return err
	}
	defer file.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, file); err != nil {
		contextLogger.WithError(err).Error("Failed to copy file contents to buffer")
		return err
	}

	excelFile, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		contextLogger.WithError(err).Error("Failed to convert bytes to excel file")
		return err
	}

	err = excelFile.Save(envValues.XlsFileLocation)
	if err != nil {
		contextLogger.WithError(err).Error("Failed to save excel file to disk")
		return err
	}
	return nil
}
