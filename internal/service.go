package internal

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ses"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	appcontext "github.com/sweldohq/payroll-reconciler/internal/context"
	"github.com/sweldohq/payroll-reconciler/internal/hrapi"
	"github.com/sweldohq/payroll-reconciler/internal/model"
	"github.com/sweldohq/payroll-reconciler/internal/payroll"
)

type Service struct {
	client          hrapi.ClientInterface
	locator         *payroll.Locator
	coordinator     *payroll.Coordinator
	xlsFileLocation string
	emailClient     *ses.SES
	emailTo         string
	emailFrom       string
}

func NewService(c hrapi.ClientInterface, xlsLocation string, ec *ses.SES, emailTo string, emailFrom string) *Service {
	return &Service{
		client:          c,
		locator:         payroll.NewLocator(c),
		coordinator:     payroll.NewCoordinator(c),
		xlsFileLocation: xlsLocation,
		emailClient:     ec,
		emailTo:         emailTo,
		emailFrom:       emailFrom,
	}
}

// ReconcilePayroll loads the employee's payroll categories from the HR
// backend and assembles them into a single reconciled view.
func (service Service) ReconcilePayroll(ctx context.Context, userID int, monthlyRate float64) (*payroll.ReconciledPayroll, payroll.IdentifierCache, error) {
	return service.locator.Locate(ctx, userID, monthlyRate)
}

// SavePayroll recomputes the statutory benefit deductions and the totals,
// then writes every category back via the coordinator.
func (service Service) SavePayroll(ctx context.Context, userID int, p *payroll.ReconciledPayroll, cache payroll.IdentifierCache) (payroll.IdentifierCache, error) {
	benefits := payroll.ComputeBenefits(ctx, service.client, p.Earnings.BasicRate)
	benefits.ApplyTo(p)
	p.Totals = payroll.ComputeTotals(p)
	return service.coordinator.Persist(ctx, userID, p, cache)
}

// RunPayrollBatch func will process the uploaded payroll roster
func (service Service) RunPayrollBatch(ctx context.Context) []string {
	var errResult []string
	var successResult []string

	ctxLogger := log.WithContext(ctx)
	ctxLogger.Infof("Executing RunPayrollBatch service")

	rosterEntries, errResult := service.extractRosterEntries(ctx, errResult)
	if len(errResult) > 0 {
		ctxLogger.Infof("There were %v errors during extracting excel data", len(errResult))
	}
	ctxLogger.Info("Roster entries length: ", len(rosterEntries))

	if len(rosterEntries) == 0 {
		service.sendStatusReport(ctx, errResult, successResult)
		return errResult
	}

	ctxLogger.Info("Processing roster entries")
	for _, entry := range rosterEntries {
		result, err := service.processRosterEntry(ctx, entry)
		if err != nil {
			errStr := fmt.Errorf("Failed to process payroll for user %v. Cause: %v ", entry.UserID, err)
			ctxLogger.Infof(errStr.Error())
			errResult = append(errResult, errStr.Error())
			continue
		}
		successResult = append(successResult, result)
	}

	service.sendStatusReport(ctx, errResult, successResult)
	if len(errResult) > 0 {
		return errResult
	}
	return nil
}

func (service Service) processRosterEntry(ctx context.Context, entry model.RosterEntry) (string, error) {
	p, cache, err := service.locator.Locate(ctx, entry.UserID, entry.RatePerMonth)
	if err != nil {
		return "", err
	}

	p.Overtime = payroll.DeriveOvertimeRates(p.Earnings.BasicRate, p.Overtime)
	benefits := payroll.ComputeBenefits(ctx, service.client, p.Earnings.BasicRate)
	benefits.ApplyTo(p)
	p.Totals = payroll.ComputeTotals(p)

	if _, err := service.coordinator.Persist(ctx, entry.UserID, p, cache); err != nil {
		return "", err
	}

	return fmt.Sprintf("%v,%.2f,%.2f,%.2f",
		entry.UserID, p.Totals.GrossPay, p.Totals.TotalDeductions, p.Totals.NetSalary), nil
}

func (service Service) sendStatusReport(ctx context.Context, errResult []string, result []string) {
	resultString := strings.Join(result, "\n")
	errorsString := strings.Join(errResult, "\n")
	if errorsString == "" {
		errorsString = "No errors found during the payroll run. Please check attached report for audit trail."
	}
	go service.sesSendEmail(appcontext.Detach(ctx), resultString, errorsString)
}

func (service Service) extractRosterEntries(ctx context.Context, errResult []string) ([]model.RosterEntry, []string) {
	var rosterEntries []model.RosterEntry
	ctxLogger := log.WithContext(ctx)

	f, err := excelize.OpenFile(service.xlsFileLocation)
	if err != nil {
		errStr := fmt.Errorf("Unable to open the uploaded file. Please confirm the file is in xlsx format. ")
		ctxLogger.WithError(err).Error(errStr)
		errResult = append(errResult, errStr.Error())
		return nil, errResult
	}

	ctxLogger.Info("SheetName: ", f.GetSheetName(f.GetActiveSheetIndex()))
	rows, _ := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()), excelize.Options{RawCellValue: true})
	for index, row := range rows {
		// This is to skip the header row of the excel sheet
		if index == 0 {
			continue
		}
		if len(row) < 2 {
			errStr := fmt.Errorf("Incomplete roster row %v. Expected columns: User ID, Rate Per Month ", index+1)
			errResult = append(errResult, errStr.Error())
			continue
		}

		userID, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil || userID == 0 {
			errStr := fmt.Errorf("Invalid entry for User ID: %v ", row[0])
			if err != nil {
				ctxLogger.WithError(err).Error(errStr)
			}
			errResult = append(errResult, errStr.Error())
			continue
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			errStr := fmt.Errorf("Invalid entry for Rate Per Month: %v ", row[1])
			ctxLogger.WithError(err).Error(errStr)
			errResult = append(errResult, errStr.Error())
			continue
		}

		rosterEntries = append(rosterEntries, model.RosterEntry{
			UserID:       userID,
			RatePerMonth: rate,
		})
	}
	return rosterEntries, errResult
}

func (service Service) sesSendEmail(ctx context.Context, attachmentData string, data string) {
	contextLogger := log.WithContext(ctx)
	if service.emailClient == nil {
		contextLogger.Info("Email client not configured. Skipping status report email")
		return
	}
	contextLogger.Infof("Inside sesSendEmail func")
	attachFileName := "/tmp/report.xlsx"

	writeAttachmentDataToExcel(ctx, attachFileName, attachmentData)

	msg := gomail.NewMessage()
	msg.SetHeader("From", service.emailFrom)
	msg.SetHeader("To", service.emailTo)
	msg.SetHeader("Subject", "Report: Payroll Reconciliation Run")
	msg.SetBody("text/plain", data)
	msg.Attach(attachFileName)

	var emailRaw bytes.Buffer
	_, err := msg.WriteTo(&emailRaw)
	if err != nil {
		contextLogger.WithError(err).Error("Error when writing email data")
		return
	}

	message := ses.RawMessage{Data: emailRaw.Bytes()}
	recipients := populateEmailRecipients(service.emailTo)
	emailParams := ses.SendRawEmailInput{
		Source:     aws.String(service.emailFrom),
		RawMessage: &message,
	}
	emailParams.SetDestinations(recipients)

	_, err = service.emailClient.SendRawEmail(&emailParams)
	if err != nil {
		contextLogger.WithError(err).Error("Error when sending email")
		return
	}
	contextLogger.Infof("Finished sesSendEmail func")
}

func populateEmailRecipients(emailTo string) []*string {
	var emailRecipients []*string
	recipients := strings.Split(emailTo, ",")
	for _, recipient := range recipients {
		emailRecipients = append(emailRecipients, aws.String(recipient))
	}
	return emailRecipients
}

func writeAttachmentDataToExcel(ctx context.Context, attachFileName string, attachmentData string) {
	contextLogger := log.WithContext(ctx)
	f := excelize.NewFile()
	index := f.NewSheet("Sheet1")
	_ = f.SetColWidth("Sheet1", "A", "D", 20)
	headers := []string{"User ID", "Gross Pay", "Total Deductions", "Net Salary"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue("Sheet1", cell, header); err != nil {
			contextLogger.WithError(err).Errorf("Unable to set report header %v", header)
			return
		}
	}

	if len(attachmentData) > 0 {
		rows := strings.Split(attachmentData, "\n")
		rowStartIndex := 2
		for _, row := range rows {
			cells := strings.Split(row, ",")
			if len(cells) < len(headers) {
				continue
			}
			rowStartIndexStr := strconv.Itoa(rowStartIndex)
			for i, cell := range cells[:len(headers)] {
				ref := fmt.Sprintf("%c%v", 'A'+i, rowStartIndexStr)
				if err := f.SetCellValue("Sheet1", ref, cell); err != nil {
					contextLogger.WithError(err)
					return
				}
			}
			rowStartIndex++
		}
	}

	f.SetActiveSheet(index)
	if err := f.SaveAs(attachFileName); err != nil {
		contextLogger.WithError(err).Error("Unable to save the report attachment")
	}
}
