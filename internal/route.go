package internal

import (
	"net/http"

	"github.com/sweldohq/payroll-reconciler/internal/config"
)

func Routes(payrollHandler PayrollAPIHandler) []config.Route {
	return []config.Route{
		{
			Path:    "/payroll/{userID}",
			Method:  http.MethodGet,
			Handler: ReconcileHandler(payrollHandler),
		},
		{
			Path:    "/payroll/{userID}",
			Method:  http.MethodPost,
			Handler: SaveHandler(payrollHandler),
		},
		{
			Path:    "/runPayroll",
			Method:  http.MethodPost,
			Handler: BatchHandler(payrollHandler),
		},
	}
}
