package middlewares

import (
	"net/http"

	"github.com/sweldohq/payroll-reconciler/internal/util"
)

//RuntimeHealthCheck reports service liveness
func RuntimeHealthCheck() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		util.WithBodyAndStatus("All OK", http.StatusOK, w)
	}
}
