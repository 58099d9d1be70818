package departmenterrors

import (
	"fmt"
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrInvalidBudgetPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"budget_period must be MONTHLY or YEARLY",
		http.StatusBadRequest,
	)
	ErrNegativeBudget = apperror.New(
		apperror.CodeInvalidInput,
		"budget must not be negative",
		http.StatusBadRequest,
	)
	ErrDepartmentHasEmployees = apperror.New(
		apperror.CodeInvalidState,
		"department still has employees assigned",
		http.StatusBadRequest,
	)
)

// NewBudgetExceeded carries the period label and department name so the
// client message says which budget was hit.
func NewBudgetExceeded(periodLabel, departmentName string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("adding this salary would exceed the %s of department %s", periodLabel, departmentName),
		http.StatusBadRequest,
	)
}
