package salaryerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary not found",
		http.StatusNotFound,
	)
	ErrDuplicateSalary = apperror.New(
		apperror.CodeConflict,
		"employee already has a salary record",
		http.StatusConflict,
	)
	ErrEmployeeWithoutDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"employee is not assigned to a department",
		http.StatusBadRequest,
	)
	ErrInvalidDeductionKind = apperror.New(
		apperror.CodeInvalidInput,
		"deduction kind must be TAX, INSURANCE or CUSTOM",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryMonth = apperror.New(
		apperror.CodeInvalidInput,
		"salary_month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrNegativeGross = apperror.New(
		apperror.CodeInvalidInput,
		"gross must not be negative",
		http.StatusBadRequest,
	)
)
