package salary

import (
	"errors"
	"strings"

	salaryerrors "go-ems/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salaries_employee" {
			return salaryerrors.ErrDuplicateSalary
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salaries_employee") {
		return salaryerrors.ErrDuplicateSalary
	}

	return err
}
