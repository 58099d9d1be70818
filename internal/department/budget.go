package department

import (
	departmenterrors "go-ems/internal/department/errors"
)

const (
	BudgetPeriodMonthly = "MONTHLY"
	BudgetPeriodYearly  = "YEARLY"
)

func IsValidBudgetPeriod(period string) bool {
	return period == BudgetPeriodMonthly || period == BudgetPeriodYearly
}

// BudgetGuard checks proposed salary spending against a department budget.
// Current expenses are the sum of gross salaries of the department's active
// employees; the replaced amount is the gross being displaced by the change
// (zero for a brand new salary).
type BudgetGuard struct {
	DepartmentName string
	Budget         float64
	Period         string
}

func GuardFor(d *Department) BudgetGuard {
	return BudgetGuard{
		DepartmentName: d.Name,
		Budget:         d.Budget,
		Period:         d.BudgetPeriod,
	}
}

func (g BudgetGuard) PeriodLabel() string {
	if g.Period == BudgetPeriodYearly {
		return "yearly budget"
	}
	return "monthly budget"
}

// Validate admits a change whose projected total lands exactly on the
// budget; only strictly exceeding it fails.
func (g BudgetGuard) Validate(currentExpenses, replacedGross, proposedGross float64) error {
	projected := currentExpenses - replacedGross + proposedGross
	if projected > g.Budget {
		return departmenterrors.NewBudgetExceeded(g.PeriodLabel(), g.DepartmentName)
	}
	return nil
}

// UsagePercentage reports a zero budget as fully used, regardless of
// spending.
func (g BudgetGuard) UsagePercentage(currentExpenses float64) float64 {
	if g.Budget == 0 {
		return 100
	}
	return currentExpenses / g.Budget * 100
}
