package department_test

import (
	"testing"

	"go-ems/internal/department"
	departmenterrors "go-ems/internal/department/errors"

	"github.com/stretchr/testify/assert"
)

func TestBudgetGuard_Validate(t *testing.T) {
	guard := department.BudgetGuard{
		DepartmentName: "Engineering",
		Budget:         10000,
		Period:         department.BudgetPeriodMonthly,
	}

	t.Run("within budget", func(t *testing.T) {
		err := guard.Validate(9000, 0, 500)
		assert.NoError(t, err)
	})

	t.Run("exactly on budget is accepted", func(t *testing.T) {
		err := guard.Validate(9000, 0, 1000)
		assert.NoError(t, err)
	})

	t.Run("exceeding budget fails", func(t *testing.T) {
		err := guard.Validate(9000, 0, 1500)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "monthly budget")
		assert.Contains(t, err.Error(), "Engineering")
	})

	t.Run("replaced gross offsets the projection", func(t *testing.T) {
		// 9000 current includes a 2000 salary being replaced by 2500.
		err := guard.Validate(9000, 2000, 2500)
		assert.NoError(t, err)
	})

	t.Run("yearly period labels the message", func(t *testing.T) {
		yearly := department.BudgetGuard{
			DepartmentName: "Sales",
			Budget:         1000,
			Period:         department.BudgetPeriodYearly,
		}
		err := yearly.Validate(1000, 0, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "yearly budget")
	})

	t.Run("budget exceeded maps to invalid state", func(t *testing.T) {
		err := guard.Validate(10001, 0, 0)
		assert.Error(t, err)
		got := departmenterrors.NewBudgetExceeded("monthly budget", "Engineering")
		assert.Equal(t, got.Code, "INVALID_STATE")
	})
}

func TestBudgetGuard_UsagePercentage(t *testing.T) {
	t.Run("normal usage", func(t *testing.T) {
		guard := department.BudgetGuard{Budget: 10000}
		assert.InDelta(t, 75.0, guard.UsagePercentage(7500), 0.001)
	})

	t.Run("zero budget reports full usage", func(t *testing.T) {
		guard := department.BudgetGuard{Budget: 0}
		assert.Equal(t, 100.0, guard.UsagePercentage(0))
		assert.Equal(t, 100.0, guard.UsagePercentage(5000))
	})

	t.Run("overrun exceeds one hundred", func(t *testing.T) {
		guard := department.BudgetGuard{Budget: 1000}
		assert.InDelta(t, 150.0, guard.UsagePercentage(1500), 0.001)
	})
}
