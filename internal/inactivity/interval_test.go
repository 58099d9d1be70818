package inactivity_test

import (
	"testing"
	"time"

	"go-ems/internal/inactivity"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func dayPtr(value string) *time.Time {
	d := day(value)
	return &d
}

func TestEmployeeInactivity_DurationInDays(t *testing.T) {
	today := day("2025-02-01")

	t.Run("single day interval counts one day", func(t *testing.T) {
		in := inactivity.EmployeeInactivity{
			StartDate: day("2025-01-01"),
			EndDate:   dayPtr("2025-01-01"),
		}
		assert.Equal(t, 1, in.DurationInDays(today))
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		in := inactivity.EmployeeInactivity{
			StartDate: day("2025-01-01"),
			EndDate:   dayPtr("2025-01-10"),
		}
		assert.Equal(t, 10, in.DurationInDays(today))
	})

	t.Run("open interval runs up to today", func(t *testing.T) {
		in := inactivity.EmployeeInactivity{StartDate: day("2025-01-30")}
		assert.Equal(t, 3, in.DurationInDays(today))
	})

	t.Run("open future interval collapses to zero", func(t *testing.T) {
		in := inactivity.EmployeeInactivity{StartDate: day("2025-02-10")}
		assert.Equal(t, 0, in.DurationInDays(today))
	})

	t.Run("inverted range collapses to zero", func(t *testing.T) {
		in := inactivity.EmployeeInactivity{
			StartDate: day("2025-01-10"),
			EndDate:   dayPtr("2025-01-01"),
		}
		assert.Equal(t, 0, in.DurationInDays(today))
	})
}

func TestEmployeeInactivity_IsActiveOn(t *testing.T) {
	in := inactivity.EmployeeInactivity{
		StartDate: day("2025-03-10"),
		EndDate:   dayPtr("2025-03-20"),
	}

	assert.False(t, in.IsActiveOn(day("2025-03-09")))
	assert.True(t, in.IsActiveOn(day("2025-03-10")))
	assert.True(t, in.IsActiveOn(day("2025-03-15")))
	assert.True(t, in.IsActiveOn(day("2025-03-20")))
	assert.False(t, in.IsActiveOn(day("2025-03-21")))

	open := inactivity.EmployeeInactivity{StartDate: day("2025-03-10")}
	assert.True(t, open.IsActiveOn(day("2099-12-31")))
	assert.False(t, open.IsActiveOn(day("2025-03-09")))
}

func TestEmployeeInactivity_Overlaps(t *testing.T) {
	in := inactivity.EmployeeInactivity{
		StartDate: day("2025-03-10"),
		EndDate:   dayPtr("2025-03-20"),
	}

	t.Run("touching boundary overlaps", func(t *testing.T) {
		assert.True(t, in.Overlaps(day("2025-03-20"), dayPtr("2025-03-25")))
		assert.True(t, in.Overlaps(day("2025-03-01"), dayPtr("2025-03-10")))
	})

	t.Run("disjoint ranges do not overlap", func(t *testing.T) {
		assert.False(t, in.Overlaps(day("2025-03-21"), dayPtr("2025-03-25")))
		assert.False(t, in.Overlaps(day("2025-03-01"), dayPtr("2025-03-09")))
	})

	t.Run("open ends extend indefinitely", func(t *testing.T) {
		open := inactivity.EmployeeInactivity{StartDate: day("2025-03-10")}
		assert.True(t, open.Overlaps(day("2099-01-01"), nil))
		assert.True(t, in.Overlaps(day("2025-01-01"), nil))
		assert.False(t, open.Overlaps(day("2025-01-01"), dayPtr("2025-03-09")))
	})
}
