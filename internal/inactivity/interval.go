package inactivity

import "time"

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsActiveOn reports whether the interval covers the given day. Both
// boundaries are inclusive; an open-ended interval covers every day from
// its start onward.
func (i *EmployeeInactivity) IsActiveOn(day time.Time) bool {
	d := dateOnly(day)
	if d.Before(dateOnly(i.StartDate)) {
		return false
	}
	if i.EndDate == nil {
		return true
	}
	return !d.After(dateOnly(*i.EndDate))
}

// IsCurrent reports whether the interval covers today.
func (i *EmployeeInactivity) IsCurrent() bool {
	return i.IsActiveOn(time.Now().UTC())
}

// Overlaps treats touching boundaries as overlapping and a nil end as
// extending indefinitely.
func (i *EmployeeInactivity) Overlaps(start time.Time, end *time.Time) bool {
	s := dateOnly(start)

	if i.EndDate != nil && dateOnly(*i.EndDate).Before(s) {
		return false
	}
	if end != nil && dateOnly(*end).Before(dateOnly(i.StartDate)) {
		return false
	}
	return true
}

// DurationInDays counts both boundary days, so a single-day interval is
// one day long. An open-ended interval is measured up to the given day.
// A negative span collapses to zero.
func (i *EmployeeInactivity) DurationInDays(today time.Time) int {
	end := dateOnly(today)
	if i.EndDate != nil {
		end = dateOnly(*i.EndDate)
	}

	days := int(end.Sub(dateOnly(i.StartDate)).Hours()/24) + 1
	if days < 0 {
		days = 0
	}
	return days
}
