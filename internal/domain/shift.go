package domain

import "time"

// Shift is one labor shift parsed from the Labor service response. Shifts
// with non-positive worked minutes are excluded at parse time.
type Shift struct {
	EmployeeID    string
	StartTime     time.Time // UTC
	MinutesWorked int
	PayRate       float64 // rate embedded in the shift record, 0 when absent
	BusinessDate  string
}

// HoursWorked converts the worked minutes into fractional hours.
func (s Shift) HoursWorked() float64 {
	return float64(s.MinutesWorked) / 60.0
}

// EndTime is the shift start plus the worked duration.
func (s Shift) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.MinutesWorked) * time.Minute)
}
