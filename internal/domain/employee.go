package domain

// Employee is the Settings service record used to resolve pay rates for
// shifts that carry none.
type Employee struct {
	EmployeeID     string
	FirstName      string
	LastName       string
	JobCodeID      string
	PayRate        float64 // base rate
	JobTypePayRate float64 // job-type override
	Active         bool
}

// EffectiveRate returns the job-type override when set, else the base rate.
func (e Employee) EffectiveRate() float64 {
	if e.JobTypePayRate > 0 {
		return e.JobTypePayRate
	}
	return e.PayRate
}
