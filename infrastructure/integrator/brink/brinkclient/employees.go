package brinkclient

import (
	"context"
	"strings"

	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/pkg/log"
	"github.com/posbridge/brink-insights-api/pkg/soapxml"
)

func (c *BrinkClient) GetEmployees(ctx context.Context, creds Credentials) ([]domain.Employee, error) {
	envelope := buildEnvelope("GetEmployees", settingsNamespace)

	body, err := c.post(ctx, c.config.Brink.SettingsURL, "GetEmployees", getEmployeesAction, creds, envelope)
	if err != nil {
		return nil, err
	}

	return ParseEmployees(body)
}

// ParseEmployees extracts employee records from a GetEmployees response,
// keeping only active employees. The job-type pay-rate override comes from
// the employee's first Job assignment when present.
func ParseEmployees(body string) ([]domain.Employee, error) {
	blocks, err := soapxml.ExtractRepeated(body, "Employee")
	if err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, 0, len(blocks))

	for _, block := range blocks {
		// The employee's own Id element precedes any nested Job blocks.
		employeeID, _ := soapxml.ExtractScalar(block, "Id")
		if employeeID == "" {
			log.L.Warn("brink: skipping employee without id")
			continue
		}

		activeStr, _ := soapxml.ExtractScalar(block, "Active")
		if !parseBoolField(activeStr) {
			continue
		}

		firstName, _ := soapxml.ExtractScalar(block, "FirstName")
		lastName, _ := soapxml.ExtractScalar(block, "LastName")

		employee := domain.Employee{
			EmployeeID: employeeID,
			FirstName:  firstName,
			LastName:   lastName,
			PayRate:    parseFloatField(block, "PayRate"),
			Active:     true,
		}

		jobs, _ := soapxml.ExtractRepeated(block, "Job")
		if len(jobs) > 0 {
			jobCodeID, _ := soapxml.ExtractScalar(jobs[0], "Id")
			employee.JobCodeID = jobCodeID
			employee.JobTypePayRate = parseFloatField(jobs[0], "PayRate")
		}

		employees = append(employees, employee)
	}

	return employees, nil
}

func parseBoolField(raw string) bool {
	return strings.EqualFold(raw, "true") || raw == "1"
}
