package brinkclient

import (
	"context"
	"strconv"

	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/pkg/log"
	"github.com/posbridge/brink-insights-api/pkg/soapxml"
)

func (c *BrinkClient) GetShifts(ctx context.Context, creds Credentials, businessDate string) ([]domain.Shift, error) {
	envelope := buildEnvelope("GetShifts", laborNamespace,
		envelopeField{Name: "businessDate", Value: businessDate},
	)

	body, err := c.post(ctx, c.config.Brink.LaborURL, "GetShifts", getShiftsAction, creds, envelope)
	if err != nil {
		return nil, err
	}

	return ParseShifts(body)
}

// ParseShifts extracts shift records from a GetShifts response. Shifts with
// non-positive worked minutes are excluded; malformed blocks are skipped with
// a warning.
func ParseShifts(body string) ([]domain.Shift, error) {
	blocks, err := soapxml.ExtractRepeated(body, "Shift")
	if err != nil {
		return nil, err
	}

	shifts := make([]domain.Shift, 0, len(blocks))

	for _, block := range blocks {
		employeeID, _ := soapxml.ExtractScalar(block, "EmployeeId")
		if employeeID == "" {
			log.L.Warn("brink: skipping shift without employee id")
			continue
		}

		startStr, _ := soapxml.ExtractScalar(block, "StartTime")
		startTime := parseUpstreamTime(startStr)
		if startTime == nil {
			log.L.WithFields(log.Fields{
				"employee_id": employeeID,
				"start_time":  startStr,
			}).Warn("brink: skipping shift with unparsable start time")
			continue
		}

		minutesStr, _ := soapxml.ExtractScalar(block, "TotalMinutes")
		minutes, err := strconv.Atoi(minutesStr)
		if err != nil || minutes <= 0 {
			continue
		}

		businessDate, _ := soapxml.ExtractScalar(block, "BusinessDate")

		shifts = append(shifts, domain.Shift{
			EmployeeID:    employeeID,
			StartTime:     *startTime,
			MinutesWorked: minutes,
			PayRate:       parseFloatField(block, "PayRate"),
			BusinessDate:  businessDate,
		})
	}

	return shifts, nil
}
