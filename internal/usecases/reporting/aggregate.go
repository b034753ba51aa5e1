package reporting

import (
	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/pkg/utils"
)

// aggregate rolls the 24 hour buckets up into the daily report: per-hour
// rows plus whole-day totals and KPIs. All averages are zero when their
// denominator is zero; no division ever yields NaN or Inf.
func aggregate(buckets *bucketSet, location *domain.Location, businessDateStr string) *domain.DailyReport {
	report := &domain.DailyReport{
		Location:     location.Name,
		LocationID:   location.LocationID,
		BusinessDate: businessDateStr,
		HourlySales:  make([]domain.HourlySalesRow, 0, len(buckets)),
		HourlyLabor:  make([]domain.HourlyLaborRow, 0, len(buckets)),
	}

	for _, bucket := range buckets {
		guestAverage := 0.0
		if bucket.Guests > 0 {
			guestAverage = bucket.Sales / float64(bucket.Guests)
		}

		report.HourlySales = append(report.HourlySales, domain.HourlySalesRow{
			Hour:         bucket.Hour,
			Sales:        utils.RoundWithTwoDecimalPlace(bucket.Sales),
			Guests:       bucket.Guests,
			Orders:       bucket.Orders,
			GuestAverage: utils.RoundWithTwoDecimalPlace(guestAverage),
		})

		report.HourlyLabor = append(report.HourlyLabor, domain.HourlyLaborRow{
			Hour:             bucket.Hour,
			LaborHours:       utils.RoundWithTwoDecimalPlace(bucket.LaborHours),
			LaborCost:        utils.RoundWithTwoDecimalPlace(bucket.LaborCost),
			EmployeesWorking: bucket.EmployeesWorking,
		})

		report.TotalSales += bucket.Sales
		report.TotalGuests += bucket.Guests
		report.TotalOrders += bucket.Orders
		report.TotalLaborHours += bucket.LaborHours
		report.TotalLaborCost += bucket.LaborCost
	}

	report.LaborPercentage = laborPercentage(report.TotalLaborHours, report.TotalLaborCost, report.TotalSales)

	if report.TotalOrders > 0 {
		report.OrderAverage = utils.RoundWithTwoDecimalPlace(report.TotalSales / float64(report.TotalOrders))
	}
	if report.TotalGuests > 0 {
		report.OverallGuestAverage = utils.RoundWithTwoDecimalPlace(report.TotalSales / float64(report.TotalGuests))
	}

	report.TotalSales = utils.RoundWithTwoDecimalPlace(report.TotalSales)
	report.TotalLaborHours = utils.RoundWithTwoDecimalPlace(report.TotalLaborHours)
	report.TotalLaborCost = utils.RoundWithTwoDecimalPlace(report.TotalLaborCost)

	return report
}

// laborPercentage applies the three-case rule: no labor at all is 0%, labor
// with zero revenue is 100%, otherwise cost over sales.
func laborPercentage(laborHours, laborCost, sales float64) float64 {
	switch {
	case laborHours == 0:
		return 0
	case sales == 0:
		return 100
	default:
		return utils.RoundWithTwoDecimalPlace((laborCost / sales) * 100)
	}
}
