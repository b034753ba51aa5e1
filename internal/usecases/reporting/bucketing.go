package reporting

import (
	"time"

	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/internal/usecases/busdate"
)

// guestsPerOrder is a deliberate simplification: the upstream carries no
// party-size data, so every order counts as one guest. Replace when real
// guest counts become available.
const guestsPerOrder = 1

// bucketSet is the per-request accumulator: one bucket per local hour of the
// business day.
type bucketSet [24]domain.HourBucket

func newBucketSet() *bucketSet {
	var buckets bucketSet
	for hour := range buckets {
		buckets[hour].Hour = hour
	}
	return &buckets
}

// addOrders accumulates each valid order into the bucket of its local send
// hour. The conversion goes through the full zone database so DST
// transitions land orders in the right hour.
func (b *bucketSet) addOrders(orders []domain.Order, loc *time.Location) {
	for _, order := range orders {
		if order.FirstSendTime == nil || order.Total <= 0 {
			continue
		}

		hour := order.FirstSendTime.In(loc).Hour()

		bucket := &b[hour]
		bucket.Sales += order.Total
		bucket.Orders++
		bucket.Guests += guestsPerOrder

		if bucket.Guests > 0 {
			bucket.GuestAverage = bucket.Sales / float64(bucket.Guests)
		}
	}
}

// addShifts apportions each shift's worked hours evenly across every local
// hour it touches, skipping hours that have not yet occurred. The end
// boundary is exclusive: a shift clocking out exactly on the hour never
// touches that hour. The apportioned fraction always uses the original span
// count: filtering a future hour does not redistribute its share to the
// remaining hours.
func (b *bucketSet) addShifts(shifts []domain.Shift, employees map[string]domain.Employee, loc *time.Location, nowLocalHour int) {
	nowRank := hourRank(nowLocalHour)

	for _, shift := range shifts {
		if shift.MinutesWorked <= 0 {
			continue
		}

		startHour := shift.StartTime.In(loc).Hour()
		endHour := shift.EndTime().Add(-time.Nanosecond).In(loc).Hour()

		span := spanHours(startHour, endHour)
		hoursPerBucket := shift.HoursWorked() / float64(len(span))

		// Salaried employees carry rate 0 and contribute hours but never
		// cost.
		rate := shift.PayRate
		if rate <= 0 {
			if employee, ok := employees[shift.EmployeeID]; ok {
				rate = employee.EffectiveRate()
			}
		}

		for _, hour := range span {
			if hourRank(hour) > nowRank {
				// Future-hour filter: pre-scheduled shift data must never
				// surface as actuals.
				continue
			}

			bucket := &b[hour]
			bucket.LaborHours += hoursPerBucket
			bucket.EmployeesWorking++
			if rate > 0 {
				bucket.LaborCost += hoursPerBucket * rate
			}
		}
	}
}

// clamp forces all accumulated numeric fields to be non-negative. Labor
// hours exceeding the employee count in a bucket is legitimate (overlapping
// or split shifts) and is deliberately not capped.
func (b *bucketSet) clamp() {
	for hour := range b {
		bucket := &b[hour]
		bucket.Sales = clampNonNegative(bucket.Sales)
		bucket.GuestAverage = clampNonNegative(bucket.GuestAverage)
		bucket.LaborHours = clampNonNegative(bucket.LaborHours)
		bucket.LaborCost = clampNonNegative(bucket.LaborCost)
	}
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// spanHours enumerates every hour-of-day between startHour and endHour
// inclusive, wrapping across midnight when the shift ends on the next
// calendar day.
func spanHours(startHour, endHour int) []int {
	if endHour >= startHour {
		span := make([]int, 0, endHour-startHour+1)
		for h := startHour; h <= endHour; h++ {
			span = append(span, h)
		}
		return span
	}

	span := make([]int, 0, (24-startHour)+endHour+1)
	for h := startHour; h <= 23; h++ {
		span = append(span, h)
	}
	for h := 0; h <= endHour; h++ {
		span = append(span, h)
	}
	return span
}

// hourRank orders hours by their position within the business day, so the
// post-midnight hours of a late shift sort after the evening hours. Plain
// hour comparison would treat 1 AM as earlier than 11 PM and leak tomorrow's
// early hours into today's actuals.
func hourRank(hour int) int {
	return (hour - busdate.CutoffHour + 24) % 24
}
