package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/posbridge/brink-insights-api/infrastructure/integrator/brink"
	"github.com/posbridge/brink-insights-api/internal/config"
	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/internal/usecases/busdate"
	"github.com/posbridge/brink-insights-api/internal/usecases/locating"
	"github.com/posbridge/brink-insights-api/pkg/log"
	"github.com/posbridge/brink-insights-api/pkg/utils"
)

// DashboardParams is one hourly dashboard request. BusinessDate is optional;
// when empty the resolver computes it from the location's timezone.
type DashboardParams struct {
	LocationToken string
	AccessToken   string
	BusinessDate  string // YYYY-MM-DD
}

type DashboardService interface {
	HourlyDashboard(ctx context.Context, params DashboardParams) (*domain.DailyReport, error)
}

type Service struct {
	cfg       *config.Config
	locations locating.Provider
	resolver  busdate.Resolver
	pos       brink.Integrator

	// fetchSlots bounds the POS fan-out across concurrent requests. It is an
	// explicit semaphore owned by the service so tests can size it.
	fetchSlots chan struct{}
}

func NewService(
	cfg *config.Config,
	locations locating.Provider,
	resolver busdate.Resolver,
	pos brink.Integrator,
) *Service {
	width := cfg.Reporting.MaxConcurrentFetches
	if width <= 0 {
		width = 3
	}

	return &Service{
		cfg:        cfg,
		locations:  locations,
		resolver:   resolver,
		pos:        pos,
		fetchSlots: make(chan struct{}, width),
	}
}

// HourlyDashboard builds the full daily report for one location: fetch the
// three POS data sets concurrently, bucket them by local hour and aggregate.
// Partial upstream failure degrades the report instead of failing the
// request; only invalid input (missing parameters, unknown location) is
// fatal.
func (s *Service) HourlyDashboard(ctx context.Context, params DashboardParams) (*domain.DailyReport, error) {
	if params.LocationToken == "" || params.AccessToken == "" {
		return nil, ErrMissingParameter
	}

	location, err := s.locations.LocationByToken(ctx, params.LocationToken)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrUnknownLocation
	}

	reportID, _ := utils.GenerateID()
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"report_id":   reportID,
		"location_id": location.LocationID,
	})

	resolution := s.resolver.Resolve(ctx, location.Timezone)

	businessDate := params.BusinessDate
	if businessDate == "" {
		businessDate = resolution.BusinessDate
	} else if _, err := utils.ParseDate(businessDate); err != nil {
		return nil, ErrInvalidBusinessDate
	}

	logger.WithFields(log.Fields{
		"business_date":  businessDate,
		"offset_minutes": resolution.OffsetMinutes,
	}).Info("reporting: generating hourly dashboard")

	orders, shifts, employees, degraded := s.fetchPOSData(ctx, location, params.AccessToken, businessDate, logger)

	buckets := newBucketSet()
	loc := s.bucketLocation(location.Timezone, resolution.OffsetMinutes)
	nowLocalHour := resolution.LocalTime.Hour()

	buckets.addOrders(orders, loc)
	buckets.addShifts(shifts, employeesByID(employees), loc, nowLocalHour)
	buckets.clamp()

	report := aggregate(buckets, location, businessDate)
	report.Degraded = degraded || resolution.Degraded
	report.TotalTips = utils.RoundWithTwoDecimalPlace(totalTips(orders))

	logger.WithFields(log.Fields{
		"total_sales":  report.TotalSales,
		"total_orders": report.TotalOrders,
		"degraded":     report.Degraded,
	}).Info("reporting: hourly dashboard generated")

	return report, nil
}

// fetchPOSData issues the three upstream calls concurrently. The calls are
// independent; a failure on one never cancels the others, it only marks the
// report degraded and leaves that data set empty.
func (s *Service) fetchPOSData(
	ctx context.Context,
	location *domain.Location,
	accessToken string,
	businessDate string,
	logger log.Logger,
) (orders []domain.Order, shifts []domain.Shift, employees []domain.Employee, degraded bool) {
	// The SOAP services accept either date form; the long form is
	// unambiguous.
	wireDate := businessDate + "T00:00:00"

	var (
		wg                               sync.WaitGroup
		ordersErr, shiftsErr, employeesErr error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		s.fetchSlots <- struct{}{}
		defer func() { <-s.fetchSlots }()

		orders, ordersErr = s.pos.Orders(ctx, location, accessToken, wireDate)
	}()

	go func() {
		defer wg.Done()
		s.fetchSlots <- struct{}{}
		defer func() { <-s.fetchSlots }()

		shifts, shiftsErr = s.pos.Shifts(ctx, location, accessToken, wireDate)
	}()

	go func() {
		defer wg.Done()
		s.fetchSlots <- struct{}{}
		defer func() { <-s.fetchSlots }()

		employees, employeesErr = s.pos.Employees(ctx, location, accessToken)
	}()

	wg.Wait()

	for _, err := range []error{ordersErr, shiftsErr, employeesErr} {
		if err != nil {
			degraded = true
			logger.WithError(err).Warn("reporting: upstream source failed, report degraded")
		}
	}

	return orders, shifts, employees, degraded
}

// bucketLocation loads the zone used for local-hour conversion. When the
// zone database misses the name, a fixed zone built from the resolved offset
// keeps the report usable.
func (s *Service) bucketLocation(timezone string, offsetMinutes int) *time.Location {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.L.WithError(err).WithField("timezone", timezone).Warn("reporting: unknown zone, using fixed offset")
		return time.FixedZone(timezone, offsetMinutes*60)
	}
	return loc
}

func employeesByID(employees []domain.Employee) map[string]domain.Employee {
	byID := make(map[string]domain.Employee, len(employees))
	for _, employee := range employees {
		byID[employee.EmployeeID] = employee
	}
	return byID
}

func totalTips(orders []domain.Order) float64 {
	var tips float64
	for _, order := range orders {
		tips += order.TotalTips()
	}
	return tips
}
