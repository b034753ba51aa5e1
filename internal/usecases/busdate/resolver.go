// Package busdate resolves a location's business date and UTC offset from
// its IANA timezone.
package busdate

import (
	"context"
	"math"
	"time"

	"github.com/posbridge/brink-insights-api/infrastructure/integrator/worldtime"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

// CutoffHour is the business-day boundary: local times before this hour
// belong to the previous business date. Fixed at 4 AM system-wide; this is a
// product decision, not a per-location setting.
const CutoffHour = 4

// Resolution is the outcome of resolving a timezone at a point in time.
// OffsetMinutes is signed: negative west of UTC (Denver during DST is -360).
type Resolution struct {
	BusinessDate  string // YYYY-MM-DD
	OffsetMinutes int
	LocalTime     time.Time
	Degraded      bool // both resolution paths failed, values are UTC-based
}

type Resolver interface {
	Resolve(ctx context.Context, timezone string) Resolution
}

type Service struct {
	timeClient worldtime.Client
	now        func() time.Time
}

func NewService(timeClient worldtime.Client) *Service {
	return &Service{
		timeClient: timeClient,
		now:        time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Resolve computes the business date, signed UTC offset in minutes, and
// current local time for the given zone. It never fails: when the external
// time service is unreachable it falls back to the runtime zone database,
// and when that also fails it degrades to the UTC date with offset 0.
func (s *Service) Resolve(ctx context.Context, timezone string) Resolution {
	if resolution, ok := s.resolveFromService(ctx, timezone); ok {
		return resolution
	}

	if resolution, ok := s.resolveFromRuntime(timezone); ok {
		return resolution
	}

	utcNow := s.now().UTC()
	log.L.WithField("timezone", timezone).Error("busdate: all resolution paths failed, degrading to UTC")

	return Resolution{
		BusinessDate:  businessDate(utcNow),
		OffsetMinutes: 0,
		LocalTime:     utcNow,
		Degraded:      true,
	}
}

func (s *Service) resolveFromService(ctx context.Context, timezone string) (Resolution, bool) {
	tzNow, err := s.timeClient.GetTimezoneNow(ctx, timezone)
	if err != nil {
		log.L.WithError(err).WithField("timezone", timezone).Warn("busdate: time service unavailable, using runtime zone database")
		return Resolution{}, false
	}

	offsetSeconds := tzNow.RawOffsetSeconds
	if tzNow.DSTActive {
		offsetSeconds += tzNow.DSTOffsetSeconds
	}

	return Resolution{
		BusinessDate:  businessDate(tzNow.LocalDateTime),
		OffsetMinutes: int(math.Round(float64(offsetSeconds) / 60.0)),
		LocalTime:     tzNow.LocalDateTime,
	}, true
}

func (s *Service) resolveFromRuntime(timezone string) (Resolution, bool) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.L.WithError(err).WithField("timezone", timezone).Warn("busdate: unknown zone in runtime database")
		return Resolution{}, false
	}

	localNow := s.now().In(loc)
	_, offsetSeconds := localNow.Zone()

	return Resolution{
		BusinessDate:  businessDate(localNow),
		OffsetMinutes: offsetSeconds / 60,
		LocalTime:     localNow,
	}, true
}

// businessDate applies the early-morning cutoff rule: before CutoffHour the
// operating day is still the previous calendar date.
func businessDate(localTime time.Time) string {
	if localTime.Hour() < CutoffHour {
		localTime = localTime.AddDate(0, 0, -1)
	}

	return localTime.Format("2006-01-02")
}
