package busdate

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/posbridge/brink-insights-api/infrastructure/integrator/worldtime"
	"github.com/posbridge/brink-insights-api/infrastructure/integrator/worldtime/mocks"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func TestResolveFromTimeService(t *testing.T) {
	ctrl := gomock.NewController(t)
	timeClient := mocks.NewMockClient(ctrl)

	localTime := time.Date(2026, 6, 14, 15, 30, 0, 0, time.UTC)
	timeClient.EXPECT().
		GetTimezoneNow(gomock.Any(), "America/Denver").
		Return(&worldtime.TimezoneNow{
			LocalDateTime:    localTime,
			RawOffsetSeconds: -25200,
			DSTOffsetSeconds: 3600,
			DSTActive:        true,
		}, nil)

	resolution := NewService(timeClient).Resolve(context.Background(), "America/Denver")

	assert.Equal(t, "2026-06-14", resolution.BusinessDate)
	assert.Equal(t, -360, resolution.OffsetMinutes)
	assert.Equal(t, localTime, resolution.LocalTime)
	assert.False(t, resolution.Degraded)
}

func TestResolveIgnoresInactiveDSTOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	timeClient := mocks.NewMockClient(ctrl)

	timeClient.EXPECT().
		GetTimezoneNow(gomock.Any(), "America/Denver").
		Return(&worldtime.TimezoneNow{
			LocalDateTime:    time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
			RawOffsetSeconds: -25200,
			DSTOffsetSeconds: 3600,
			DSTActive:        false,
		}, nil)

	resolution := NewService(timeClient).Resolve(context.Background(), "America/Denver")

	assert.Equal(t, -420, resolution.OffsetMinutes)
}

func TestBusinessDateCutoffSweep(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		t.Run(fmt.Sprintf("hour_%02d", hour), func(t *testing.T) {
			localTime := time.Date(2026, 8, 15, hour, 30, 0, 0, time.UTC)

			want := "2026-08-15"
			if hour < CutoffHour {
				want = "2026-08-14"
			}

			assert.Equal(t, want, businessDate(localTime))
		})
	}
}

func TestBusinessDateCutoffAcrossMonthBoundary(t *testing.T) {
	localTime := time.Date(2026, 8, 1, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-07-31", businessDate(localTime))
}

func TestResolveFallsBackToRuntimeZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	timeClient := mocks.NewMockClient(ctrl)

	timeClient.EXPECT().
		GetTimezoneNow(gomock.Any(), "UTC").
		Return(nil, errors.New("connection refused"))

	fixedNow := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	svc := NewService(timeClient).WithNow(func() time.Time { return fixedNow })

	resolution := svc.Resolve(context.Background(), "UTC")

	assert.Equal(t, "2026-08-15", resolution.BusinessDate)
	assert.Equal(t, 0, resolution.OffsetMinutes)
	assert.Equal(t, 12, resolution.LocalTime.Hour())
	assert.False(t, resolution.Degraded)
}

func TestResolveDegradesWhenAllPathsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	timeClient := mocks.NewMockClient(ctrl)

	timeClient.EXPECT().
		GetTimezoneNow(gomock.Any(), "Not/AZone").
		Return(nil, errors.New("connection refused"))

	fixedNow := time.Date(2026, 8, 15, 2, 0, 0, 0, time.UTC)
	svc := NewService(timeClient).WithNow(func() time.Time { return fixedNow })

	resolution := svc.Resolve(context.Background(), "Not/AZone")

	assert.True(t, resolution.Degraded)
	assert.Equal(t, 0, resolution.OffsetMinutes)
	assert.Equal(t, "2026-08-14", resolution.BusinessDate)
}
