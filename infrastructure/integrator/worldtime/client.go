// Package worldtime queries an external timezone service for a zone's
// current local time and UTC offset. It is the primary source for the
// business-date resolver; the resolver falls back to the runtime zone
// database when this service is unreachable.
package worldtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/posbridge/brink-insights-api/internal/config"
)

// TimezoneNow is the service's answer for one IANA zone.
type TimezoneNow struct {
	LocalDateTime    time.Time
	RawOffsetSeconds int
	DSTOffsetSeconds int
	DSTActive        bool
}

type Client interface {
	GetTimezoneNow(ctx context.Context, timezone string) (*TimezoneNow, error)
}

type WorldTimeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.TimeService.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &WorldTimeClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// timezoneResponse mirrors the wire format of the timezone service.
type timezoneResponse struct {
	Datetime  string `json:"datetime"`
	RawOffset int    `json:"raw_offset"`
	DSTOffset int    `json:"dst_offset"`
	DST       bool   `json:"dst"`
}

func (c *WorldTimeClient) GetTimezoneNow(ctx context.Context, timezone string) (*TimezoneNow, error) {
	endpoint, err := url.Parse(c.config.TimeService.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing time service base URL")
	}
	endpoint.Path = path.Join(endpoint.Path, "timezone", timezone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building time service request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling time service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("time service returned status %s for zone %s", resp.Status, timezone)
	}

	var payload timezoneResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decoding time service response")
	}

	localTime, err := time.Parse(time.RFC3339Nano, payload.Datetime)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing time service datetime %q", payload.Datetime)
	}

	return &TimezoneNow{
		LocalDateTime:    localTime,
		RawOffsetSeconds: payload.RawOffset,
		DSTOffsetSeconds: payload.DSTOffset,
		DSTActive:        payload.DST,
	}, nil
}
