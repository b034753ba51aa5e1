package brink

import (
	"context"
	"errors"

	"github.com/posbridge/brink-insights-api/infrastructure/integrator/brink/brinkclient"
	"github.com/posbridge/brink-insights-api/internal/config"
	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

// Integrator is the POS data source used by report generation. Network
// failures degrade to empty result sets so a report can still be produced
// from the remaining sources; protocol failures surface as typed
// domain.UpstreamError values.
type Integrator interface {
	Orders(ctx context.Context, location *domain.Location, accessToken, businessDate string) ([]domain.Order, error)
	Shifts(ctx context.Context, location *domain.Location, accessToken, businessDate string) ([]domain.Shift, error)
	Employees(ctx context.Context, location *domain.Location, accessToken string) ([]domain.Employee, error)
}

type Service struct {
	cfg    *config.Config
	Client brinkclient.Client
}

func New(cfg *config.Config, client brinkclient.Client) Integrator {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Service) Orders(ctx context.Context, location *domain.Location, accessToken, businessDate string) ([]domain.Order, error) {
	creds := credentials(location, accessToken)

	orders, err := s.Client.GetOrders(ctx, creds, businessDate)
	if err != nil {
		return []domain.Order{}, s.degrade(err, "GetOrders", location)
	}

	return orders, nil
}

func (s *Service) Shifts(ctx context.Context, location *domain.Location, accessToken, businessDate string) ([]domain.Shift, error) {
	creds := credentials(location, accessToken)

	shifts, err := s.Client.GetShifts(ctx, creds, businessDate)
	if err != nil {
		return []domain.Shift{}, s.degrade(err, "GetShifts", location)
	}

	return shifts, nil
}

func (s *Service) Employees(ctx context.Context, location *domain.Location, accessToken string) ([]domain.Employee, error) {
	creds := credentials(location, accessToken)

	employees, err := s.Client.GetEmployees(ctx, creds)
	if err != nil {
		return []domain.Employee{}, s.degrade(err, "GetEmployees", location)
	}

	return employees, nil
}

func credentials(location *domain.Location, accessToken string) brinkclient.Credentials {
	return brinkclient.Credentials{
		AccessToken:   accessToken,
		LocationToken: location.Token,
	}
}

// degrade decides the caller-visible error: protocol errors keep their typed
// form, anything else (timeouts, DNS, connection resets) is logged and
// swallowed so the caller proceeds with the empty result set.
func (s *Service) degrade(err error, operation string, location *domain.Location) error {
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.L.WithFields(log.Fields{
			"operation":   operation,
			"location_id": location.LocationID,
			"result_code": upstreamErr.ResultCode,
			"message":     upstreamErr.Message,
		}).Warn("brink: upstream protocol error")
		return upstreamErr
	}

	log.L.WithError(err).WithFields(log.Fields{
		"operation":   operation,
		"location_id": location.LocationID,
	}).Warn("brink: upstream unavailable, continuing with empty result set")

	return nil
}
