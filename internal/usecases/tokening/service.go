// Package tokening proxies OAuth token issuance for tenants, caching issued
// tokens until shortly before they expire.
package tokening

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/posbridge/brink-insights-api/infrastructure/integrator/ukg"
	"github.com/posbridge/brink-insights-api/infrastructure/repository"
	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

// ErrUnknownTenant means the tenant ID maps to no configured tenant.
var ErrUnknownTenant = errors.New("unknown tenant")

// refreshMargin is how long before expiry a cached token stops being served.
const refreshMargin = 60 * time.Second

// defaultTokenTTL is assumed when the upstream reports no expiry at all.
const defaultTokenTTL = time.Hour

type TokenProxy interface {
	AccessToken(ctx context.Context, tenantID string) (*domain.TenantToken, error)
}

type Service struct {
	tenantRepo repository.TenantRepository
	authClient ukg.Client
	now        func() time.Time

	mu    sync.Mutex
	cache map[string]*domain.TenantToken
}

func NewService(tenantRepo repository.TenantRepository, authClient ukg.Client) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		authClient: authClient,
		now:        time.Now,
		cache:      make(map[string]*domain.TenantToken),
	}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// AccessToken returns a valid token for the tenant, issuing a new one when
// the cached token is absent or within the refresh margin of its expiry.
func (s *Service) AccessToken(ctx context.Context, tenantID string) (*domain.TenantToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[tenantID]; ok {
		if s.now().Before(cached.ExpiresAt.Add(-refreshMargin)) {
			return cached, nil
		}
	}

	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "loading tenant configuration")
	}
	if tenant == nil || !tenant.Active {
		return nil, ErrUnknownTenant
	}

	tokenResp, err := s.authClient.IssueToken(ctx, tenant)
	if err != nil {
		return nil, errors.Wrapf(err, "issuing token for tenant %s", tenantID)
	}

	token := &domain.TenantToken{
		TenantID:    tenantID,
		AccessToken: tokenResp.AccessToken,
		TokenType:   tokenResp.TokenType,
		ExpiresAt:   s.expiresAt(tokenResp),
	}

	s.cache[tenantID] = token

	log.L.WithFields(log.Fields{
		"tenant_id":  tenantID,
		"expires_at": token.ExpiresAt.Format(time.RFC3339),
	}).Info("tokening: issued new tenant token")

	return token, nil
}

// expiresAt derives the token expiry: expires_in when reported, else the exp
// claim of the (unverified) JWT, else a one-hour default.
func (s *Service) expiresAt(tokenResp *ukg.TokenResponse) time.Time {
	if tokenResp.ExpiresIn > 0 {
		return s.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	}

	if exp, ok := jwtExpiry(tokenResp.AccessToken); ok {
		return exp
	}

	return s.now().Add(defaultTokenTTL)
}

// jwtExpiry reads the exp claim without verifying the signature. The proxy
// does not trust the token, it only needs to know when to stop caching it.
func jwtExpiry(accessToken string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
