// Package ukg issues OAuth access tokens against a tenant's configured auth
// endpoint on the workforce platform.
package ukg

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/posbridge/brink-insights-api/internal/config"
	"github.com/posbridge/brink-insights-api/internal/domain"
)

// TokenResponse is the OAuth token endpoint reply.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type Client interface {
	IssueToken(ctx context.Context, tenant *domain.Tenant) (*TokenResponse, error)
}

type UKGClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.TenantAuth.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &UKGClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// IssueToken performs a client-credentials grant against the tenant's auth
// endpoint.
func (c *UKGClient) IssueToken(ctx context.Context, tenant *domain.Tenant) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", tenant.ClientID)
	form.Set("client_secret", tenant.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tenant.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "building token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "calling token endpoint for tenant %s", tenant.TenantID)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errors.Errorf("token endpoint returned status %s for tenant %s: %s", resp.Status, tenant.TenantID, string(body))
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, errors.Wrap(err, "decoding token response")
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.Errorf("token endpoint returned an empty access token for tenant %s", tenant.TenantID)
	}

	return &tokenResp, nil
}
