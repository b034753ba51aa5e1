package domain

import "time"

// TenantToken is an access token issued for one tenant through the OAuth
// proxy, cached until shortly before expiry.
type TenantToken struct {
	TenantID    string    `json:"tenant_id"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Tenant is the auth configuration of one tenant on the workforce platform.
type Tenant struct {
	TenantID     string
	AuthURL      string
	ClientID     string
	ClientSecret string
	Active       bool
}
