package brinkclient

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/posbridge/brink-insights-api/internal/config"
	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/pkg/soapxml"
)

// Credentials carries the per-request POS tokens. AccessToken identifies the
// API consumer, LocationToken identifies the store.
type Credentials struct {
	AccessToken   string
	LocationToken string
}

// Client talks to the three PAR Brink SOAP services.
type Client interface {
	GetOrders(ctx context.Context, creds Credentials, businessDate string) ([]domain.Order, error)
	GetShifts(ctx context.Context, creds Credentials, businessDate string) ([]domain.Shift, error)
	GetEmployees(ctx context.Context, creds Credentials) ([]domain.Employee, error)
}

type BrinkClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Brink.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &BrinkClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// post issues one SOAP call and returns the raw response body. A non-2xx
// status or a non-zero ResultCode in the body becomes a typed
// domain.UpstreamError so callers can tell protocol failures from network
// failures.
func (c *BrinkClient) post(ctx context.Context, url, operation, soapAction string, creds Credentials, envelope string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(envelope))
	if err != nil {
		return "", errors.Wrapf(err, "building %s request", operation)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", soapAction)
	req.Header.Set("AccessToken", creds.AccessToken)
	req.Header.Set("LocationToken", creds.LocationToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "calling %s", operation)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s response", operation)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.UpstreamError{
			Operation:  operation,
			ResultCode: resp.StatusCode,
			Message:    "unexpected HTTP status " + resp.Status,
		}
	}

	text := string(body)

	if err := checkResultCode(text, operation); err != nil {
		return "", err
	}

	return text, nil
}

// checkResultCode inspects the ResultCode element Brink embeds in every
// response body. Zero (or absent) means success.
func checkResultCode(body, operation string) error {
	codeStr, err := soapxml.ExtractScalar(body, "ResultCode")
	if err != nil {
		return errors.Wrapf(err, "inspecting %s response", operation)
	}
	if codeStr == "" {
		return nil
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil || code == 0 {
		return nil
	}

	message, _ := soapxml.ExtractScalar(body, "Message")

	return &domain.UpstreamError{
		Operation:  operation,
		ResultCode: code,
		Message:    message,
	}
}
