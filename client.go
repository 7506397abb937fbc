package cbcloud

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/cbcgo/cbcloud/internal/api"
	"github.com/cbcgo/cbcloud/internal/auth"
	"github.com/cbcgo/cbcloud/internal/config"
)

// Default configuration values.
const defaultTimeout = 30 * time.Second

// Client is the Carbon Black Cloud API client.
type Client struct {
	// Alerts provides access to the v7 alert search API.
	Alerts AlertService

	// Devices provides access to device search.
	Devices DeviceService

	// Observations provides access to investigate search jobs.
	Observations ObservationService

	transport *api.Transport
}

// NewClient creates a new Carbon Black Cloud client with the given options.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL == "" {
		return nil, ErrNoBaseURL
	}

	if cfg.token == "" {
		return nil, ErrNoCredentials
	}

	if cfg.orgKey == "" {
		return nil, ErrNoOrgKey
	}

	creds := &auth.Credentials{
		Token:  cfg.token,
		OrgKey: cfg.orgKey,
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	transport, err := api.NewTransport(cfg.baseURL, creds, httpClient)
	if err != nil {
		return nil, err
	}

	if cfg.userAgent != "" {
		transport.UserAgent = cfg.userAgent
	}
	if cfg.logger != nil {
		transport.Logger = cfg.logger
	}
	if cfg.rateLimit > 0 {
		transport.Limiter = rate.NewLimiter(rate.Limit(cfg.rateLimit), cfg.rateBurst)
	}

	client := &Client{
		transport: transport,
	}

	// Initialize services
	client.Alerts = newAlertService(transport)
	client.Devices = newDeviceService(transport)
	client.Observations = newObservationService(transport)

	return client, nil
}

// NewClientFromProfile creates a client from a credentials file profile,
// with CBC_URL / CBC_TOKEN / CBC_ORG_KEY environment overrides. Options
// given here take precedence over the profile.
func NewClientFromProfile(path, profile string, opts ...ClientOption) (*Client, error) {
	creds, err := config.Load(path, profile)
	if err != nil {
		return nil, err
	}

	base := []ClientOption{
		WithBaseURL(creds.URL),
		WithToken(creds.Token),
		WithOrgKey(creds.OrgKey),
	}
	return NewClient(append(base, opts...)...)
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL.String()
}

// OrgKey returns the configured organization key.
func (c *Client) OrgKey() string {
	return c.transport.OrgKey()
}
