package cbcloud

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL    string
	token      string
	orgKey     string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *logrus.Logger
	rateLimit  float64
	rateBurst  int
}

// WithBaseURL sets the Carbon Black Cloud API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithToken sets the API token in its combined "<secret>/<id>" form.
func WithToken(token string) ClientOption {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithOrgKey sets the organization key that scopes all API routes.
func WithOrgKey(orgKey string) ClientOption {
	return func(c *clientConfig) {
		c.orgKey = orgKey
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the default request timeout.
// Note: This option is ignored when WithHTTPClient is used;
// set the timeout directly on the provided client instead.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets a logger for debug-level request/response logging.
// Without it the client logs nothing.
func WithLogger(logger *logrus.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRateLimit throttles outgoing requests to rps requests per second with
// the given burst. Without it requests are not throttled client-side.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *clientConfig) {
		c.rateLimit = rps
		c.rateBurst = burst
	}
}

// RequestOption configures individual API requests.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers http.Header
}

func newRequestConfig() *requestConfig {
	return &requestConfig{
		headers: make(http.Header),
	}
}

func (r *requestConfig) apply(opts ...RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// WithHeader adds a custom header to a request.
func WithHeader(key, value string) RequestOption {
	return func(r *requestConfig) {
		r.headers.Set(key, value)
	}
}

// WithHeaders adds multiple custom headers to a request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *requestConfig) {
		for k, v := range headers {
			r.headers.Set(k, v)
		}
	}
}

// WithRequestID sets the X-Request-ID header for tracing. Requests without
// one get a generated ID.
func WithRequestID(id string) RequestOption {
	return WithHeader("X-Request-ID", id)
}
