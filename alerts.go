package cbcloud

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/url"

	"github.com/cbcgo/cbcloud/internal/api"
)

const (
	defaultPageSize = 100
	maxPageSize     = 10000
)

// AlertService provides operations on alerts via the v7 alert API.
//
//go:generate mockery --name=AlertService --output=mocks --outpkg=mocks --filename=alert_service.go
type AlertService interface {
	// Search returns an iterator over all alerts matching the query.
	// The iterator fetches pages lazily as you iterate.
	Search(ctx context.Context, query *Query, opts ...RequestOption) iter.Seq2[*Alert, error]

	// SearchPage returns a single page of alerts.
	// Use this for manual pagination control.
	SearchPage(ctx context.Context, query *Query, page *PageOptions, opts ...RequestOption) (*AlertPage, error)

	// Get retrieves a single alert by ID.
	Get(ctx context.Context, id string, opts ...RequestOption) (*Alert, error)
}

// alertService implements AlertService.
type alertService struct {
	transport *api.Transport
}

func newAlertService(transport *api.Transport) *alertService {
	return &alertService{transport: transport}
}

// Search returns an iterator over all alerts matching the query.
func (s *alertService) Search(ctx context.Context, query *Query, opts ...RequestOption) iter.Seq2[*Alert, error] {
	return func(yield func(*Alert, error) bool) {
		start := 0

		for {
			page, err := s.SearchPage(ctx, query, &PageOptions{
				Start: start,
				Rows:  defaultPageSize,
			}, opts...)

			if err != nil {
				yield(nil, err)
				return
			}

			for _, alert := range page.Results {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
				if !yield(alert, nil) {
					return
				}
			}

			start += len(page.Results)
			if len(page.Results) == 0 || start >= page.NumFound {
				return
			}
		}
	}
}

// SearchPage returns a single page of alerts.
func (s *alertService) SearchPage(ctx context.Context, query *Query, page *PageOptions, opts ...RequestOption) (*AlertPage, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	if query == nil {
		query = NewQuery()
	}
	if page != nil && page.Rows > maxPageSize {
		page.Rows = maxPageSize
	}

	var result AlertPage
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    fmt.Sprintf("/api/alerts/v7/orgs/%s/alerts/_search", s.transport.OrgKey()),
		Body:    query.requestBody(page),
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseError(resp.StatusCode, resp.Body, resp.Headers)
	}

	return &result, nil
}

// validateID checks that a resource ID is not empty.
func validateID(id string) error {
	if id == "" {
		return &ValidationError{
			APIError: APIError{Message: "resource ID cannot be empty"},
		}
	}
	return nil
}

// Get retrieves a single alert by ID.
func (s *alertService) Get(ctx context.Context, id string, opts ...RequestOption) (*Alert, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Alert
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("/api/alerts/v7/orgs/%s/alerts/%s", s.transport.OrgKey(), url.PathEscape(id)),
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: "alert not found"},
			ResourceType: "alert",
			ResourceID:   id,
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseError(resp.StatusCode, resp.Body, resp.Headers)
	}

	return &result, nil
}
