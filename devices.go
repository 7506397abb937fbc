package cbcloud

import (
	"context"
	"fmt"
	"iter"
	"net/http"

	"github.com/cbcgo/cbcloud/internal/api"
)

// DeviceService provides device search operations.
type DeviceService interface {
	// Search returns an iterator over all devices matching the query.
	Search(ctx context.Context, query *Query, opts ...RequestOption) iter.Seq2[*Device, error]

	// SearchPage returns a single page of devices.
	SearchPage(ctx context.Context, query *Query, page *PageOptions, opts ...RequestOption) (*DevicePage, error)
}

type deviceService struct {
	transport *api.Transport
}

func newDeviceService(transport *api.Transport) *deviceService {
	return &deviceService{transport: transport}
}

func (s *deviceService) Search(ctx context.Context, query *Query, opts ...RequestOption) iter.Seq2[*Device, error] {
	return func(yield func(*Device, error) bool) {
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

			for _, device := range page.Results {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
				if !yield(device, nil) {
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

func (s *deviceService) SearchPage(ctx context.Context, query *Query, page *PageOptions, opts ...RequestOption) (*DevicePage, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	if query == nil {
		query = NewQuery()
	}

	var result DevicePage
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    fmt.Sprintf("/appservices/v6/orgs/%s/devices/_search", s.transport.OrgKey()),
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
