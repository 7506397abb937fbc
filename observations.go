package cbcloud

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cbcgo/cbcloud/internal/api"
)

// The investigate API runs searches as asynchronous jobs: a search is
// submitted, polled until every shard has reported in, and only then paged.
const jobPollInterval = 500 * time.Millisecond

// ObservationService provides access to the investigate API's observation
// search jobs.
type ObservationService interface {
	// Search submits a search job and returns an iterator over its results.
	// The job is polled until complete before the first item is yielded;
	// cancel the context to stop waiting.
	Search(ctx context.Context, query *Query, opts ...RequestOption) iter.Seq2[*Observation, error]
}

type observationService struct {
	transport *api.Transport
}

func newObservationService(transport *api.Transport) *observationService {
	return &observationService{transport: transport}
}

// submitResponse is the body returned when a search job is accepted.
type submitResponse struct {
	JobID string `json:"job_id"`
}

// jobResults is one page of results from a search job, along with the
// shard progress counters used to decide whether the job has finished.
type jobResults struct {
	Contacted    int            `json:"contacted"`
	Completed    int            `json:"completed"`
	NumAvailable int            `json:"num_available"`
	NumFound     int            `json:"num_found"`
	Results      []*Observation `json:"results"`
}

func (r *jobResults) done() bool {
	return r.Contacted > 0 && r.Completed >= r.Contacted
}

func (s *observationService) Search(ctx context.Context, query *Query, opts ...RequestOption) iter.Seq2[*Observation, error] {
	return func(yield func(*Observation, error) bool) {
		reqCfg := newRequestConfig()
		reqCfg.apply(opts...)

		jobID, err := s.submit(ctx, query, reqCfg)
		if err != nil {
			yield(nil, err)
			return
		}

		if err := s.awaitJob(ctx, jobID, reqCfg); err != nil {
			yield(nil, err)
			return
		}

		start := 0
		for {
			page, err := s.fetchResults(ctx, jobID, start, defaultPageSize, reqCfg)
			if err != nil {
				yield(nil, err)
				return
			}

			for _, obs := range page.Results {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
				if !yield(obs, nil) {
					return
				}
			}

			start += len(page.Results)
			if len(page.Results) == 0 || start >= page.NumAvailable {
				return
			}
		}
	}
}

// submit starts the search job and returns its ID.
func (s *observationService) submit(ctx context.Context, query *Query, reqCfg *requestConfig) (string, error) {
	if query == nil {
		query = NewQuery()
	}

	var result submitResponse
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    fmt.Sprintf("/api/investigate/v2/orgs/%s/observations/search_jobs", s.transport.OrgKey()),
		Body:    query.requestBody(nil),
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", parseError(resp.StatusCode, resp.Body, resp.Headers)
	}
	if result.JobID == "" {
		return "", &APIError{StatusCode: resp.StatusCode, Message: "search job submission returned no job_id"}
	}
	return result.JobID, nil
}

// awaitJob polls the job until every contacted shard has completed.
func (s *observationService) awaitJob(ctx context.Context, jobID string, reqCfg *requestConfig) error {
	for {
		// rows=0 fetches counters without result payloads
		status, err := s.fetchResults(ctx, jobID, 0, 0, reqCfg)
		if err != nil {
			return err
		}
		if status.done() {
			return nil
		}
		if err := sleepContext(ctx, jobPollInterval); err != nil {
			return err
		}
	}
}

func (s *observationService) fetchResults(ctx context.Context, jobID string, start, rows int, reqCfg *requestConfig) (*jobResults, error) {
	path := fmt.Sprintf("/api/investigate/v2/orgs/%s/observations/search_jobs/%s/results",
		s.transport.OrgKey(), url.PathEscape(jobID))

	var result jobResults
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   path,
		Query: url.Values{
			"start": {strconv.Itoa(start)},
			"rows":  {strconv.Itoa(rows)},
		},
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

// sleepContext sleeps for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
