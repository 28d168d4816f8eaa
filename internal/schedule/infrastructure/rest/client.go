// Package rest implements the command and query ports against the remote
// schedule services. The two services are separate deployments on separate
// ports and are assumed to fail independently, so each client carries its own
// circuit breaker.
package rest

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/moimlab/schedsync/internal/schedule/domain"
	"github.com/moimlab/schedsync/pkg/observability"
)

// ownerHeader carries the owner identity on every request to both services.
const ownerHeader = "X-Owner-Id"

// correlationHeader propagates the session correlation ID so command and
// query traffic for one user action can be joined in the service logs.
const correlationHeader = "X-Correlation-Id"

// setCommonHeaders applies the owner identity and, when the context carries
// one, the correlation ID to an outgoing request.
func setCommonHeaders(req *http.Request, ownerID string) {
	req.Header.Set(ownerHeader, ownerID)
	if corrID := observability.CorrelationIDFromContext(req.Context()); corrID != "" {
		req.Header.Set(correlationHeader, corrID)
	}
}

// DefaultTimeout bounds a single round trip when the caller does not
// configure one.
const DefaultTimeout = 15 * time.Second

func newBreaker(name string) *gobreaker.CircuitBreaker[any] {
	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

func responseError(service string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &domain.TransportError{
		Service: service,
		Status:  resp.StatusCode,
		Body:    string(body),
	}
}

// listParams builds query parameters from a ListQuery. Unset fields are left
// out of the URL entirely rather than sent empty.
func listParams(q domain.ListQuery) url.Values {
	params := url.Values{}
	if q.Page != nil {
		params.Set("page", strconv.Itoa(*q.Page))
	}
	if q.Size != nil {
		params.Set("size", strconv.Itoa(*q.Size))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	return params
}

func pathWithParams(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
