package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"golf-content-service/internal/config"
	"golf-content-service/internal/core/domain"
	ports "golf-content-service/internal/core/ports/output"
	"golf-content-service/internal/metrics"
)

const maxErrorBody = 4 << 10

type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries int
	breaker    *gobreaker.CircuitBreaker
	newBackOff func() backoff.BackOff
}

// NewClient creates a GROQ query client for the configured project and dataset
func NewClient(cfg *config.SanityConfig) ports.ContentStore {
	return newClient(cfg, apiBaseURL(cfg))
}

func newClient(cfg *config.SanityConfig, baseURL string) *client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	c := &client{
		baseURL:    baseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: cfg.MaxRetries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxElapsedTime = timeout
			return b
		},
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "sanity",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// rejected queries and callers that gave up are not outages
		IsSuccessful: func(err error) bool {
			var (
				se *statusError
				ae *abortedError
			)
			return err == nil || errors.As(err, &ae) || (errors.As(err, &se) && !se.retryable())
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(log.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("content store circuit breaker state changed")
		},
	})
	return c
}

// apiBaseURL picks the CDN-backed API host for anonymous reads; authenticated
// reads must hit the live API.
func apiBaseURL(cfg *config.SanityConfig) string {
	host := "api.sanity.io"
	if cfg.UseCDN && cfg.Token == "" {
		host = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s/v%s/data/query/%s", cfg.ProjectID, host, cfg.APIVersion, cfg.Dataset)
}

// queryResponse is the envelope the query API wraps results in.
type queryResponse struct {
	MS     int             `json:"ms"`
	Query  string          `json:"query"`
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

// statusError is returned for non-2xx responses.
type statusError struct {
	Status  int
	Message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("query api returned %d: %s", e.Status, e.Message)
}

func (e *statusError) retryable() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// abortedError marks a query abandoned because the caller's context ended.
type abortedError struct {
	err error
}

func (e *abortedError) Error() string { return "query aborted: " + e.err.Error() }

func (e *abortedError) Unwrap() error { return e.err }

// EncodeParams renders GROQ parameters as $-prefixed JSON query values.
func EncodeParams(query string, params map[string]any) (url.Values, error) {
	values := url.Values{}
	values.Set("query", query)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		raw, err := json.Marshal(params[k])
		if err != nil {
			return nil, fmt.Errorf("encode param %s: %w", k, err)
		}
		values.Set("$"+k, string(raw))
	}
	return values, nil
}

func (c *client) Query(ctx context.Context, q ports.Query) (json.RawMessage, error) {
	values, err := EncodeParams(q.GROQ, q.Params)
	if err != nil {
		return nil, err
	}
	reqURL := c.baseURL + "?" + values.Encode()

	start := time.Now()
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.queryWithRetry(ctx, q.Name, reqURL)
	})
	metrics.CMSQueryDuration.WithLabelValues(q.Name).Observe(time.Since(start).Seconds())

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			metrics.CMSQueries.WithLabelValues(q.Name, "aborted").Inc()
			return nil, fmt.Errorf("query %s: %w", q.Name, ctxErr)
		}
		metrics.CMSQueries.WithLabelValues(q.Name, "error").Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", domain.ErrContentStoreUnavailable, err)
		}
		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			return nil, fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrContentStoreUnavailable, err)
	}

	metrics.CMSQueries.WithLabelValues(q.Name, "ok").Inc()
	return out.(json.RawMessage), nil
}

func (c *client) queryWithRetry(ctx context.Context, name, reqURL string) (json.RawMessage, error) {
	var result json.RawMessage
	attempt := 0

	op := func() error {
		attempt++
		res, err := c.do(ctx, reqURL)
		if err != nil {
			var se *statusError
			if errors.As(err, &se) && !se.retryable() {
				return backoff.Permanent(err)
			}
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			log.WithFields(log.Fields{
				"query":   name,
				"attempt": attempt,
			}).WithError(err).Debug("content query attempt failed")
			return err
		}
		result = res
		return nil
	}

	var b backoff.BackOff = c.newBackOff()
	if c.maxRetries >= 0 {
		b = backoff.WithMaxRetries(b, uint64(c.maxRetries))
	}
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &abortedError{err: ctxErr}
		}
		return nil, err
	}
	return result, nil
}

func (c *client) do(ctx context.Context, reqURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &statusError{Status: resp.StatusCode, Message: errorMessage(body)}
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}
	if len(qr.Result) == 0 {
		return json.RawMessage("null"), nil
	}

	log.WithFields(log.Fields{
		"server_ms": qr.MS,
	}).Debug("content query completed")
	return qr.Result, nil
}

func errorMessage(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		if er.Error.Description != "" {
			return er.Error.Description
		}
		if er.Message != "" {
			return er.Message
		}
	}
	return string(body)
}

func (c *client) IsAvailable(ctx context.Context) bool {
	if c.breaker.State() == gobreaker.StateOpen {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	values, _ := EncodeParams(`count(*[_type == "article"][0...1])`, nil)
	_, err := c.do(ctx, c.baseURL+"?"+values.Encode())
	return err == nil
}
