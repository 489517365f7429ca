// Package ncei fetches GHCN daily-summary data from the NCEI Access Data
// Service and runs it through the domain translation pipeline.
package ncei

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lorendsnow/ncei-ghcn-data/internal/domain"
	"github.com/lorendsnow/ncei-ghcn-data/internal/observability"
)

const defaultBaseURL = "https://www.ncei.noaa.gov/access/services/data/v1"

// Units selects the measurement convention for numeric columns.
type Units string

const (
	UnitsStandard Units = "standard" // imperial
	UnitsMetric   Units = "metric"
)

// Client issues daily-summary queries against the NCEI data service.
// One call is one request: no retries, no pagination, no caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an NCEI daily-summaries client.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// WithBaseURL overrides the service endpoint, e.g. for a mirror or test server.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// GetDailySummaries fetches observations for one station over an inclusive
// date range and returns fully-keyed normalized records. start and end each
// accept a time.Time or a "YYYY-MM-DD" string; units defaults to standard
// when empty.
func (c *Client) GetDailySummaries(ctx context.Context, stationID string, start, end any, units Units) ([]domain.DailySummary, error) {
	rows, err := c.fetchRows(ctx, stationID, start, end, units)
	if err != nil {
		return nil, err
	}

	recs, err := domain.TranslateAndCoerce(rows)
	if err != nil {
		return nil, err
	}
	return domain.Normalize(recs), nil
}

// GetRawDailySummaries is the untransformed variant: the same single request,
// returning the service's rows with category codes and string values intact.
func (c *Client) GetRawDailySummaries(ctx context.Context, stationID string, start, end any, units Units) ([]domain.RawObservation, error) {
	return c.fetchRows(ctx, stationID, start, end, units)
}

func (c *Client) fetchRows(ctx context.Context, stationID string, start, end any, units Units) ([]domain.RawObservation, error) {
	startISO, endISO, err := domain.NormalizeDateRange(start, end)
	if err != nil {
		return nil, err
	}
	if units == "" {
		units = UnitsStandard
	}

	u := c.requestURL(startISO, endISO, stationID, units)
	requestID := uuid.NewString()
	c.logger.Debug("fetching daily summaries",
		"request_id", requestID,
		"station", stationID,
		"start", startISO,
		"end", endISO,
		"units", units,
	)

	body, err := c.doRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows(body)
	if err != nil {
		var respErr *domain.ResponseError
		if errors.As(err, &respErr) {
			c.observe("envelope_error")
		} else {
			c.observe("decode_error")
		}
		return nil, err
	}

	c.observe("success")
	if c.metrics != nil {
		c.metrics.RowsFetched.Add(float64(len(rows)))
	}
	c.logger.Debug("fetched daily summaries", "request_id", requestID, "rows", len(rows))
	return rows, nil
}

// requestURL builds the query URL by plain interpolation. Station IDs and
// ISO dates contain no characters that need escaping.
func (c *Client) requestURL(start, end, stationID string, units Units) string {
	return fmt.Sprintf(
		"%s?dataset=daily-summaries&startDate=%s&endDate=%s&stations=%s&units=%s&format=json",
		c.baseURL, start, end, stationID, units,
	)
}

func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.RequestDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.observe("transport_error")
		return nil, fmt.Errorf("daily summaries request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe("transport_error")
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.observe("http_error")
		return nil, fmt.Errorf("NCEI API error: status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

// decodeRows interprets the response body. The service answers a successful
// query with a JSON array of flat string-valued objects and reports errors
// as a JSON object, which surfaces verbatim as a ResponseError.
func decodeRows(body []byte) ([]domain.RawObservation, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, errors.New("empty response body")
	}

	switch trimmed[0] {
	case '{':
		return nil, &domain.ResponseError{Body: string(trimmed)}
	case '[':
		var rows []domain.RawObservation
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unexpected response shape: %.40s", trimmed)
	}
}

func (c *Client) observe(outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.RequestsTotal.WithLabelValues(outcome).Inc()
}
