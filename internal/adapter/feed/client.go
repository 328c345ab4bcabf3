// Package feed retrieves storm bulletin summaries from NOAA syndication feeds.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/stormwatch/tropics-dashboard/internal/observability"
)

const metricTarget = "feed"

// NoDescription is returned when the feed parses cleanly but no item carries
// a description. This is a normal empty-result case, not a failure.
const NoDescription = "No description available."

// Client fetches syndication feeds over HTTP.
type Client struct {
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a feed client. Each fetch performs exactly one round
// trip; there is no retry or caching.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// FirstDescription issues one GET to feedURL and returns the text of the
// first description element found in document order among the feed's item
// elements. When no item carries a description it returns [NoDescription]
// with a nil error. Transport, status, and parse failures are returned as
// errors; the caller decides how to surface them.
func (c *Client) FirstDescription(ctx context.Context, feedURL string) (string, error) {
	start := time.Now()
	desc, err := c.fetch(ctx, feedURL)
	c.metrics.FetchDuration.WithLabelValues(metricTarget).Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.FetchRequests.WithLabelValues(metricTarget, "error").Inc()
		c.logger.Warn("feed fetch failed", "url", feedURL, "error", err)
		return "", err
	}

	c.metrics.FetchRequests.WithLabelValues(metricTarget, "success").Inc()
	return desc, nil
}

func (c *Client) fetch(ctx context.Context, feedURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("feed returned status %d: %s", resp.StatusCode, body)
	}

	return firstItemDescription(resp.Body)
}

// firstItemDescription walks the XML token stream looking for the first
// description element nested inside an item element. Feeds place a
// description on the channel itself as well; only item descriptions count.
func firstItemDescription(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	itemDepth := 0
	sawElement := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if !sawElement {
				return "", fmt.Errorf("parse feed: no xml content")
			}
			return NoDescription, nil
		}
		if err != nil {
			return "", fmt.Errorf("parse feed: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			sawElement = true
			switch {
			case el.Name.Local == "item":
				itemDepth++
			case el.Name.Local == "description" && itemDepth > 0:
				var text string
				if err := dec.DecodeElement(&text, &el); err != nil {
					return "", fmt.Errorf("parse feed: %w", err)
				}
				return text, nil
			}
		case xml.EndElement:
			if el.Name.Local == "item" {
				itemDepth--
			}
		}
	}
}
