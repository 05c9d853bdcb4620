// Package notify forwards issued orders to the configured spreadsheet
// endpoint. Delivery is best-effort: the storefront never waits on or acts
// upon the outcome.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/obs"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/quote"
)

// SheetSender posts flattened order summaries to a Google Apps Script web
// app URL. An empty URL disables the sender; Send becomes a silent no-op.
type SheetSender struct {
	URL    string
	Client *http.Client
}

// Send implements quote.Notifier. The response body is read and discarded;
// only transport-level failures and non-2xx statuses count as errors, and
// even those are merely reported to the caller for logging.
func (s SheetSender) Send(ctx context.Context, summary quote.Summary) error {
	if s.URL == "" {
		return nil
	}
	if err := validateURL(s.URL); err != nil {
		return err
	}
	body, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("notify: encode summary: %w", err)
	}
	client := s.Client
	if client == nil {
		client = HTTPClient(5000)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "aspace-storefront/1.0")
	resp, err := client.Do(req)
	if err != nil {
		countDelivery("error")
		return fmt.Errorf("notify: post summary: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		countDelivery("rejected")
		return fmt.Errorf("notify: endpoint returned status %d", resp.StatusCode)
	}
	countDelivery("delivered")
	return nil
}

func countDelivery(result string) {
	if obs.NotifyDeliveriesTotal != nil {
		obs.NotifyDeliveriesTotal.WithLabelValues(result).Inc()
	}
}

func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("notify: invalid endpoint url: %w", err)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return errors.New("notify: endpoint url must be http or https")
	}
	if parsed.Scheme == "http" {
		host := parsed.Hostname()
		if host != "localhost" && host != "127.0.0.1" {
			return errors.New("notify: http endpoint only allowed for localhost")
		}
	}
	if parsed.Host == "" {
		return errors.New("notify: endpoint url must include host")
	}
	return nil
}

// HTTPClient returns an HTTP client configured for notification delivery.
func HTTPClient(timeoutMs int) *http.Client {
	if timeoutMs <= 0 {
		timeoutMs = 5000
	}
	return &http.Client{
		Timeout:   time.Duration(timeoutMs) * time.Millisecond,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
