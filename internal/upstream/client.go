// Package upstream is the typed client for the remote records service, the
// authoritative store behind the gateway. Every response arrives in the
// {code, message, data} envelope; errors carry the same shape with a nil data
// and are told apart by HTTP status.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/TheDemonTuan/client-score-management/pkg/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: logger.Get(),
	}
}

// do performs one request and decodes the response envelope into out.
// out must be a pointer to an envelope type or nil to discard the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.log.Debug().Str("method", method).Str("url", u).Msg("records request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	// Error envelopes keep the success shape with data = null. Surface the
	// upstream message when there is one; fall back to a generic string.
	var errEnv envelope.Envelope[json.RawMessage]
	_ = json.NewDecoder(resp.Body).Decode(&errEnv)
	message := errEnv.Message
	if message == "" {
		message = fmt.Sprintf("records service returned HTTP %d", resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperror.New(resp.StatusCode, message, apperror.ErrNotFound)
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		return apperror.New(resp.StatusCode, message, apperror.ErrBadRequest)
	default:
		return apperror.New(http.StatusBadGateway, message, apperror.ErrUpstreamUnavailable)
	}
}
