package capi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"conversion-relay-service/internal/relay/core/domain"
	"conversion-relay-service/internal/relay/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client posts event batches to the Conversions API. The access token
// rides as a query credential and must never appear in errors or logs.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

var _ ports.ConversionsAPIPort = (*Client)(nil)

type eventsBody struct {
	Data []domain.UpstreamEvent `json:"data"`
}

func (c *Client) SendEvents(ctx context.Context, pixelID, accessToken string, events []domain.UpstreamEvent) error {
	body, err := json.Marshal(eventsBody{Data: events})
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/events?access_token=%s",
		c.baseURL, url.PathEscape(pixelID), url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.New("build upstream request failed")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error echoes the full URL, which carries the credential.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("upstream responded %d", resp.StatusCode)
	}

	return nil
}
