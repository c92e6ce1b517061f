package beacon

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"conversion-relay-service/internal/tracking/core/domain"
	"conversion-relay-service/internal/tracking/core/ports"
)

const defaultTimeout = 10 * time.Second

// Sender posts relay payloads on a context detached from the caller, so
// a cancelled caller cannot abort an in-flight send. Delivery is
// at-most-once: transport errors are logged and dropped, never retried.
type Sender struct {
	client  *http.Client
	logger  *log.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewSender(client *http.Client, logger *log.Logger) *Sender {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Sender{client: client, logger: logger, timeout: defaultTimeout}
}

var _ ports.RelaySenderPort = (*Sender)(nil)

// Send serializes payload and dispatches it in the background,
// returning immediately.
func (s *Sender) Send(url string, payload domain.RelayPayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Printf("relay payload encode failed for event %q: %v", payload.EventName, err)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.post(url, body, payload.EventName)
	}()
}

func (s *Sender) post(url string, body []byte, eventName string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.logger.Printf("relay request build failed for event %q: %v", eventName, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Printf("relay delivery failed for event %q: %v", eventName, err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		s.logger.Printf("relay rejected event %q with status %d", eventName, resp.StatusCode)
	}
}

// Flush blocks until every dispatched send has finished. Short-lived
// processes call it before exiting so background sends are not killed.
func (s *Sender) Flush() {
	s.wg.Wait()
}
