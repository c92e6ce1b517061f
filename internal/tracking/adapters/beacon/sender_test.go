package beacon_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"conversion-relay-service/internal/tracking/adapters/beacon"
	"conversion-relay-service/internal/tracking/core/domain"
)

func payload() domain.RelayPayload {
	return domain.RelayPayload{
		EventName: "Share",
		EventID:   "ev_1",
		EventData: map[string]any{"method": "native"},
		Settings:  domain.SettingsPayload{AccountPixelID: "123"},
	}
}

func TestSend_DeliversJSONBody(t *testing.T) {
	received := make(chan []byte, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		received <- body
	}))
	defer srv.Close()

	s := beacon.NewSender(srv.Client(), log.New(&bytes.Buffer{}, "", 0))
	s.Send(srv.URL, payload())
	s.Flush()

	select {
	case body := <-received:
		var got map[string]any
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("invalid json body: %v", err)
		}
		if got["eventName"] != "Share" {
			t.Errorf("expected eventName=Share, got %v", got["eventName"])
		}
		if got["eventId"] != "ev_1" {
			t.Errorf("expected eventId=ev_1, got %v", got["eventId"])
		}
		if _, ok := got["userData"]; ok {
			t.Error("expected userData to be omitted for anonymous events")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("relay never received the payload")
	}
}

func TestSend_TransportErrorIsLoggedNotPropagated(t *testing.T) {
	var logBuf bytes.Buffer

	s := beacon.NewSender(&http.Client{Timeout: 200 * time.Millisecond}, log.New(&logBuf, "", 0))

	// Nothing listens here; the send must fail quietly.
	s.Send("http://127.0.0.1:1/forwardEvent", payload())
	s.Flush()

	if !strings.Contains(logBuf.String(), "relay delivery failed") {
		t.Errorf("expected a delivery failure log, got %q", logBuf.String())
	}
}

func TestSend_ErrorStatusIsLogged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	var logBuf bytes.Buffer
	s := beacon.NewSender(srv.Client(), log.New(&logBuf, "", 0))

	s.Send(srv.URL, payload())
	s.Flush()

	if !strings.Contains(logBuf.String(), "status 400") {
		t.Errorf("expected the 400 to be logged, got %q", logBuf.String())
	}
}

func TestFlush_WaitsForInFlightSends(t *testing.T) {
	done := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		close(done)
	}))
	defer srv.Close()

	s := beacon.NewSender(srv.Client(), log.New(&bytes.Buffer{}, "", 0))
	s.Send(srv.URL, payload())
	s.Flush()

	select {
	case <-done:
	default:
		t.Fatal("Flush returned before the send completed")
	}
}
