package usecase_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"conversion-relay-service/internal/tracking/core/domain"
	"conversion-relay-service/internal/tracking/core/usecase"
)

// Fake emitter implementing PixelEmitterPort
type fakePixelEmitter struct {
	Calls []pixelCall
}

type pixelCall struct {
	EventName string
	Params    map[string]any
	EventID   string
}

func (f *fakePixelEmitter) Emit(eventName string, params map[string]any, eventID string) {
	f.Calls = append(f.Calls, pixelCall{EventName: eventName, Params: params, EventID: eventID})
}

// Fake sender implementing RelaySenderPort
type fakeRelaySender struct {
	Calls []relayCall
}

type relayCall struct {
	URL     string
	Payload domain.RelayPayload
}

func (f *fakeRelaySender) Send(url string, payload domain.RelayPayload) {
	f.Calls = append(f.Calls, relayCall{URL: url, Payload: payload})
}

func settings() domain.RelaySettings {
	return domain.RelaySettings{
		AccountPixelID: "123",
		RelayURL:       "https://relay.example.com/forwardEvent",
	}
}

func TestTrack_DispatchesBothChannelsWithSameEventID(t *testing.T) {
	pixel := &fakePixelEmitter{}
	relay := &fakeRelaySender{}

	uc := usecase.NewTrackEventUseCase(pixel, relay, log.New(&bytes.Buffer{}, "", 0))

	uc.Track(settings(), "Share", map[string]any{"method": "native"}, nil)

	if len(pixel.Calls) != 1 {
		t.Fatalf("expected 1 pixel call, got %d", len(pixel.Calls))
	}
	if len(relay.Calls) != 1 {
		t.Fatalf("expected 1 relay call, got %d", len(relay.Calls))
	}

	if pixel.Calls[0].EventName != "Share" {
		t.Errorf("expected pixel event name 'Share', got %s", pixel.Calls[0].EventName)
	}
	if pixel.Calls[0].EventID == "" {
		t.Fatal("expected non-empty event id on pixel channel")
	}
	if pixel.Calls[0].EventID != relay.Calls[0].Payload.EventID {
		t.Errorf("event id mismatch across channels: pixel=%s relay=%s",
			pixel.Calls[0].EventID, relay.Calls[0].Payload.EventID)
	}
	if relay.Calls[0].URL != "https://relay.example.com/forwardEvent" {
		t.Errorf("unexpected relay url %s", relay.Calls[0].URL)
	}
}

func TestTrack_EventIDsDistinctAcrossCalls(t *testing.T) {
	pixel := &fakePixelEmitter{}
	relay := &fakeRelaySender{}

	uc := usecase.NewTrackEventUseCase(pixel, relay, log.New(&bytes.Buffer{}, "", 0))

	uc.Track(settings(), "Share", nil, nil)
	uc.Track(settings(), "Share", nil, nil)

	if len(pixel.Calls) != 2 {
		t.Fatalf("expected 2 pixel calls, got %d", len(pixel.Calls))
	}
	if pixel.Calls[0].EventID == pixel.Calls[1].EventID {
		t.Fatalf("expected distinct event ids, both were %s", pixel.Calls[0].EventID)
	}
}

func TestTrack_NoPixelID_NoChannelInvoked(t *testing.T) {
	pixel := &fakePixelEmitter{}
	relay := &fakeRelaySender{}

	var logBuf bytes.Buffer
	uc := usecase.NewTrackEventUseCase(pixel, relay, log.New(&logBuf, "", 0))

	uc.Track(domain.RelaySettings{RelayURL: "https://relay.example.com/x"}, "Lead", nil, nil)

	if len(pixel.Calls) != 0 {
		t.Errorf("expected no pixel calls, got %d", len(pixel.Calls))
	}
	if len(relay.Calls) != 0 {
		t.Errorf("expected no relay calls, got %d", len(relay.Calls))
	}
	if !strings.Contains(logBuf.String(), "tracking disabled") {
		t.Errorf("expected a warning about disabled tracking, got %q", logBuf.String())
	}
}

func TestTrack_NoRelayURL_BrowserChannelStillFires(t *testing.T) {
	pixel := &fakePixelEmitter{}
	relay := &fakeRelaySender{}

	var logBuf bytes.Buffer
	uc := usecase.NewTrackEventUseCase(pixel, relay, log.New(&logBuf, "", 0))

	uc.Track(domain.RelaySettings{AccountPixelID: "123"}, "Share", map[string]any{"method": "native"}, nil)

	if len(pixel.Calls) != 1 {
		t.Fatalf("expected 1 pixel call, got %d", len(pixel.Calls))
	}
	if len(relay.Calls) != 0 {
		t.Errorf("expected no relay calls, got %d", len(relay.Calls))
	}
	if !strings.Contains(logBuf.String(), "skipping server-side delivery") {
		t.Errorf("expected a warning about skipped relay delivery, got %q", logBuf.String())
	}
}

func TestTrack_RelayPayloadShape(t *testing.T) {
	pixel := &fakePixelEmitter{}
	relay := &fakeRelaySender{}

	uc := usecase.NewTrackEventUseCase(pixel, relay, log.New(&bytes.Buffer{}, "", 0))

	user := &domain.UserData{Email: "A@B.com", FirstName: "Ana"}
	uc.Track(settings(), "Lead", map[string]any{"tripId": "t1"}, user)

	if len(relay.Calls) != 1 {
		t.Fatalf("expected 1 relay call, got %d", len(relay.Calls))
	}

	p := relay.Calls[0].Payload
	if p.EventName != "Lead" {
		t.Errorf("expected event name 'Lead', got %s", p.EventName)
	}
	if p.Settings.AccountPixelID != "123" {
		t.Errorf("expected pixel id 123 in payload settings, got %s", p.Settings.AccountPixelID)
	}
	if p.EventData["tripId"] != "t1" {
		t.Errorf("expected event data passthrough, got %v", p.EventData)
	}
	if p.UserData == nil {
		t.Fatal("expected user data in payload")
	}
	// Raw identity goes to the relay; hashing happens server-side.
	if p.UserData.Email != "A@B.com" {
		t.Errorf("expected raw email in relay payload, got %s", p.UserData.Email)
	}
	if p.UserData.FirstName != "Ana" {
		t.Errorf("expected first name 'Ana', got %s", p.UserData.FirstName)
	}
	if p.UserData.Phone != "" || p.UserData.LastName != "" {
		t.Errorf("expected absent fields to stay empty, got %+v", p.UserData)
	}
}

func TestTrack_AnonymousEventOmitsUserData(t *testing.T) {
	pixel := &fakePixelEmitter{}
	relay := &fakeRelaySender{}

	uc := usecase.NewTrackEventUseCase(pixel, relay, log.New(&bytes.Buffer{}, "", 0))

	uc.Track(settings(), "Share", nil, nil)

	if relay.Calls[0].Payload.UserData != nil {
		t.Fatalf("expected nil user data, got %+v", relay.Calls[0].Payload.UserData)
	}
}
