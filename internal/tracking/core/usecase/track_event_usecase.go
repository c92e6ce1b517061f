package usecase

import (
	"fmt"
	"log"
	"time"

	"conversion-relay-service/internal/tracking/core/domain"
	"conversion-relay-service/internal/tracking/core/ports"

	"github.com/google/uuid"
)

// TrackEventUseCase fans one logical event out to the pixel channel and
// the relay channel. Both dispatches are fire-and-forget: Track never
// blocks on delivery and never surfaces a delivery failure.
type TrackEventUseCase struct {
	pixel  ports.PixelEmitterPort
	relay  ports.RelaySenderPort
	logger *log.Logger

	newEventID func() string
}

func NewTrackEventUseCase(pixel ports.PixelEmitterPort, relay ports.RelaySenderPort, logger *log.Logger) *TrackEventUseCase {
	if logger == nil {
		logger = log.Default()
	}
	return &TrackEventUseCase{
		pixel:      pixel,
		relay:      relay,
		logger:     logger,
		newEventID: newEventID,
	}
}

// newEventID mints the shared deduplication key: a time component plus a
// random suffix. No central coordination; uniqueness is probabilistic.
func newEventID() string {
	return fmt.Sprintf("%d.%s", time.Now().UnixMilli(), uuid.NewString())
}

// Track reports one logical event through both channels. The event id is
// generated exactly once here and handed unchanged to each channel; the
// channels are independent and a failure in one never reaches the other.
func (uc *TrackEventUseCase) Track(settings domain.RelaySettings, eventName string, params map[string]any, user *domain.UserData) {
	if settings.AccountPixelID == "" {
		uc.logger.Printf("tracking disabled: no pixel id configured, dropping event %q", eventName)
		return
	}

	rec := domain.EventRecord{
		EventName: eventName,
		EventID:   uc.newEventID(),
		Params:    params,
		User:      user,
	}

	uc.pixel.Emit(rec.EventName, rec.Params, rec.EventID)

	if settings.RelayURL == "" {
		uc.logger.Printf("no relay url configured, skipping server-side delivery for event %q", eventName)
		return
	}

	uc.relay.Send(settings.RelayURL, buildRelayPayload(rec, settings))
}

func buildRelayPayload(rec domain.EventRecord, settings domain.RelaySettings) domain.RelayPayload {
	p := domain.RelayPayload{
		EventName: rec.EventName,
		EventID:   rec.EventID,
		EventData: rec.Params,
		Settings:  domain.SettingsPayload{AccountPixelID: settings.AccountPixelID},
	}

	if rec.User != nil {
		p.UserData = &domain.UserPayload{
			Email:     rec.User.Email,
			Phone:     rec.User.Phone,
			FirstName: rec.User.FirstName,
			LastName:  rec.User.LastName,
		}
	}

	return p
}
