package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"conversion-relay-service/internal/hashing"
	"conversion-relay-service/internal/relay/core/domain"
	"conversion-relay-service/internal/relay/core/ports"
)

var (
	ErrSecretNotConfigured = errors.New("server configuration error")
	ErrPixelIDRequired     = errors.New("pixel id is required")
	ErrUpstreamDelivery    = errors.New("upstream delivery failed")
)

type ForwardEventInput struct {
	EventName string
	EventID   string
	EventData map[string]any
	User      domain.UserData
	PixelID   string
	ClientIP  string
	UserAgent string
}

// ForwardEventUseCase validates the inbound relay request, hashes the
// identity fields and forwards a single-element event list upstream.
// Stateless: each call stands alone.
type ForwardEventUseCase struct {
	capi    ports.ConversionsAPIPort
	secrets ports.SecretProviderPort
	logger  *log.Logger

	now func() time.Time
}

func NewForwardEventUseCase(capi ports.ConversionsAPIPort, secrets ports.SecretProviderPort, logger *log.Logger) *ForwardEventUseCase {
	if logger == nil {
		logger = log.Default()
	}
	return &ForwardEventUseCase{
		capi:    capi,
		secrets: secrets,
		logger:  logger,
		now:     time.Now,
	}
}

func (uc *ForwardEventUseCase) Execute(ctx context.Context, in ForwardEventInput) error {
	token := uc.secrets.AccessToken()
	if token == "" {
		return ErrSecretNotConfigured
	}

	if in.PixelID == "" {
		return ErrPixelIDRequired
	}

	// event_time is stamped here, at the relay, not at event origination.
	event := domain.UpstreamEvent{
		EventName:    in.EventName,
		EventTime:    uc.now().Unix(),
		ActionSource: "website",
		EventID:      in.EventID,
		UserData:     hashUserData(in.User, in.ClientIP, in.UserAgent),
		CustomData:   in.EventData,
	}

	if err := uc.capi.SendEvents(ctx, in.PixelID, token, []domain.UpstreamEvent{event}); err != nil {
		uc.logger.Printf("upstream delivery failed for event %q (id %s): %v", in.EventName, in.EventID, err)
		return ErrUpstreamDelivery
	}

	return nil
}

// hashUserData hashes each present identity field after normalization
// and omits absent ones. IP and user agent are deliberately not hashed.
func hashUserData(u domain.UserData, clientIP, userAgent string) domain.UpstreamUserData {
	out := domain.UpstreamUserData{
		ClientIPAddress: clientIP,
		ClientUserAgent: userAgent,
	}

	if u.Email != "" {
		out.Email = hashing.Hash(hashing.NormalizeEmail(u.Email))
	}
	if u.Phone != "" {
		out.Phone = hashing.Hash(hashing.NormalizePhone(u.Phone))
	}
	if u.FirstName != "" {
		out.FirstName = hashing.Hash(hashing.NormalizeName(u.FirstName))
	}
	if u.LastName != "" {
		out.LastName = hashing.Hash(hashing.NormalizeName(u.LastName))
	}

	return out
}
