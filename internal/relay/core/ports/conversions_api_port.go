package ports

import (
	"context"

	"conversion-relay-service/internal/relay/core/domain"
)

// ConversionsAPIPort forwards assembled events to the advertising
// platform's server-side API for the given pixel account.
type ConversionsAPIPort interface {
	SendEvents(ctx context.Context, pixelID, accessToken string, events []domain.UpstreamEvent) error
}
