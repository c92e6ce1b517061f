package ports

import "conversion-relay-service/internal/tracking/core/domain"

// RelaySenderPort delivers the payload to the relay endpoint,
// best-effort and non-blocking. Delivery failures are logged by the
// implementation and never reach the caller; nothing is retried.
type RelaySenderPort interface {
	Send(url string, payload domain.RelayPayload)
}
