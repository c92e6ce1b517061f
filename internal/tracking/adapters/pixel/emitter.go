package pixel

import (
	"log"

	"conversion-relay-service/internal/tracking/core/ports"
)

// Func is the injected in-page tracking function. The third argument
// carries the structured deduplication marker the client SDK forwards
// upstream. A nil Func models a blocked or unloaded pixel.
type Func func(eventName string, params map[string]any, dedup map[string]string)

// Emitter delivers events through an optional pixel function. An absent
// pixel is an expected outcome, not a failure.
type Emitter struct {
	fn     Func
	logger *log.Logger
}

func NewEmitter(fn Func, logger *log.Logger) *Emitter {
	if logger == nil {
		logger = log.Default()
	}
	return &Emitter{fn: fn, logger: logger}
}

var _ ports.PixelEmitterPort = (*Emitter)(nil)

func (e *Emitter) Emit(eventName string, params map[string]any, eventID string) {
	if e.fn == nil {
		e.logger.Printf("pixel unavailable, skipping browser delivery for event %q", eventName)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("pixel call panicked for event %q: %v", eventName, r)
		}
	}()

	e.fn(eventName, params, map[string]string{"eventID": eventID})
}
