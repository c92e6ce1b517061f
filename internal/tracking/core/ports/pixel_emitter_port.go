package ports

// PixelEmitterPort delivers an event through the in-page pixel channel.
// Implementations are best-effort: they never panic, never block, and
// treat an unavailable pixel as a normal no-op.
type PixelEmitterPort interface {
	Emit(eventName string, params map[string]any, eventID string)
}
