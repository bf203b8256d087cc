// Package notify broadcasts "something changed for wedding X" events after
// successful mutations. Delivery is best-effort: a failed publish is logged
// and never affects the mutation that triggered it.
package notify

import "context"

// Notifier is informed after a successful mutation. Implementations must
// not block the caller beyond the publish itself and must not return the
// failure to the mutating request path.
type Notifier interface {
	WeddingUpdated(ctx context.Context, weddingID uint, event string)
	Close() error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) WeddingUpdated(ctx context.Context, weddingID uint, event string) {}

func (Noop) Close() error { return nil }
