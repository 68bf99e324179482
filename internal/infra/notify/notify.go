// Package notify dispatches messages to a tracker's contact address.
//
// Dispatch is fire-and-forget: there is no delivery confirmation contract,
// failures are logged and never raised to callers, and the engine performs no
// retries. A real channel implementation would live behind the same
// interface.
package notify

import (
	"context"
	"log/slog"
)

type Notifier interface {
	Notify(ctx context.Context, address, message string)
}

// WhatsAppSimulator stands in for the real WhatsApp channel by emitting each
// message through the structured logger.
type WhatsAppSimulator struct {
	logger *slog.Logger
}

func NewWhatsAppSimulator(logger *slog.Logger) *WhatsAppSimulator {
	return &WhatsAppSimulator{logger: logger}
}

func (n *WhatsAppSimulator) Notify(_ context.Context, address, message string) {
	n.logger.Info("whatsapp simulation: message dispatched",
		"to", address,
		"message", message,
	)
}
