package payment

import (
	"fmt"
	"log/slog"
)

// NewProvider creates a payment provider by name. Only the stub provider
// ships; real gateways register here.
func NewProvider(name string) (Provider, error) {
	slog.Info("initializing payment provider", "provider", name)

	switch name {
	case "", "stub":
		return NewStubProvider(), nil

	default:
		return nil, fmt.Errorf("unknown payment provider: %s (supported: stub)", name)
	}
}
