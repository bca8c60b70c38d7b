package payment

import "github.com/monjauro/app/internal/funnel"

// Receipt is the provider's acknowledgment of a checkout submission.
type Receipt struct {
	Provider string
	Plan     funnel.Plan
	Method   funnel.Method
	Message  string
}

// Provider defines the interface that all payment providers must implement.
// The shipped provider is a stub; a real gateway would implement the same
// interface.
type Provider interface {
	// Submit processes a checkout submission for the given plan and
	// method and returns an acknowledgment.
	Submit(plan funnel.Plan, method funnel.Method) (*Receipt, error)

	// PixCode returns the copyable PIX payment code shown on the PIX
	// checkout screen.
	PixCode() string

	// Name returns the provider name (e.g., "stub")
	Name() string
}
