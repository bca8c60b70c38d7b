package payment

import (
	"fmt"

	"github.com/monjauro/app/internal/funnel"
)

// Fixed PIX code displayed on the PIX checkout screen.
const stubPixCode = "00020126580014br.gov.bcb.pix013607117840196520400005303986540539.905802BR5925Gabriel Maier Mathei6009SAO PAULO62070503***63041D3D"

// StubProvider acknowledges checkout submissions without charging
// anything. No payment is processed.
type StubProvider struct{}

func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (p *StubProvider) Submit(plan funnel.Plan, method funnel.Method) (*Receipt, error) {
	if plan != funnel.PlanMonthly && plan != funnel.PlanAnnual {
		return nil, fmt.Errorf("unknown plan: %s", plan)
	}
	if method != funnel.MethodPix && method != funnel.MethodCredit {
		return nil, fmt.Errorf("unknown payment method: %s", method)
	}

	return &Receipt{
		Provider: p.Name(),
		Plan:     plan,
		Method:   method,
		Message:  "Processing payment... You will receive access to the app shortly!",
	}, nil
}

func (p *StubProvider) PixCode() string {
	return stubPixCode
}

func (p *StubProvider) Name() string {
	return "stub"
}

var _ Provider = (*StubProvider)(nil)
