// Package funnel models the landing page sales funnel as an explicit
// state machine: landing, quiz, plan selection, checkout. The state is
// transient UI state only; nothing here is persisted.
package funnel

import "errors"

type State string

const (
	StateLanding  State = "landing"
	StateQuiz     State = "quiz"
	StatePlans    State = "plans"
	StateCheckout State = "checkout"
)

type Plan string

const (
	PlanMonthly Plan = "monthly"
	PlanAnnual  Plan = "annual"
)

// Payment methods available within checkout. MethodNone is the checkout
// sub-state before the visitor picks one.
type Method string

const (
	MethodNone   Method = ""
	MethodPix    Method = "pix"
	MethodCredit Method = "credit"
)

var (
	ErrInvalidTransition = errors.New("invalid funnel transition")
	ErrUnknownAnswer     = errors.New("answer is not one of the question options")
	ErrUnknownPlan       = errors.New("unknown plan")
	ErrUnknownMethod     = errors.New("unknown payment method")
)

// Funnel is the full transient state of one visitor's walk through the
// funnel. The zero value is not valid; use New.
type Funnel struct {
	State   State
	Step    int
	Answers map[int]string
	Plan    Plan
	Method  Method
}

func New() Funnel {
	return Funnel{
		State:   StateLanding,
		Answers: map[int]string{},
	}
}

// Start moves from the landing page into the quiz. User-initiated and
// unconditional.
func (f *Funnel) Start() error {
	if f.State != StateLanding {
		return ErrInvalidTransition
	}
	f.State = StateQuiz
	f.Step = 0
	return nil
}

// Answer records the answer to the current question and advances.
// Answering the final question moves to plan selection.
func (f *Funnel) Answer(answer string) error {
	if f.State != StateQuiz {
		return ErrInvalidTransition
	}

	question := Questions[f.Step]
	if !question.Has(answer) {
		return ErrUnknownAnswer
	}

	if f.Answers == nil {
		f.Answers = map[int]string{}
	}
	f.Answers[f.Step] = answer

	if f.Step < len(Questions)-1 {
		f.Step++
	} else {
		f.State = StatePlans
	}
	return nil
}

// SelectPlan records the chosen plan and enters checkout with no payment
// method chosen yet.
func (f *Funnel) SelectPlan(plan Plan) error {
	if f.State != StatePlans {
		return ErrInvalidTransition
	}
	if plan != PlanMonthly && plan != PlanAnnual {
		return ErrUnknownPlan
	}
	f.Plan = plan
	f.Method = MethodNone
	f.State = StateCheckout
	return nil
}

// ChooseMethod is a checkout sub-state change revealing the matching
// payment form.
func (f *Funnel) ChooseMethod(method Method) error {
	if f.State != StateCheckout {
		return ErrInvalidTransition
	}
	if method != MethodPix && method != MethodCredit {
		return ErrUnknownMethod
	}
	f.Method = method
	return nil
}

// Back navigates one screen toward the landing page. Leaving checkout
// clears the payment method; leaving plan selection or the quiz clears
// the quiz progress entirely.
func (f *Funnel) Back() {
	switch f.State {
	case StateCheckout:
		f.Method = MethodNone
		f.State = StatePlans
	case StatePlans, StateQuiz:
		f.Step = 0
		f.Answers = map[int]string{}
		f.Plan = ""
		f.Method = MethodNone
		f.State = StateLanding
	}
}

// Question returns the current quiz question. Only meaningful in
// StateQuiz.
func (f *Funnel) Question() Question {
	return Questions[f.Step]
}
