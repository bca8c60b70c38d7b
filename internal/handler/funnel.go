package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/monjauro/app/internal/funnel"
	"github.com/monjauro/app/internal/service/payment"
	"github.com/monjauro/app/internal/ui"
	"github.com/monjauro/app/internal/ui/pages"
)

// FunnelHandler drives the landing funnel. The whole walk is stateless
// on the server: each POST carries the encoded state, gets exactly one
// transition applied, and renders the resulting screen.
type FunnelHandler struct {
	provider payment.Provider
	catalog  []funnel.PlanDetails
}

func NewFunnelHandler(provider payment.Provider, monthlyPrice, annualPrice string) *FunnelHandler {
	return &FunnelHandler{
		provider: provider,
		catalog:  funnel.PlanCatalog(monthlyPrice, annualPrice),
	}
}

func (h *FunnelHandler) Transition(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	f := decodeFunnel(r)
	action := r.FormValue("action")

	switch action {
	case "start":
		err = f.Start()
	case "answer":
		err = f.Answer(r.FormValue("answer"))
	case "plan":
		err = f.SelectPlan(funnel.Plan(r.FormValue("selected_plan")))
	case "method":
		err = f.ChooseMethod(funnel.Method(r.FormValue("selected_method")))
	case "back":
		f.Back()
	case "submit":
		h.submit(w, r, f)
		return
	default:
		err = fmt.Errorf("unknown action: %s", action)
	}

	if err != nil {
		// A stale or tampered form. Start over rather than erroring.
		slog.Warn("funnel transition rejected", "action", action, "error", err)
		f = funnel.New()
	}

	h.render(w, r, f)
}

func (h *FunnelHandler) submit(w http.ResponseWriter, r *http.Request, f funnel.Funnel) {
	if f.State != funnel.StateCheckout || f.Method == funnel.MethodNone {
		h.render(w, r, f)
		return
	}

	receipt, err := h.provider.Submit(f.Plan, f.Method)
	if err != nil {
		slog.Error("checkout submission failed", "provider", h.provider.Name(), "error", err)
		h.render(w, r, f)
		return
	}

	slog.Info("checkout completed", "provider", receipt.Provider, "plan", receipt.Plan, "method", receipt.Method)
	ui.Render(w, r, pages.Receipt(receipt))
}

func (h *FunnelHandler) render(w http.ResponseWriter, r *http.Request, f funnel.Funnel) {
	switch f.State {
	case funnel.StateQuiz:
		ui.Render(w, r, pages.Quiz(f))
	case funnel.StatePlans:
		ui.Render(w, r, pages.Plans(f, h.catalog))
	case funnel.StateCheckout:
		plan, ok := funnel.PlanByID(h.catalog, f.Plan)
		if !ok {
			ui.Render(w, r, pages.Landing())
			return
		}
		ui.Render(w, r, pages.Checkout(f, plan, h.provider.PixCode()))
	default:
		ui.Render(w, r, pages.Landing())
	}
}

// decodeFunnel rebuilds the funnel from the hidden form fields. Anything
// that does not decode to a coherent state degrades to a fresh landing
// funnel.
func decodeFunnel(r *http.Request) funnel.Funnel {
	f := funnel.New()

	switch state := funnel.State(r.FormValue("state")); state {
	case funnel.StateLanding, funnel.StateQuiz, funnel.StatePlans, funnel.StateCheckout:
		f.State = state
	default:
		return funnel.New()
	}

	step, err := strconv.Atoi(r.FormValue("step"))
	if err != nil || step < 0 || step >= len(funnel.Questions) {
		step = 0
	}
	f.Step = step

	for i, question := range funnel.Questions {
		answer := r.FormValue(fmt.Sprintf("answer_%d", i))
		if answer != "" && question.Has(answer) {
			f.Answers[i] = answer
		}
	}

	switch plan := funnel.Plan(r.FormValue("plan")); plan {
	case funnel.PlanMonthly, funnel.PlanAnnual:
		f.Plan = plan
	}

	switch method := funnel.Method(r.FormValue("method")); method {
	case funnel.MethodPix, funnel.MethodCredit:
		f.Method = method
	}

	// States past plan selection need a plan to make sense
	if f.State == funnel.StateCheckout && f.Plan == "" {
		return funnel.New()
	}

	return f
}
