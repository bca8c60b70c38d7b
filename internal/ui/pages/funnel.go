package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/monjauro/app/internal/ctxkeys"
	"github.com/monjauro/app/internal/funnel"
	"github.com/monjauro/app/internal/service/payment"
)

// funnelFields writes the hidden inputs that carry the funnel state
// across one POST. The handler decodes them, applies one transition and
// re-renders; nothing is stored server-side.
func funnelFields(ctx context.Context, w io.Writer, f funnel.Funnel) error {
	err := csrfField(ctx, w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w,
		`<input type="hidden" name="state" value="%s"><input type="hidden" name="step" value="%d"><input type="hidden" name="plan" value="%s"><input type="hidden" name="method" value="%s">`,
		esc(string(f.State)), f.Step, esc(string(f.Plan)), esc(string(f.Method)))
	if err != nil {
		return err
	}
	for i := range funnel.Questions {
		answer, ok := f.Answers[i]
		if !ok {
			continue
		}
		_, err = fmt.Fprintf(w, `<input type="hidden" name="answer_%d" value="%s">`, i, esc(answer))
		if err != nil {
			return err
		}
	}
	return nil
}

// funnelForm opens a POST form to /funnel carrying the state fields and
// one action.
func funnelForm(ctx context.Context, w io.Writer, f funnel.Funnel, action string) error {
	_, err := fmt.Fprintf(w, `<form method="post" action="/funnel"><input type="hidden" name="action" value="%s">`, esc(action))
	if err != nil {
		return err
	}
	return funnelFields(ctx, w, f)
}

// Landing is the marketing page with the quiz call to action.
func Landing() templ.Component {
	return layout("Welcome", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg := ctxkeys.Config(ctx)
		tagline := ""
		if cfg != nil {
			tagline = cfg.AppTagline
		}

		_, err := fmt.Fprintf(w, `<section class="hero">
<h1>Take control of your treatment</h1>
<p>%s</p>
`, esc(tagline))
		if err != nil {
			return err
		}

		err = funnelForm(ctx, w, funnel.New(), "start")
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `<button type="submit" class="cta">Start the quiz</button></form>
</section>
<section class="features">
<ul>
<li>Unlimited injection logging with photos</li>
<li>Complete nutrition tracking</li>
<li>Weekly progress charts</li>
<li>Reminders and notifications</li>
</ul>
</section>
`)
		return err
	}))
}

// Quiz renders the current question with one submit button per option.
func Quiz(f funnel.Funnel) templ.Component {
	return layout("Quiz", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		question := f.Question()

		_, err := fmt.Fprintf(w, `<section class="quiz">
<p class="quiz-progress">Question %d of %d</p>
<h1>%s</h1>
`, f.Step+1, len(funnel.Questions), esc(question.Text))
		if err != nil {
			return err
		}

		for _, option := range question.Options {
			err = funnelForm(ctx, w, f, "answer")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, `<button type="submit" name="answer" value="%s" class="quiz-option">%s</button></form>
`, esc(option), esc(option))
			if err != nil {
				return err
			}
		}

		err = funnelForm(ctx, w, f, "back")
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `<button type="submit" class="link">Back</button></form>
</section>
`)
		return err
	}))
}

// Plans renders the plan selection screen.
func Plans(f funnel.Funnel, catalog []funnel.PlanDetails) templ.Component {
	return layout("Choose your plan", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="plans">
<h1>Choose your plan</h1>
<p>Full access to every feature of the app</p>
`)
		if err != nil {
			return err
		}

		for _, plan := range catalog {
			_, err = fmt.Fprintf(w, `<article class="plan-card">
<h2>%s</h2>
<p class="price">%s<span>%s</span></p>
`, esc(plan.Name), esc(plan.Price), esc(plan.Period))
			if err != nil {
				return err
			}
			if plan.Total != "" {
				_, err = fmt.Fprintf(w, `<p class="plan-total">%s · %s</p>
`, esc(plan.Total), esc(plan.Savings))
				if err != nil {
					return err
				}
			}
			err = funnelForm(ctx, w, f, "plan")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, `<button type="submit" name="selected_plan" value="%s">Select</button></form>
</article>
`, esc(string(plan.ID)))
			if err != nil {
				return err
			}
		}

		err = funnelForm(ctx, w, f, "back")
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `<button type="submit" class="link">Back</button></form>
</section>
`)
		return err
	}))
}

// Checkout renders the payment method selector and, once a method is
// chosen, the matching stub payment form.
func Checkout(f funnel.Funnel, plan funnel.PlanDetails, pixCode string) templ.Component {
	return layout("Checkout", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="checkout">
<h1>Complete your purchase</h1>
<p>%s - %s%s</p>
`, esc(plan.Name), esc(plan.Price), esc(plan.Period))
		if err != nil {
			return err
		}

		for _, method := range []struct {
			id    funnel.Method
			label string
			hint  string
		}{
			{funnel.MethodPix, "PIX", "Instant approval"},
			{funnel.MethodCredit, "Credit card", "Installments available"},
		} {
			err = funnelForm(ctx, w, f, "method")
			if err != nil {
				return err
			}
			selected := ""
			if f.Method == method.id {
				selected = " selected"
			}
			_, err = fmt.Fprintf(w, `<button type="submit" name="selected_method" value="%s" class="method%s">%s<small>%s</small></button></form>
`, esc(string(method.id)), selected, esc(method.label), esc(method.hint))
			if err != nil {
				return err
			}
		}

		switch f.Method {
		case funnel.MethodPix:
			err = checkoutPix(ctx, w, f, plan, pixCode)
		case funnel.MethodCredit:
			err = checkoutCredit(ctx, w, f)
		default:
			_, err = io.WriteString(w, `<p class="hint">Select a payment method above</p>
`)
		}
		if err != nil {
			return err
		}

		err = funnelForm(ctx, w, f, "back")
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `<button type="submit" class="link">Back to plans</button></form>
</section>
`)
		return err
	}))
}

func checkoutPix(ctx context.Context, w io.Writer, f funnel.Funnel, plan funnel.PlanDetails, pixCode string) error {
	_, err := fmt.Fprintf(w, `<div class="pix">
<p>Scan the QR code with your bank app, or copy the PIX code:</p>
<input type="text" readonly value="%s" class="pix-code">
<p class="amount">Amount: %s</p>
<p>Your access is unlocked automatically after payment</p>
`, esc(pixCode), esc(plan.Price))
	if err != nil {
		return err
	}
	err = funnelForm(ctx, w, f, "submit")
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, `<button type="submit" class="cta">Confirm PIX payment</button></form>
</div>
`)
	return err
}

func checkoutCredit(ctx context.Context, w io.Writer, f funnel.Funnel) error {
	err := funnelForm(ctx, w, f, "submit")
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, `<div class="credit">
<label>Card number <input type="text" name="card_number" placeholder="0000 0000 0000 0000" maxlength="19" required></label>
<label>Name on card <input type="text" name="card_name" required></label>
<label>Expiry <input type="text" name="card_expiry" placeholder="MM/YY" maxlength="5" required></label>
<label>CVV <input type="text" name="card_cvv" maxlength="4" required></label>
<button type="submit" class="cta">Finish payment</button>
</div>
</form>
`)
	return err
}

// Receipt shows the stub acknowledgment after a checkout submission.
func Receipt(receipt *payment.Receipt) templ.Component {
	return layout("Order received", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="receipt">
<h1>Order received</h1>
<p>%s</p>
<p><a href="/app/dashboard">Go to your dashboard</a></p>
</section>
`, esc(receipt.Message))
		return err
	}))
}
