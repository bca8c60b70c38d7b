package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/monjauro/app/internal/model"
)

// Profile renders the settings form. saved shows a confirmation banner
// after a successful update; errMsg shows a validation failure.
func Profile(profile model.UserProfile, saved bool, errMsg string) templ.Component {
	return layout("Profile", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="profile">
<h1>Profile</h1>
`)
		if err != nil {
			return err
		}
		if saved {
			_, err = io.WriteString(w, `<p class="flash">Profile saved</p>
`)
			if err != nil {
				return err
			}
		}
		if errMsg != "" {
			_, err = fmt.Fprintf(w, `<p class="flash error">%s</p>
`, esc(errMsg))
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `<form method="post" action="/app/profile">
`)
		if err != nil {
			return err
		}
		err = csrfField(ctx, w)
		if err != nil {
			return err
		}

		checked := func(on bool) string {
			if on {
				return " checked"
			}
			return ""
		}
		n := profile.Notifications

		_, err = fmt.Fprintf(w, `<input type="hidden" name="_method" value="PUT">
<label>Name <input type="text" name="name" value="%s" maxlength="60" required></label>
<label>Treatment start <input type="date" name="start_date" value="%s"></label>
<fieldset>
<legend>Daily goals</legend>
<label>Protein (g) <input type="number" name="protein_goal" value="%.0f" min="0" step="1"></label>
<label>Fiber (g) <input type="number" name="fiber_goal" value="%.0f" min="0" step="1"></label>
</fieldset>
<fieldset>
<legend>Notifications</legend>
<label><input type="checkbox" name="notifications_enabled"%s> Enable notifications</label>
<label><input type="checkbox" name="injection_reminders_enabled"%s> Injection reminders</label>
<label>Times <input type="text" name="injection_reminder_times" value="%s" placeholder="08:00, 20:00"></label>
<label><input type="checkbox" name="nutrition_reminders_enabled"%s> Nutrition reminders</label>
<label>Times <input type="text" name="nutrition_reminder_times" value="%s" placeholder="12:00, 19:00"></label>
</fieldset>
<button type="submit">Save profile</button>
</form>
</section>
`,
			esc(profile.Name), esc(profile.StartDate),
			profile.DailyGoals.Protein, profile.DailyGoals.Fiber,
			checked(n.Enabled),
			checked(n.InjectionReminders.Enabled), esc(strings.Join(n.InjectionReminders.Times, ", ")),
			checked(n.NutritionReminders.Enabled), esc(strings.Join(n.NutritionReminders.Times, ", ")))
		return err
	}))
}
