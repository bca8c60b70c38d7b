package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/monjauro/app/internal/model"
	"github.com/monjauro/app/internal/service"
)

// DashboardData is everything the dashboard renders: today's nutrition
// totals against the profile goals, the latest injections and today's
// meals, plus the logging forms.
type DashboardData struct {
	Profile      model.UserProfile
	Totals       service.DayTotals
	Recent       []model.InjectionRecord
	TodayEntries []model.NutritionEntry
}

func Dashboard(data DashboardData) templ.Component {
	return layout("Dashboard", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="greeting"><h1>Hello, %s</h1></section>
<section class="totals">
<article class="total"><h2>Protein today</h2><p>%.1fg <span>of %.0fg</span></p></article>
<article class="total"><h2>Fiber today</h2><p>%.1fg <span>of %.0fg</span></p></article>
</section>
`, esc(data.Profile.Name),
			data.Totals.Protein, data.Profile.DailyGoals.Protein,
			data.Totals.Fiber, data.Profile.DailyGoals.Fiber)
		if err != nil {
			return err
		}

		err = injectionForm(ctx, w)
		if err != nil {
			return err
		}
		err = recentInjections(ctx, w, data.Recent)
		if err != nil {
			return err
		}
		err = nutritionForm(ctx, w)
		if err != nil {
			return err
		}
		return todayMeals(ctx, w, data.TodayEntries)
	}))
}

func injectionForm(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, `<section class="log-injection">
<h2>Log injection</h2>
<form method="post" action="/app/injections" enctype="multipart/form-data">
`)
	if err != nil {
		return err
	}
	err = csrfField(ctx, w)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, `<label>Medication <select name="medication">`)
	if err != nil {
		return err
	}
	for _, med := range model.Medications {
		_, err = fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(med), esc(med))
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, `</select></label>
<label>Dosage <input type="text" name="dosage" placeholder="2.5mg" required></label>
<label>Site <select name="site"><option value="">Not recorded</option>`)
	if err != nil {
		return err
	}
	for _, site := range model.Sites {
		_, err = fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(site), esc(siteLabel(site)))
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, `</select></label>
<label>Notes <textarea name="notes"></textarea></label>
<label>Photo <input type="file" name="photo" accept="image/jpeg,image/png,image/webp"></label>
<button type="submit">Save injection</button>
</form>
</section>
`)
	return err
}

func siteLabel(site string) string {
	switch site {
	case model.SiteAbdomen:
		return "Abdomen"
	case model.SiteThigh:
		return "Thigh"
	case model.SiteArm:
		return "Arm"
	case model.SiteGlute:
		return "Glute"
	}
	return site
}

func recentInjections(ctx context.Context, w io.Writer, records []model.InjectionRecord) error {
	_, err := io.WriteString(w, `<section class="recent-injections">
<h2>Recent injections</h2>
`)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		_, err = io.WriteString(w, `<p class="empty">No injections logged yet</p>
</section>
`)
		return err
	}

	_, err = io.WriteString(w, "<ul>\n")
	if err != nil {
		return err
	}
	for _, rec := range records {
		_, err = fmt.Fprintf(w, `<li>
<span class="when">%s %s</span>
<span class="what">%s %s</span>
`, esc(rec.Date), esc(rec.Time), esc(rec.Medication), esc(rec.Dosage))
		if err != nil {
			return err
		}
		if rec.Site != "" {
			_, err = fmt.Fprintf(w, `<span class="site">%s</span>
`, esc(siteLabel(rec.Site)))
			if err != nil {
				return err
			}
		}
		if rec.PhotoURL != "" {
			_, err = fmt.Fprintf(w, `<img src="%s" alt="Injection photo" class="thumb">
`, esc(rec.PhotoURL))
			if err != nil {
				return err
			}
		}
		err = deleteButton(ctx, w, "/app/injections/"+rec.ID)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "</li>\n")
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, `</ul>
</section>
`)
	return err
}

func nutritionForm(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, `<section class="log-meal">
<h2>Log meal</h2>
<form method="post" action="/app/nutrition">
`)
	if err != nil {
		return err
	}
	err = csrfField(ctx, w)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, `<label>Meal <select name="meal_type">`)
	if err != nil {
		return err
	}
	for _, meal := range model.MealTypes {
		_, err = fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(meal), esc(model.MealTypeLabel(meal)))
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, `</select></label>
<label>Description <input type="text" name="description"></label>
<label>Protein (g) <input type="number" name="protein" step="0.1" min="0"></label>
<label>Fiber (g) <input type="number" name="fiber" step="0.1" min="0"></label>
<label>Calories <input type="number" name="calories" step="1" min="0"></label>
<button type="submit">Save meal</button>
</form>
</section>
`)
	return err
}

func todayMeals(ctx context.Context, w io.Writer, entries []model.NutritionEntry) error {
	_, err := io.WriteString(w, `<section class="today-meals">
<h2>Today's meals</h2>
`)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err = io.WriteString(w, `<p class="empty">Nothing logged today</p>
</section>
`)
		return err
	}

	_, err = io.WriteString(w, "<ul>\n")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		_, err = fmt.Fprintf(w, `<li>
<span class="meal">%s</span>
<span class="desc">%s</span>
<span class="macros">%.1fg protein · %.1fg fiber`,
			esc(model.MealTypeLabel(entry.MealType)), esc(entry.Description),
			entry.Protein, entry.Fiber)
		if err != nil {
			return err
		}
		if entry.Calories != nil {
			_, err = fmt.Fprintf(w, ` · %.0f kcal`, *entry.Calories)
			if err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, "</span>\n")
		if err != nil {
			return err
		}
		err = deleteButton(ctx, w, "/app/nutrition/"+entry.ID)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "</li>\n")
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, `</ul>
</section>
`)
	return err
}

// deleteButton renders a small form that issues a DELETE via the
// _method override field.
func deleteButton(ctx context.Context, w io.Writer, action string) error {
	_, err := fmt.Fprintf(w, `<form method="post" action="%s" class="inline">`, esc(action))
	if err != nil {
		return err
	}
	err = csrfField(ctx, w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, `<input type="hidden" name="_method" value="DELETE"><button type="submit" class="danger">Delete</button></form>
`)
	return err
}
