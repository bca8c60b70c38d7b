package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/monjauro/app/internal/service"
)

// Progress renders the weekly chart: seven bars per nutrient, oldest on
// the left, with the week's per-day means underneath.
func Progress(chart service.WeeklyChart) templ.Component {
	return layout("Weekly Progress", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="progress">
<h1>Weekly progress</h1>
`)
		if err != nil {
			return err
		}

		err = chartSection(w, "Protein", chart.Protein, chart.ProteinGoal, chart.MeanProtein)
		if err != nil {
			return err
		}
		err = chartSection(w, "Fiber", chart.Fiber, chart.FiberGoal, chart.MeanFiber)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, "</section>\n")
		return err
	}))
}

func chartSection(w io.Writer, label string, bars []service.ChartBar, goal, mean float64) error {
	_, err := fmt.Fprintf(w, `<div class="chart">
<h2>%s</h2>
`, esc(label))
	if err != nil {
		return err
	}
	for _, bar := range bars {
		_, err = fmt.Fprintf(w, `<div class="bar-row">
<span class="bar-date">%s</span>
<div class="bar" style="width: %.1f%%"></div>
<span class="bar-value">%.1fg</span>
</div>
`, esc(bar.Date), bar.Percent, bar.Value)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, `<p class="chart-summary">Daily average: %.1fg · Goal: %.0fg</p>
</div>
`, mean, goal)
	return err
}
