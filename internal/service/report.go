package service

import (
	"sort"
	"time"

	"github.com/monjauro/app/internal/model"
)

const dateLayout = "2006-01-02"

// DefaultRecentLimit is how many injections the dashboard shows.
const DefaultRecentLimit = 5

// DayTotals is the protein/fiber sum for one calendar day.
type DayTotals struct {
	Protein float64
	Fiber   float64
}

// DaySummary is one day of the weekly series.
type DaySummary struct {
	Date    string
	Protein float64
	Fiber   float64
}

// TodayTotals sums protein and fiber over entries whose date equals day.
// No matching entries yields zero totals.
func TodayTotals(entries []model.NutritionEntry, day time.Time) DayTotals {
	date := day.Format(dateLayout)

	var totals DayTotals
	for _, entry := range entries {
		if entry.Date == date {
			totals.Protein += entry.Protein
			totals.Fiber += entry.Fiber
		}
	}
	return totals
}

// WeeklySeries returns exactly 7 day summaries spanning [today-6, today],
// oldest to newest. Days without entries appear zero-valued rather than
// being omitted.
func WeeklySeries(entries []model.NutritionEntry, today time.Time) []DaySummary {
	series := make([]DaySummary, 7)
	for i := range series {
		day := today.AddDate(0, 0, i-6)
		series[i].Date = day.Format(dateLayout)
	}

	byDate := make(map[string]*DaySummary, 7)
	for i := range series {
		byDate[series[i].Date] = &series[i]
	}

	for _, entry := range entries {
		day, ok := byDate[entry.Date]
		if !ok {
			continue
		}
		day.Protein += entry.Protein
		day.Fiber += entry.Fiber
	}

	return series
}

// RecentInjections returns up to limit records sorted by combined
// date+time, most recent first. The sort is stable, so records sharing a
// timestamp keep their insertion order. A limit larger than the
// collection returns everything.
func RecentInjections(records []model.InjectionRecord, limit int) []model.InjectionRecord {
	sorted := make([]model.InjectionRecord, len(records))
	copy(sorted, records)

	// YYYY-MM-DD HH:mm compares chronologically as a string
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date+" "+sorted[i].Time > sorted[j].Date+" "+sorted[j].Time
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

// ChartBar is one bar of the weekly progress chart. Percent is the bar
// width relative to the chart scale, capped at 100.
type ChartBar struct {
	Date    string
	Value   float64
	Percent float64
}

// WeeklyChart is the weekly series prepared for rendering: per-day bars
// for protein and fiber plus the week's per-day means (zero-days count in
// the denominator).
type WeeklyChart struct {
	Protein     []ChartBar
	Fiber       []ChartBar
	ProteinGoal float64
	FiberGoal   float64
	MeanProtein float64
	MeanFiber   float64
}

// BuildWeeklyChart scales each bar by max(week peak, daily goal) so the
// goal never exceeds the chart width and one outlier day cannot flatten
// the rest of the week.
func BuildWeeklyChart(series []DaySummary, goals model.DailyGoals) WeeklyChart {
	chart := WeeklyChart{
		Protein:     make([]ChartBar, len(series)),
		Fiber:       make([]ChartBar, len(series)),
		ProteinGoal: goals.Protein,
		FiberGoal:   goals.Fiber,
	}

	proteinScale := goals.Protein
	fiberScale := goals.Fiber
	for _, day := range series {
		if day.Protein > proteinScale {
			proteinScale = day.Protein
		}
		if day.Fiber > fiberScale {
			fiberScale = day.Fiber
		}
	}

	var proteinSum, fiberSum float64
	for i, day := range series {
		chart.Protein[i] = ChartBar{Date: day.Date, Value: day.Protein, Percent: barPercent(day.Protein, proteinScale)}
		chart.Fiber[i] = ChartBar{Date: day.Date, Value: day.Fiber, Percent: barPercent(day.Fiber, fiberScale)}
		proteinSum += day.Protein
		fiberSum += day.Fiber
	}

	if len(series) > 0 {
		chart.MeanProtein = proteinSum / float64(len(series))
		chart.MeanFiber = fiberSum / float64(len(series))
	}
	return chart
}

func barPercent(value, scale float64) float64 {
	if scale <= 0 {
		return 0
	}
	percent := value / scale * 100
	if percent > 100 {
		percent = 100
	}
	return percent
}
