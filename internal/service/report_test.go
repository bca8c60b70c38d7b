package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/monjauro/app/internal/model"
)

var testDay = time.Date(2026, 8, 30, 14, 0, 0, 0, time.Local)

func TestTodayTotalsSumsMatchingDateOnly(t *testing.T) {
	entries := []model.NutritionEntry{
		{Date: "2026-08-30", Protein: 30, Fiber: 5},
		{Date: "2026-08-30", Protein: 25.5, Fiber: 7.5},
		{Date: "2026-08-29", Protein: 100, Fiber: 100},
	}

	totals := TodayTotals(entries, testDay)
	require.Equal(t, 55.5, totals.Protein)
	require.Equal(t, 12.5, totals.Fiber)
}

func TestTodayTotalsEmpty(t *testing.T) {
	totals := TodayTotals(nil, testDay)
	require.Zero(t, totals.Protein)
	require.Zero(t, totals.Fiber)
}

func TestWeeklySeriesAlwaysSevenDaysOldestFirst(t *testing.T) {
	series := WeeklySeries(nil, testDay)

	require.Len(t, series, 7)
	require.Equal(t, "2026-08-24", series[0].Date)
	require.Equal(t, "2026-08-30", series[6].Date)
	for _, day := range series {
		require.Zero(t, day.Protein)
		require.Zero(t, day.Fiber)
	}
}

func TestWeeklySeriesZeroFillsGapsAndIgnoresOutOfRange(t *testing.T) {
	entries := []model.NutritionEntry{
		{Date: "2026-08-24", Protein: 40, Fiber: 10},
		{Date: "2026-08-24", Protein: 20, Fiber: 5},
		{Date: "2026-08-30", Protein: 60, Fiber: 12},
		{Date: "2026-08-23", Protein: 999, Fiber: 999}, // day before the window
		{Date: "2026-09-01", Protein: 999, Fiber: 999}, // day after the window
	}

	series := WeeklySeries(entries, testDay)

	require.Equal(t, 60.0, series[0].Protein)
	require.Equal(t, 15.0, series[0].Fiber)
	require.Equal(t, 60.0, series[6].Protein)
	for i := 1; i < 6; i++ {
		require.Zero(t, series[i].Protein, "day %s", series[i].Date)
	}
}

func TestRecentInjectionsSortsByDateAndTimeDescending(t *testing.T) {
	records := []model.InjectionRecord{
		{ID: "old", Date: "2026-08-20", Time: "09:00"},
		{ID: "newest", Date: "2026-08-30", Time: "20:00"},
		{ID: "same-day-earlier", Date: "2026-08-30", Time: "08:00"},
	}

	recent := RecentInjections(records, 10)
	require.Len(t, recent, 3)
	require.Equal(t, "newest", recent[0].ID)
	require.Equal(t, "same-day-earlier", recent[1].ID)
	require.Equal(t, "old", recent[2].ID)
}

func TestRecentInjectionsLimit(t *testing.T) {
	records := []model.InjectionRecord{
		{ID: "a", Date: "2026-08-28", Time: "08:00"},
		{ID: "b", Date: "2026-08-29", Time: "08:00"},
		{ID: "c", Date: "2026-08-30", Time: "08:00"},
	}

	recent := RecentInjections(records, 2)
	require.Len(t, recent, 2)
	require.Equal(t, "c", recent[0].ID)

	require.Empty(t, RecentInjections(records, 0))
	require.Len(t, RecentInjections(records, 100), 3)
}

func TestRecentInjectionsStableOnEqualTimestamps(t *testing.T) {
	records := []model.InjectionRecord{
		{ID: "logged-first", Date: "2026-08-30", Time: "08:00"},
		{ID: "logged-second", Date: "2026-08-30", Time: "08:00"},
	}

	recent := RecentInjections(records, 2)
	require.Equal(t, "logged-first", recent[0].ID)
	require.Equal(t, "logged-second", recent[1].ID)
}

func TestRecentInjectionsDoesNotMutateInput(t *testing.T) {
	records := []model.InjectionRecord{
		{ID: "a", Date: "2026-08-28", Time: "08:00"},
		{ID: "b", Date: "2026-08-30", Time: "08:00"},
	}

	_ = RecentInjections(records, 2)
	require.Equal(t, "a", records[0].ID)
}

func TestBuildWeeklyChartScalesByGoalWhenGoalIsPeak(t *testing.T) {
	series := []DaySummary{
		{Date: "2026-08-24", Protein: 40, Fiber: 10},
		{Date: "2026-08-25", Protein: 80, Fiber: 25},
	}
	chart := BuildWeeklyChart(series, model.DailyGoals{Protein: 80, Fiber: 25})

	require.Equal(t, 50.0, chart.Protein[0].Percent)
	require.Equal(t, 100.0, chart.Protein[1].Percent)
	require.Equal(t, 40.0, chart.Fiber[0].Percent)
}

func TestBuildWeeklyChartScalesByPeakAboveGoal(t *testing.T) {
	series := []DaySummary{
		{Date: "2026-08-24", Protein: 160},
		{Date: "2026-08-25", Protein: 80},
	}
	chart := BuildWeeklyChart(series, model.DailyGoals{Protein: 80, Fiber: 25})

	// Peak day fills the chart; the goal-hitting day sits at half
	require.Equal(t, 100.0, chart.Protein[0].Percent)
	require.Equal(t, 50.0, chart.Protein[1].Percent)
}

func TestBuildWeeklyChartMeansIncludeZeroDays(t *testing.T) {
	series := make([]DaySummary, 7)
	series[0] = DaySummary{Date: "2026-08-24", Protein: 70, Fiber: 14}

	chart := BuildWeeklyChart(series, model.DailyGoals{Protein: 80, Fiber: 25})
	require.Equal(t, 10.0, chart.MeanProtein)
	require.Equal(t, 2.0, chart.MeanFiber)
}

func TestBuildWeeklyChartZeroGoalsAndValues(t *testing.T) {
	series := make([]DaySummary, 7)
	chart := BuildWeeklyChart(series, model.DailyGoals{})

	for _, bar := range chart.Protein {
		require.Zero(t, bar.Percent)
	}
	require.Zero(t, chart.MeanProtein)
}
