package handler

import (
	"log/slog"
	"net/http"

	"github.com/monjauro/app/internal/service"
	"github.com/monjauro/app/internal/ui"
	"github.com/monjauro/app/internal/ui/pages"
)

type DashboardHandler struct {
	tracker        *service.TrackerService
	profileService *service.ProfileService
	recentLimit    int
}

func NewDashboardHandler(tracker *service.TrackerService, profileService *service.ProfileService, recentLimit int) *DashboardHandler {
	return &DashboardHandler{
		tracker:        tracker,
		profileService: profileService,
		recentLimit:    recentLimit,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Profile()
	if err != nil {
		slog.Error("failed to load profile", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	totals, err := h.tracker.TodayTotals()
	if err != nil {
		slog.Error("failed to load today totals", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	recent, err := h.tracker.RecentInjections(h.recentLimit)
	if err != nil {
		slog.Error("failed to load recent injections", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	entries, err := h.tracker.TodayEntries()
	if err != nil {
		slog.Error("failed to load today entries", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Dashboard(pages.DashboardData{
		Profile:      *profile,
		Totals:       totals,
		Recent:       recent,
		TodayEntries: entries,
	}))
}
