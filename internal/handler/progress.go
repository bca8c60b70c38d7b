package handler

import (
	"log/slog"
	"net/http"

	"github.com/monjauro/app/internal/service"
	"github.com/monjauro/app/internal/ui"
	"github.com/monjauro/app/internal/ui/pages"
)

type ProgressHandler struct {
	tracker        *service.TrackerService
	profileService *service.ProfileService
}

func NewProgressHandler(tracker *service.TrackerService, profileService *service.ProfileService) *ProgressHandler {
	return &ProgressHandler{
		tracker:        tracker,
		profileService: profileService,
	}
}

func (h *ProgressHandler) ProgressPage(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Profile()
	if err != nil {
		slog.Error("failed to load profile", "error", err)
		http.Error(w, "Failed to load progress", http.StatusInternalServerError)
		return
	}

	series, err := h.tracker.WeeklySeries()
	if err != nil {
		slog.Error("failed to load weekly series", "error", err)
		http.Error(w, "Failed to load progress", http.StatusInternalServerError)
		return
	}

	chart := service.BuildWeeklyChart(series, profile.DailyGoals)
	ui.Render(w, r, pages.Progress(chart))
}
