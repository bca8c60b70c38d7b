package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/monjauro/app/internal/model"
	"github.com/monjauro/app/internal/service"
	"github.com/monjauro/app/internal/ui"
	"github.com/monjauro/app/internal/ui/pages"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Profile()
	if err != nil {
		slog.Error("failed to load profile", "error", err)
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	saved := r.URL.Query().Get("saved") == "1"
	ui.Render(w, r, pages.Profile(*profile, saved, ""))
}

// Update replaces the profile wholesale from the settings form.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	profile := model.UserProfile{
		Name: strings.TrimSpace(r.FormValue("name")),
		DailyGoals: model.DailyGoals{
			Protein: parseGrams(r.FormValue("protein_goal")),
			Fiber:   parseGrams(r.FormValue("fiber_goal")),
		},
		Notifications: model.NotificationSettings{
			Enabled: r.FormValue("notifications_enabled") != "",
			InjectionReminders: model.ReminderGroup{
				Enabled: r.FormValue("injection_reminders_enabled") != "",
				Times:   splitTimes(r.FormValue("injection_reminder_times")),
			},
			NutritionReminders: model.ReminderGroup{
				Enabled: r.FormValue("nutrition_reminders_enabled") != "",
				Times:   splitTimes(r.FormValue("nutrition_reminder_times")),
			},
		},
		StartDate: r.FormValue("start_date"),
	}

	err = h.profileService.Save(profile)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		ui.Render(w, r, pages.Profile(profile, false, err.Error()))
		return
	}

	http.Redirect(w, r, "/app/profile?saved=1", http.StatusSeeOther)
}

// splitTimes parses a comma-separated list of HH:mm times.
func splitTimes(value string) []string {
	times := []string{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			times = append(times, part)
		}
	}
	return times
}
