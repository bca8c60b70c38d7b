package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/monjauro/app/internal/service"
)

type NutritionHandler struct {
	tracker *service.TrackerService
}

func NewNutritionHandler(tracker *service.TrackerService) *NutritionHandler {
	return &NutritionHandler{tracker: tracker}
}

// Create logs a meal from the dashboard form. Numeric fields that do not
// parse are recorded as zero rather than rejecting the entry.
func (h *NutritionHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	_, err = h.tracker.LogMeal(service.MealInput{
		MealType:    r.FormValue("meal_type"),
		Description: r.FormValue("description"),
		Protein:     parseGrams(r.FormValue("protein")),
		Fiber:       parseGrams(r.FormValue("fiber")),
		Calories:    parseCalories(r.FormValue("calories")),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidMealType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("failed to log meal", "error", err)
		http.Error(w, "Failed to save meal", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
}

func (h *NutritionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.tracker.DeleteMeal(id)
	if err != nil {
		slog.Error("failed to delete nutrition entry", "error", err, "id", id)
		http.Error(w, "Failed to delete entry", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
}

// parseGrams maps a numeric form field to its value, or zero when empty
// or unparsable.
func parseGrams(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

// parseCalories is parseGrams for the optional calories field: empty or
// unparsable input means the field was not recorded at all.
func parseCalories(value string) *float64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		return nil
	}
	return &parsed
}
