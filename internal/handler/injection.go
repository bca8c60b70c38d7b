package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/monjauro/app/internal/service"
	"github.com/monjauro/app/internal/validation"
)

type InjectionHandler struct {
	tracker *service.TrackerService
}

func NewInjectionHandler(tracker *service.TrackerService) *InjectionHandler {
	return &InjectionHandler{tracker: tracker}
}

// Create logs a new injection from the dashboard form. An optional photo
// upload is embedded in the record as a base64 data URI.
func (h *InjectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(validation.MaxPhotoSize)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	photoURL, err := h.photoDataURI(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = h.tracker.LogInjection(service.InjectionInput{
		Medication: r.FormValue("medication"),
		Dosage:     r.FormValue("dosage"),
		Site:       r.FormValue("site"),
		Notes:      r.FormValue("notes"),
		PhotoURL:   photoURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrDosageRequired) || errors.Is(err, service.ErrInvalidSite) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("failed to log injection", "error", err)
		http.Error(w, "Failed to save injection", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
}

func (h *InjectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.tracker.DeleteInjection(id)
	if err != nil {
		slog.Error("failed to delete injection", "error", err, "id", id)
		http.Error(w, "Failed to delete injection", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
}

// photoDataURI reads the optional photo upload and returns it as a data
// URI, or "" when no photo was attached.
func (h *InjectionHandler) photoDataURI(r *http.Request) (string, error) {
	file, header, err := r.FormFile("photo")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	mimeType, err := validation.ValidatePhoto(header)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
