package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/monjauro/app/internal/model"
	"github.com/monjauro/app/internal/store"
	"github.com/monjauro/app/internal/validation"
)

// ProfileService owns the single profile slot.
type ProfileService struct {
	profiles store.ProfileStore
	now      func() time.Time
}

func NewProfileService(profiles store.ProfileStore) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		now:      time.Now,
	}
}

// Profile returns the stored profile, or store.ErrProfileNotFound while
// the device has not been onboarded.
func (s *ProfileService) Profile() (*model.UserProfile, error) {
	return s.profiles.Profile()
}

// Save replaces the profile wholesale after validating its fields.
func (s *ProfileService) Save(profile model.UserProfile) error {
	err := validation.ValidateName(profile.Name)
	if err != nil {
		return err
	}
	if profile.DailyGoals.Protein < 0 || profile.DailyGoals.Fiber < 0 {
		return fmt.Errorf("daily goals must not be negative")
	}
	err = validation.ValidateDate(profile.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	for _, t := range profile.Notifications.InjectionReminders.Times {
		err = validation.ValidateClockTime(t)
		if err != nil {
			return fmt.Errorf("invalid injection reminder time: %w", err)
		}
	}
	for _, t := range profile.Notifications.NutritionReminders.Times {
		err = validation.ValidateClockTime(t)
		if err != nil {
			return fmt.Errorf("invalid nutrition reminder time: %w", err)
		}
	}

	return s.profiles.SaveProfile(profile)
}

// InitializeDefault writes the default profile if and only if none
// exists. Safe to call on every application start.
func (s *ProfileService) InitializeDefault() error {
	_, err := s.profiles.Profile()
	if err == nil {
		return nil
	}
	if err != store.ErrProfileNotFound {
		return err
	}

	profile := model.DefaultProfile(s.now().Format(dateLayout))
	err = s.profiles.SaveProfile(profile)
	if err != nil {
		return fmt.Errorf("failed to initialize default profile: %w", err)
	}

	slog.Info("default profile initialized", "start_date", profile.StartDate)
	return nil
}
