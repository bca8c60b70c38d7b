package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/monjauro/app/internal/model"
	"github.com/monjauro/app/internal/store"
)

func newTestProfileService(t *testing.T) (*ProfileService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	svc := NewProfileService(st)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	}
	return svc, st
}

func TestInitializeDefaultSeedsEmptySlot(t *testing.T) {
	svc, _ := newTestProfileService(t)

	require.NoError(t, svc.InitializeDefault())

	profile, err := svc.Profile()
	require.NoError(t, err)
	require.Equal(t, "User", profile.Name)
	require.Equal(t, float64(model.DefaultProteinGoal), profile.DailyGoals.Protein)
	require.Equal(t, float64(model.DefaultFiberGoal), profile.DailyGoals.Fiber)
	require.Equal(t, "2026-08-30", profile.StartDate)
	require.True(t, profile.Notifications.Enabled)
	require.Equal(t, []string{"08:00", "20:00"}, profile.Notifications.InjectionReminders.Times)
	require.Equal(t, []string{"12:00", "19:00"}, profile.Notifications.NutritionReminders.Times)
}

func TestInitializeDefaultLeavesExistingProfileAlone(t *testing.T) {
	svc, st := newTestProfileService(t)

	existing := model.DefaultProfile("2026-01-01")
	existing.Name = "Maria"
	require.NoError(t, st.SaveProfile(existing))

	require.NoError(t, svc.InitializeDefault())

	profile, err := svc.Profile()
	require.NoError(t, err)
	require.Equal(t, "Maria", profile.Name)
	require.Equal(t, "2026-01-01", profile.StartDate)
}

func TestProfileSurfacesNotFound(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.Profile()
	require.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestSaveValidProfile(t *testing.T) {
	svc, _ := newTestProfileService(t)

	profile := model.DefaultProfile("2026-08-30")
	profile.Name = "Gabriel"
	profile.DailyGoals.Protein = 110

	require.NoError(t, svc.Save(profile))

	got, err := svc.Profile()
	require.NoError(t, err)
	require.Equal(t, "Gabriel", got.Name)
	require.Equal(t, 110.0, got.DailyGoals.Protein)
}

func TestSaveRejectsEmptyName(t *testing.T) {
	svc, _ := newTestProfileService(t)

	profile := model.DefaultProfile("2026-08-30")
	profile.Name = "   "
	require.Error(t, svc.Save(profile))
}

func TestSaveRejectsNegativeGoals(t *testing.T) {
	svc, _ := newTestProfileService(t)

	profile := model.DefaultProfile("2026-08-30")
	profile.DailyGoals.Fiber = -1
	require.Error(t, svc.Save(profile))
}

func TestSaveRejectsMalformedStartDate(t *testing.T) {
	svc, _ := newTestProfileService(t)

	profile := model.DefaultProfile("2026-08-30")
	profile.StartDate = "30/08/2026"
	require.Error(t, svc.Save(profile))
}

func TestSaveRejectsMalformedReminderTime(t *testing.T) {
	svc, _ := newTestProfileService(t)

	profile := model.DefaultProfile("2026-08-30")
	profile.Notifications.NutritionReminders.Times = []string{"12:00", "7pm"}
	require.Error(t, svc.Save(profile))
}
