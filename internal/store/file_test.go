package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monjauro/app/internal/model"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestFileStoreInjectionRoundTrip(t *testing.T) {
	s := newTestFileStore(t)

	records, err := s.Injections()
	require.NoError(t, err)
	require.Empty(t, records)

	rec := model.InjectionRecord{
		ID:         "a1",
		Date:       "2026-08-30",
		Time:       "08:15",
		Medication: "Mounjaro",
		Dosage:     "2.5mg",
		Site:       model.SiteAbdomen,
		Notes:      "left side",
	}
	require.NoError(t, s.SaveInjection(rec))

	records, err = s.Injections()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, rec, records[0])
}

func TestFileStoreSavePreservesOrder(t *testing.T) {
	s := newTestFileStore(t)

	for _, id := range []string{"first", "second", "third"} {
		require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: id, Dosage: "5mg"}))
	}

	records, err := s.Injections()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "first", records[0].ID)
	require.Equal(t, "third", records[2].ID)
}

func TestFileStoreDeleteInjection(t *testing.T) {
	s := newTestFileStore(t)

	require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: "keep"}))
	require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: "drop"}))

	require.NoError(t, s.DeleteInjection("drop"))

	records, err := s.Injections()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "keep", records[0].ID)
}

func TestFileStoreDeleteUnknownIDIsNoop(t *testing.T) {
	s := newTestFileStore(t)

	require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: "only"}))
	require.NoError(t, s.DeleteInjection("missing"))

	records, err := s.Injections()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestFileStoreCorruptBlobTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, KeyInjections+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	records, err := s.Injections()
	require.NoError(t, err)
	require.Empty(t, records)

	// The next save replaces the corrupt blob with a valid one
	require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: "fresh"}))
	records, err = s.Injections()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestFileStoreNutritionRoundTrip(t *testing.T) {
	s := newTestFileStore(t)

	calories := 450.0
	entry := model.NutritionEntry{
		ID:          "n1",
		Date:        "2026-08-30",
		MealType:    model.MealLunch,
		Protein:     32.5,
		Fiber:       8,
		Calories:    &calories,
		Description: "chicken and rice",
	}
	require.NoError(t, s.SaveNutritionEntry(entry))

	entries, err := s.NutritionEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, entry, entries[0])

	require.NoError(t, s.DeleteNutritionEntry("n1"))
	entries, err = s.NutritionEntries()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFileStoreProfileAbsentUntilSaved(t *testing.T) {
	s := newTestFileStore(t)

	_, err := s.Profile()
	require.ErrorIs(t, err, ErrProfileNotFound)

	profile := model.DefaultProfile("2026-08-30")
	require.NoError(t, s.SaveProfile(profile))

	got, err := s.Profile()
	require.NoError(t, err)
	require.Equal(t, profile, *got)
}

func TestFileStoreProfileReplacedWholesale(t *testing.T) {
	s := newTestFileStore(t)

	require.NoError(t, s.SaveProfile(model.DefaultProfile("2026-08-01")))

	updated := model.DefaultProfile("2026-08-01")
	updated.Name = "Maria"
	updated.DailyGoals.Protein = 120
	updated.Notifications.Enabled = false
	require.NoError(t, s.SaveProfile(updated))

	got, err := s.Profile()
	require.NoError(t, err)
	require.Equal(t, "Maria", got.Name)
	require.Equal(t, 120.0, got.DailyGoals.Protein)
	require.False(t, got.Notifications.Enabled)
}

func TestFileStoreCorruptProfileTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, KeyProfile+".json")
	require.NoError(t, os.WriteFile(path, []byte("####"), 0644))

	_, err = s.Profile()
	require.ErrorIs(t, err, ErrProfileNotFound)
}
