package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monjauro/app/internal/model"
)

func newTestDBStore(t *testing.T) *DBStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := NewDBStore("sqlite", path+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDBStoreInjectionRoundTrip(t *testing.T) {
	s := newTestDBStore(t)

	rec := model.InjectionRecord{
		ID:         "a1",
		Date:       "2026-08-30",
		Time:       "08:15",
		Medication: "Mounjaro",
		Dosage:     "2.5mg",
		Site:       model.SiteAbdomen,
		Notes:      "left side",
		PhotoURL:   "data:image/png;base64,AAAA",
	}
	require.NoError(t, s.SaveInjection(rec))

	records, err := s.Injections()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, rec, records[0])
}

func TestDBStoreKeepsInsertionOrder(t *testing.T) {
	s := newTestDBStore(t)

	for _, id := range []string{"first", "second", "third"} {
		require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: id, Date: "2026-08-30", Time: "08:00", Dosage: "5mg"}))
	}

	records, err := s.Injections()
	require.NoError(t, err)
	require.Equal(t, "first", records[0].ID)
	require.Equal(t, "third", records[2].ID)
}

func TestDBStoreDeleteUnknownIDIsNoop(t *testing.T) {
	s := newTestDBStore(t)

	require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: "only", Dosage: "5mg"}))
	require.NoError(t, s.DeleteInjection("missing"))
	require.NoError(t, s.DeleteInjection("only"))

	records, err := s.Injections()
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestDBStoreNutritionRoundTrip(t *testing.T) {
	s := newTestDBStore(t)

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

	// Calories stays absent when never recorded
	require.NoError(t, s.SaveNutritionEntry(model.NutritionEntry{ID: "n2", Date: "2026-08-30", MealType: model.MealSnack}))
	entries, err = s.NutritionEntries()
	require.NoError(t, err)
	require.Nil(t, entries[1].Calories)
}

func TestDBStoreProfileSingleton(t *testing.T) {
	s := newTestDBStore(t)

	_, err := s.Profile()
	require.ErrorIs(t, err, ErrProfileNotFound)

	profile := model.DefaultProfile("2026-08-30")
	require.NoError(t, s.SaveProfile(profile))

	got, err := s.Profile()
	require.NoError(t, err)
	require.Equal(t, profile, *got)

	// Second save replaces, never duplicates
	profile.Name = "Maria"
	require.NoError(t, s.SaveProfile(profile))

	got, err = s.Profile()
	require.NoError(t, err)
	require.Equal(t, "Maria", got.Name)
}

func TestDBStoreMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := NewDBStore("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: "kept", Dosage: "5mg"}))
	require.NoError(t, s.Close())

	// Reopening runs goose.Up again against an up-to-date schema
	s, err = NewDBStore("sqlite", path)
	require.NoError(t, err)
	defer s.Close()

	records, err := s.Injections()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
