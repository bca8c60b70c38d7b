package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monjauro/app/internal/model"
)

func TestMemoryStoreMirrorsFileStoreSemantics(t *testing.T) {
	s := NewMemoryStore()

	records, err := s.Injections()
	require.NoError(t, err)
	require.Empty(t, records)

	require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: "a"}))
	require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: "b"}))
	require.NoError(t, s.DeleteInjection("a"))

	records, err = s.Injections()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "b", records[0].ID)

	_, err = s.Profile()
	require.ErrorIs(t, err, ErrProfileNotFound)

	require.NoError(t, s.SaveProfile(model.DefaultProfile("2026-08-30")))
	profile, err := s.Profile()
	require.NoError(t, err)
	require.Equal(t, "User", profile.Name)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SaveInjection(model.InjectionRecord{ID: "a", Dosage: "5mg"}))

	records, err := s.Injections()
	require.NoError(t, err)
	records[0].Dosage = "mutated"

	again, err := s.Injections()
	require.NoError(t, err)
	require.Equal(t, "5mg", again[0].Dosage)
}
