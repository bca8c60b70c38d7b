package store

import (
	"errors"

	"github.com/monjauro/app/internal/model"
)

// Blob names for the three collections. The file driver uses these as
// file names under the data directory; the original client kept the same
// keys in device-local storage.
const (
	KeyInjections = "monjauro_injections"
	KeyNutrition  = "monjauro_nutrition"
	KeyProfile    = "monjauro_profile"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// InjectionStore persists the injection collection as an ordered sequence.
// Save appends and rewrites the whole collection; callers own identifier
// uniqueness. Reads never fail on absent data: an empty slice is returned.
type InjectionStore interface {
	SaveInjection(rec model.InjectionRecord) error
	Injections() ([]model.InjectionRecord, error)
	// DeleteInjection removes every record matching id. Unknown ids are
	// a no-op, not an error.
	DeleteInjection(id string) error
}

// NutritionStore persists the nutrition collection with the same
// whole-collection semantics as InjectionStore.
type NutritionStore interface {
	SaveNutritionEntry(entry model.NutritionEntry) error
	NutritionEntries() ([]model.NutritionEntry, error)
	DeleteNutritionEntry(id string) error
}

// ProfileStore persists the single profile slot. Profile returns
// ErrProfileNotFound while the slot is uninitialized; Save replaces the
// slot wholesale.
type ProfileStore interface {
	SaveProfile(profile model.UserProfile) error
	Profile() (*model.UserProfile, error)
}

// Store is the full persistence surface, one implementation per driver.
type Store interface {
	InjectionStore
	NutritionStore
	ProfileStore
	Close() error
}
