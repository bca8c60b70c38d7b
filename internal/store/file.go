package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/monjauro/app/internal/model"
)

// FileStore keeps each collection as one JSON blob file under dir.
// Every save or delete is a synchronous read-modify-write of the whole
// blob; the temp-file-plus-rename write gives file-level atomic overwrite.
//
// All access happens from the request-serving process, so there is no
// multi-writer coordination beyond that.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// readBlob decodes the named blob into out. A missing file leaves out
// untouched. A file that exists but does not decode is treated as empty:
// the warning carries the path and decode error so corruption is visible
// in logs rather than silently swallowed.
func (s *FileStore) readBlob(key string, out any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	err = json.Unmarshal(data, out)
	if err != nil {
		slog.Warn("store: corrupt blob, treating as empty",
			"path", s.path(key), "error", err)
	}
	return nil
}

func (s *FileStore) writeBlob(key string, data any) error {
	path := s.path(key)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(data)
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	err = f.Sync()
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync %s: %w", key, err)
	}

	err = f.Close()
	if err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

func (s *FileStore) SaveInjection(rec model.InjectionRecord) error {
	records, err := s.Injections()
	if err != nil {
		return err
	}
	records = append(records, rec)
	return s.writeBlob(KeyInjections, records)
}

func (s *FileStore) Injections() ([]model.InjectionRecord, error) {
	records := []model.InjectionRecord{}
	err := s.readBlob(KeyInjections, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *FileStore) DeleteInjection(id string) error {
	records, err := s.Injections()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return s.writeBlob(KeyInjections, kept)
}

func (s *FileStore) SaveNutritionEntry(entry model.NutritionEntry) error {
	entries, err := s.NutritionEntries()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return s.writeBlob(KeyNutrition, entries)
}

func (s *FileStore) NutritionEntries() ([]model.NutritionEntry, error) {
	entries := []model.NutritionEntry{}
	err := s.readBlob(KeyNutrition, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *FileStore) DeleteNutritionEntry(id string) error {
	entries, err := s.NutritionEntries()
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	return s.writeBlob(KeyNutrition, kept)
}

func (s *FileStore) SaveProfile(profile model.UserProfile) error {
	return s.writeBlob(KeyProfile, profile)
}

func (s *FileStore) Profile() (*model.UserProfile, error) {
	data, err := os.ReadFile(s.path(KeyProfile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", KeyProfile, err)
	}

	var profile model.UserProfile
	err = json.Unmarshal(data, &profile)
	if err != nil {
		// A profile slot that no longer decodes counts as absent, so the
		// initializer can re-seed it on the next start.
		slog.Warn("store: corrupt profile blob, treating as absent",
			"path", s.path(KeyProfile), "error", err)
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
