package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hoopsleague.dev/league/internal/core"
)

// FileStore persists one JSON document per save slot under Dir. It has no
// third-party dependencies and is the store's default backend, matching
// spec.md's "single-user, local saves" framing for a machine with no
// database server running.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir, creating dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, core.NewStorageFailureError("create save directory", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (f *FileStore) path(name core.SaveName) string {
	return filepath.Join(f.Dir, sanitizeName(string(name))+".json")
}

// sanitizeName strips path separators so a save name can never escape Dir.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	return name
}

func (f *FileStore) List() ([]SaveMeta, error) {
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		return nil, core.NewStorageFailureError("list saves", err)
	}

	metas := make([]SaveMeta, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, core.NewStorageFailureError("stat save file", err)
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		metas = append(metas, SaveMeta{Name: core.SaveName(name), UpdatedAt: info.ModTime()})
	}

	sort.Slice(metas, func(i, j int) bool { return metas[i].Name < metas[j].Name })
	return metas, nil
}

func (f *FileStore) Save(name core.SaveName, record SaveRecord) error {
	record.Name = name
	record.SchemaVersion = CurrentSchemaVersion

	buf, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return core.NewStorageFailureError("encode save", err)
	}

	tmp := f.path(name) + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return core.NewStorageFailureError("write save", err)
	}
	if err := os.Rename(tmp, f.path(name)); err != nil {
		return core.NewStorageFailureError("finalize save", err)
	}
	return nil
}

func (f *FileStore) Load(name core.SaveName) (SaveRecord, error) {
	buf, err := os.ReadFile(f.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return SaveRecord{}, core.NewNotFoundError("save", string(name))
		}
		return SaveRecord{}, core.NewStorageFailureError("read save", err)
	}

	var record SaveRecord
	if err := json.Unmarshal(buf, &record); err != nil {
		return SaveRecord{}, core.NewStorageFailureError("decode save", err)
	}
	if record.SchemaVersion > CurrentSchemaVersion {
		return SaveRecord{}, core.NewSchemaMismatchError(string(name), record.SchemaVersion, CurrentSchemaVersion)
	}
	return record, nil
}

func (f *FileStore) Delete(name core.SaveName) error {
	if err := os.Remove(f.path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.NewNotFoundError("save", string(name))
		}
		return core.NewStorageFailureError("delete save", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
