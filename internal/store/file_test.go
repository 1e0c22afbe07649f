package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
)

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	team := core.NewTeamID()
	record := SaveRecord{
		UserTeamID: team,
		Teams:      []core.Team{{ID: team, City: "Ashford", Name: "Comets"}},
		Season:     core.Season{UserTeamID: team, Year: 2026},
	}

	require.NoError(t, fs.Save("my-franchise", record))

	loaded, err := fs.Load("my-franchise")
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, loaded.SchemaVersion)
	assert.Equal(t, team, loaded.UserTeamID)
	assert.Equal(t, 2026, loaded.Season.Year)
}

func TestFileStoreLoadMissingReturnsNotFound(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Load("ghost")
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
}

func TestFileStoreListSortedByName(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Save("zeta", SaveRecord{}))
	require.NoError(t, fs.Save("alpha", SaveRecord{}))

	metas, err := fs.List()
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, core.SaveName("alpha"), metas[0].Name)
	assert.Equal(t, core.SaveName("zeta"), metas[1].Name)
}

func TestFileStoreDeleteMissingReturnsNotFound(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	err = fs.Delete("ghost")
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
}

func TestFileStoreSchemaMismatchRejected(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	// Write a record stamped with a schema version newer than this binary
	// understands, as if a future release wrote it.
	future := fmt.Sprintf(`{"schemaVersion": %d, "name": "future"}`, CurrentSchemaVersion+1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "future.json"), []byte(future), 0o644))

	_, err = fs.Load("future")
	require.Error(t, err)
	assert.True(t, core.IsSchemaMismatch(err))
}
