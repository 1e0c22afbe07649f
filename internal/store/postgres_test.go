package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/testutils"
)

// setupPostgresStore starts a Postgres testcontainer, connects a PostgresStore
// against it (which runs its own embedded migrations), and returns a cleanup
// closure that terminates the container.
func setupPostgresStore(t *testing.T) (*PostgresStore, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container, err := testutils.NewPostgresContainer(ctx)
	require.NoError(t, err, "failed to start postgres container")

	ps, err := ConnectPostgres(ctx, container.ConnStr)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("failed to connect store: %v", err)
	}

	cleanup := func() {
		ps.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	}

	return ps, cleanup
}

func TestPostgresStoreSaveLoadRoundTrip(t *testing.T) {
	ps, cleanup := setupPostgresStore(t)
	defer cleanup()

	team := core.NewTeamID()
	record := SaveRecord{
		UserTeamID: team,
		Teams:      []core.Team{{ID: team, City: "Ashford", Name: "Comets"}},
		Season:     core.Season{UserTeamID: team, Year: 2026},
	}

	require.NoError(t, ps.Save("my-franchise", record))

	loaded, err := ps.Load("my-franchise")
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, loaded.SchemaVersion)
	assert.Equal(t, team, loaded.UserTeamID)
	assert.Equal(t, 2026, loaded.Season.Year)
}

func TestPostgresStoreSaveOverwritesExisting(t *testing.T) {
	ps, cleanup := setupPostgresStore(t)
	defer cleanup()

	team := core.NewTeamID()
	require.NoError(t, ps.Save("franchise", SaveRecord{Season: core.Season{UserTeamID: team, Year: 2026}}))
	require.NoError(t, ps.Save("franchise", SaveRecord{Season: core.Season{UserTeamID: team, Year: 2027}}))

	loaded, err := ps.Load("franchise")
	require.NoError(t, err)
	assert.Equal(t, 2027, loaded.Season.Year)

	metas, err := ps.List()
	require.NoError(t, err)
	require.Len(t, metas, 1)
}

func TestPostgresStoreLoadMissingReturnsNotFound(t *testing.T) {
	ps, cleanup := setupPostgresStore(t)
	defer cleanup()

	_, err := ps.Load("ghost")
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
}

func TestPostgresStoreDeleteMissingReturnsNotFound(t *testing.T) {
	ps, cleanup := setupPostgresStore(t)
	defer cleanup()

	err := ps.Delete("ghost")
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
}

func TestPostgresStoreListSortedByName(t *testing.T) {
	ps, cleanup := setupPostgresStore(t)
	defer cleanup()

	require.NoError(t, ps.Save("zeta", SaveRecord{}))
	require.NoError(t, ps.Save("alpha", SaveRecord{}))

	metas, err := ps.List()
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, core.SaveName("alpha"), metas[0].Name)
	assert.Equal(t, core.SaveName("zeta"), metas[1].Name)
}

func TestPostgresStoreDeleteRemovesRecord(t *testing.T) {
	ps, cleanup := setupPostgresStore(t)
	defer cleanup()

	require.NoError(t, ps.Save("throwaway", SaveRecord{}))
	require.NoError(t, ps.Delete("throwaway"))

	_, err := ps.Load("throwaway")
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
}

func TestPostgresStoreSchemaMismatchRejected(t *testing.T) {
	ps, cleanup := setupPostgresStore(t)
	defer cleanup()

	// Insert a row stamped with a schema version newer than this binary
	// understands, as if a future release wrote it directly via SQL.
	payload := fmt.Sprintf(`{"schemaVersion": %d, "name": "future"}`, CurrentSchemaVersion+1)
	_, err := ps.db.Exec(
		`INSERT INTO saves (name, schema_version, payload, updated_at) VALUES ($1, $2, $3, NOW())`,
		"future", CurrentSchemaVersion+1, payload,
	)
	require.NoError(t, err)

	_, err = ps.Load("future")
	require.Error(t, err)
	assert.True(t, core.IsSchemaMismatch(err))
}
