// Package store implements the save store (C10): whole-state snapshots
// keyed by a save name, with list/save/load/delete operations. Two
// backends are provided: FileStore (plain JSON files, zero dependencies,
// the default) and PostgresStore (a `saves` table via pgx, grounded on
// the same embedded-migration pattern the teacher's internal/db package
// uses for its own schema).
package store

import (
	"time"

	"hoopsleague.dev/league/internal/core"
)

// CurrentSchemaVersion is embedded in every SaveRecord written by this
// binary. Load rejects records with a newer version (core.SchemaMismatchError)
// and best-effort-migrates older ones (currently a no-op: missing optional
// fields already default to their Go zero values under encoding/json,
// which match the spec's defaults).
const CurrentSchemaVersion = 1

// SaveRecord is the single self-describing document persisted per save
// slot: schema version, save name, user team id, the full teams
// collection, and the season (leagueSchedule, seasonStats, isPostSeason,
// optional bracket, optional playoffStats).
type SaveRecord struct {
	SchemaVersion int           `json:"schemaVersion"`
	Name          core.SaveName `json:"name"`
	UserTeamID    core.TeamID   `json:"userTeamId"`
	Teams         []core.Team   `json:"teams"`
	Season        core.Season   `json:"season"`
}

// SaveMeta is the summary row returned by List, cheap enough to compute
// without deserializing every record's full payload.
type SaveMeta struct {
	Name      core.SaveName `json:"name"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Store is the C10 save-store contract. Load returns a core.NotFoundError
// when name does not exist; Save upserts.
type Store interface {
	List() ([]SaveMeta, error)
	Save(name core.SaveName, record SaveRecord) error
	Load(name core.SaveName) (SaveRecord, error)
	Delete(name core.SaveName) error
}
