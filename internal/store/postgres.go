package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"hoopsleague.dev/league/internal/core"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// migration is a single embedded schema migration, applied in name order.
type migration struct {
	Name    string
	Content string
}

// PostgresStore persists SaveRecords as rows in a single `saves` table
// (name, schema_version, payload jsonb, updated_at), connected through
// database/sql via the pgx stdlib driver the same way the teacher's
// internal/db package wraps pgx for its own migrated schema.
type PostgresStore struct {
	db *sql.DB
}

// ConnectPostgres opens a connection and runs any pending embedded
// migrations before returning. connStr is a standard Postgres DSN.
func ConnectPostgres(ctx context.Context, connStr string) (*PostgresStore, error) {
	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, core.NewStorageFailureError("open database", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, core.NewStorageFailureError("ping database", err)
	}

	ps := &PostgresStore{db: sqlDB}
	if err := ps.migrate(ctx); err != nil {
		return nil, err
	}
	return ps, nil
}

func (p *PostgresStore) ensureMigrationsTable(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (p *PostgresStore) isApplied(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

func markApplied(ctx context.Context, exec interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}, name string) error {
	_, err := exec.ExecContext(ctx, `INSERT INTO schema_migrations (name, applied_at) VALUES ($1, $2)`, name, time.Now())
	return err
}

func loadMigrations() ([]migration, error) {
	entries, err := migrationFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var migrations []migration
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		content, err := migrationFiles.ReadFile("sql/" + name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		migrations = append(migrations, migration{Name: name, Content: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Name < migrations[j].Name })
	return migrations, nil
}

func (p *PostgresStore) migrate(ctx context.Context) error {
	if err := p.ensureMigrationsTable(ctx); err != nil {
		return core.NewStorageFailureError("create migrations table", err)
	}

	migrations, err := loadMigrations()
	if err != nil {
		return core.NewStorageFailureError("load migrations", err)
	}

	for _, m := range migrations {
		applied, err := p.isApplied(ctx, m.Name)
		if err != nil {
			return core.NewStorageFailureError(fmt.Sprintf("check migration %s", m.Name), err)
		}
		if applied {
			continue
		}

		tx, err := p.db.BeginTx(ctx, nil)
		if err != nil {
			return core.NewStorageFailureError(fmt.Sprintf("begin migration %s", m.Name), err)
		}
		if _, err := tx.ExecContext(ctx, m.Content); err != nil {
			tx.Rollback()
			return core.NewStorageFailureError(fmt.Sprintf("apply migration %s", m.Name), err)
		}
		if err := markApplied(ctx, tx, m.Name); err != nil {
			tx.Rollback()
			return core.NewStorageFailureError(fmt.Sprintf("mark migration %s applied", m.Name), err)
		}
		if err := tx.Commit(); err != nil {
			return core.NewStorageFailureError(fmt.Sprintf("commit migration %s", m.Name), err)
		}
	}
	return nil
}

func (p *PostgresStore) List() ([]SaveMeta, error) {
	ctx := context.Background()
	rows, err := p.db.QueryContext(ctx, `SELECT name, updated_at FROM saves ORDER BY name`)
	if err != nil {
		return nil, core.NewStorageFailureError("list saves", err)
	}
	defer rows.Close()

	var metas []SaveMeta
	for rows.Next() {
		var name string
		var updatedAt time.Time
		if err := rows.Scan(&name, &updatedAt); err != nil {
			return nil, core.NewStorageFailureError("scan save row", err)
		}
		metas = append(metas, SaveMeta{Name: core.SaveName(name), UpdatedAt: updatedAt})
	}
	if err := rows.Err(); err != nil {
		return nil, core.NewStorageFailureError("iterate save rows", err)
	}
	return metas, nil
}

func (p *PostgresStore) Save(name core.SaveName, record SaveRecord) error {
	record.Name = name
	record.SchemaVersion = CurrentSchemaVersion

	payload, err := json.Marshal(record)
	if err != nil {
		return core.NewStorageFailureError("encode save", err)
	}

	ctx := context.Background()
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO saves (name, schema_version, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (name) DO UPDATE SET
			schema_version = EXCLUDED.schema_version,
			payload = EXCLUDED.payload,
			updated_at = NOW()
	`, string(name), record.SchemaVersion, payload)
	if err != nil {
		return core.NewStorageFailureError("upsert save", err)
	}
	return nil
}

func (p *PostgresStore) Load(name core.SaveName) (SaveRecord, error) {
	ctx := context.Background()
	var payload []byte
	var schemaVersion int
	err := p.db.QueryRowContext(ctx, `SELECT schema_version, payload FROM saves WHERE name = $1`, string(name)).
		Scan(&schemaVersion, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SaveRecord{}, core.NewNotFoundError("save", string(name))
		}
		return SaveRecord{}, core.NewStorageFailureError("load save", err)
	}
	if schemaVersion > CurrentSchemaVersion {
		return SaveRecord{}, core.NewSchemaMismatchError(string(name), schemaVersion, CurrentSchemaVersion)
	}

	var record SaveRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return SaveRecord{}, core.NewStorageFailureError("decode save", err)
	}
	return record, nil
}

func (p *PostgresStore) Delete(name core.SaveName) error {
	ctx := context.Background()
	res, err := p.db.ExecContext(ctx, `DELETE FROM saves WHERE name = $1`, string(name))
	if err != nil {
		return core.NewStorageFailureError("delete save", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.NewStorageFailureError("check delete result", err)
	}
	if n == 0 {
		return core.NewNotFoundError("save", string(name))
	}
	return nil
}

// Close releases the underlying connection pool.
func (p *PostgresStore) Close() error {
	return p.db.Close()
}

var _ Store = (*PostgresStore)(nil)
