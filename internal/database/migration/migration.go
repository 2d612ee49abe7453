package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the first step; its presence means the schema is in place.
const sentinelTable = "public.users"

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            TEXT        PRIMARY KEY,
  first_name    TEXT        NOT NULL DEFAULT '',
  middle_name   TEXT        NOT NULL DEFAULT '',
  last_name     TEXT        NOT NULL DEFAULT '',
  email         TEXT        NOT NULL,
  phone_number  TEXT        NOT NULL DEFAULT '',
  role          TEXT        NOT NULL DEFAULT 'parent',
  is_blocked    BOOLEAN     NOT NULL DEFAULT FALSE,
  is_registered BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  is_deleted    BOOLEAN     NOT NULL DEFAULT FALSE
);`,
	},
	{
		Name: "create_index_users_email",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email ON users (email) WHERE NOT is_deleted;`,
	},
	{
		Name: "create_index_users_phone_number",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_users_phone_number ON users (phone_number) WHERE NOT is_deleted;`,
	},
	{
		Name: "create_table_parents",
		SQL: `CREATE TABLE IF NOT EXISTS parents (
  id            UUID     PRIMARY KEY,
  user_id       TEXT     NOT NULL REFERENCES users (id),
  gender        SMALLINT,
  date_of_birth DATE,
  is_deleted    BOOLEAN  NOT NULL DEFAULT FALSE
);`,
	},
	{
		Name: "create_index_parents_user_id",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS ux_parents_user_id ON parents (user_id) WHERE NOT is_deleted;`,
	},
	{
		Name: "create_table_provider_types",
		SQL: `CREATE TABLE IF NOT EXISTS provider_types (
  id         BIGSERIAL PRIMARY KEY,
  name       TEXT      NOT NULL,
  is_deleted BOOLEAN   NOT NULL DEFAULT FALSE
);`,
	},
	{
		Name: "create_table_institution_statuses",
		SQL: `CREATE TABLE IF NOT EXISTS institution_statuses (
  id         BIGSERIAL PRIMARY KEY,
  name       TEXT      NOT NULL,
  name_en    TEXT      NOT NULL DEFAULT '',
  is_deleted BOOLEAN   NOT NULL DEFAULT FALSE
);`,
	},
	{
		Name: "create_table_providers",
		SQL: `CREATE TABLE IF NOT EXISTS providers (
  id                    UUID     PRIMARY KEY,
  full_title            TEXT     NOT NULL,
  short_title           TEXT     NOT NULL DEFAULT '',
  email                 TEXT     NOT NULL,
  phone_number          TEXT     NOT NULL,
  website               TEXT     NOT NULL DEFAULT '',
  edrpou_ipn            TEXT     NOT NULL,
  director              TEXT     NOT NULL DEFAULT '',
  founder               TEXT     NOT NULL DEFAULT '',
  type_id               BIGINT   NOT NULL REFERENCES provider_types (id),
  institution_status_id BIGINT   REFERENCES institution_statuses (id),
  status                TEXT     NOT NULL DEFAULT 'Pending',
  is_blocked            BOOLEAN  NOT NULL DEFAULT FALSE,
  user_id               TEXT     NOT NULL REFERENCES users (id),
  legal_city            TEXT     NOT NULL DEFAULT '',
  legal_street          TEXT     NOT NULL DEFAULT '',
  legal_building_number TEXT     NOT NULL DEFAULT '',
  is_deleted            BOOLEAN  NOT NULL DEFAULT FALSE
);`,
	},
	{
		Name: "create_index_providers_contacts",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_providers_contacts ON providers (email, phone_number) WHERE NOT is_deleted;`,
	},
	{
		Name: "create_table_categories",
		SQL: `CREATE TABLE IF NOT EXISTS categories (
  id          BIGSERIAL PRIMARY KEY,
  title       TEXT      NOT NULL UNIQUE,
  description TEXT      NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_cities",
		SQL: `CREATE TABLE IF NOT EXISTS cities (
  id        BIGSERIAL        PRIMARY KEY,
  name      TEXT             NOT NULL,
  district  TEXT             NOT NULL DEFAULT '',
  region    TEXT             NOT NULL DEFAULT '',
  latitude  DOUBLE PRECISION NOT NULL DEFAULT 0,
  longitude DOUBLE PRECISION NOT NULL DEFAULT 0
);`,
	},
	{
		Name: "create_index_cities_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cities_name ON cities (name text_pattern_ops);`,
	},
	{
		Name: "create_table_workshops",
		SQL: `CREATE TABLE IF NOT EXISTS workshops (
  id             UUID           PRIMARY KEY,
  title          TEXT           NOT NULL,
  email          TEXT           NOT NULL DEFAULT '',
  phone          TEXT           NOT NULL DEFAULT '',
  min_age        INTEGER        NOT NULL DEFAULT 0,
  max_age        INTEGER        NOT NULL DEFAULT 0 CHECK (max_age >= min_age),
  price          NUMERIC(12, 2) NOT NULL DEFAULT 0 CHECK (price >= 0),
  description    TEXT           NOT NULL DEFAULT '',
  provider_id    UUID           NOT NULL REFERENCES providers (id),
  provider_title TEXT           NOT NULL DEFAULT '',
  category_id    BIGINT         NOT NULL REFERENCES categories (id),
  is_deleted     BOOLEAN        NOT NULL DEFAULT FALSE
);`,
	},
	{
		Name: "create_index_workshops_provider_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_workshops_provider_id ON workshops (provider_id) WHERE NOT is_deleted;`,
	},
	{
		Name: "create_table_blocked_provider_parents",
		SQL: `CREATE TABLE IF NOT EXISTS blocked_provider_parents (
  id          UUID        PRIMARY KEY,
  parent_id   UUID        NOT NULL REFERENCES parents (id),
  provider_id UUID        NOT NULL REFERENCES providers (id),
  user_id     TEXT        NOT NULL,
  reason      TEXT        NOT NULL,
  date_from   TIMESTAMPTZ NOT NULL DEFAULT now(),
  date_to     TIMESTAMPTZ,
  user_id_unblock TEXT
);`,
	},
	{
		Name: "create_table_backup_operations",
		SQL: `CREATE TABLE IF NOT EXISTS backup_operations (
  id           BIGSERIAL   PRIMARY KEY,
  backup_date  TIMESTAMPTZ NOT NULL,
  table_name   TEXT        NOT NULL,
  rows_count   BIGINT      NOT NULL DEFAULT 0 CHECK (rows_count >= 0),
  storage_path TEXT        NOT NULL UNIQUE
);`,
	},
	{
		Name: "create_table_operations_with_objects",
		SQL: `CREATE TABLE IF NOT EXISTS operations_with_objects (
  id              UUID        PRIMARY KEY,
  operation_type  TEXT        NOT NULL,
  entity_type     TEXT,
  entity_id       UUID,
  event_date_time TIMESTAMPTZ NOT NULL,
  row_separator   TEXT        NOT NULL DEFAULT '',
  comment         TEXT        NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_index_operations_with_objects_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_operations_with_objects_type ON operations_with_objects (operation_type, entity_id);`,
	},
	{
		Name: "create_table_parent_blocked_by_admin_log",
		SQL: `CREATE TABLE IF NOT EXISTS parent_blocked_by_admin_log (
  id             BIGSERIAL   PRIMARY KEY,
  parent_id      UUID        NOT NULL REFERENCES parents (id),
  user_id        TEXT        NOT NULL,
  operation_date TIMESTAMPTZ NOT NULL,
  reason         TEXT        NOT NULL DEFAULT '',
  is_blocked     BOOLEAN     NOT NULL
);`,
	},
	{
		Name: "create_table_changes_log",
		SQL: `CREATE TABLE IF NOT EXISTS changes_log (
  id            BIGSERIAL   PRIMARY KEY,
  entity_type   TEXT        NOT NULL,
  entity_id     TEXT        NOT NULL,
  property_name TEXT        NOT NULL,
  old_value     VARCHAR(500),
  new_value     VARCHAR(500),
  updated_date  TIMESTAMPTZ NOT NULL,
  user_id       TEXT        NOT NULL
);`,
	},
	{
		Name: "create_index_changes_log_entity",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_changes_log_entity ON changes_log (entity_type, entity_id, updated_date DESC);`,
	},
}

// Steps returns the names of the migration steps in execution order.
func Steps() []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

// EnsureMigrated checks whether the users table exists and runs the migration steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Int("steps", len(steps)).Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()
	return nil
}
