package migration

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sentinelQuery = "SELECT to_regclass($1) IS NOT NULL"

func TestEnsureMigrated(t *testing.T) {
	ctx := context.Background()

	t.Run("schema exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WithArgs(sentinelTable).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		var buf bytes.Buffer
		err = EnsureMigrated(ctx, db, zerolog.New(&buf), "db.local")

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), `"event":"db_migration_skip"`)
		assert.Contains(t, buf.String(), `"component":"database"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("runs every step in order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WithArgs(sentinelTable).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		for _, step := range steps {
			mock.ExpectExec(regexp.QuoteMeta(step.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		var buf bytes.Buffer
		err = EnsureMigrated(ctx, db, zerolog.New(&buf).Level(zerolog.DebugLevel), "db.local")

		assert.NoError(t, err)
		assert.Equal(t, len(steps), strings.Count(buf.String(), `"event":"db_migration_step"`))
		assert.Contains(t, buf.String(), `"event":"db_migration_success"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("step failure stops the migration", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WithArgs(sentinelTable).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(regexp.QuoteMeta(steps[0].SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(steps[1].SQL)).WillReturnError(errors.New("permission denied"))

		var buf bytes.Buffer
		err = EnsureMigrated(ctx, db, zerolog.New(&buf), "db.local")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "migration step "+steps[1].Name+" failed")
		assert.Contains(t, buf.String(), `"migration_step":"`+steps[1].Name+`"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sentinel check failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WithArgs(sentinelTable).
			WillReturnError(errors.New("connection reset"))

		err = EnsureMigrated(ctx, db, zerolog.Nop(), "db.local")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check sentinel table")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSteps(t *testing.T) {
	names := Steps()

	require.Len(t, names, len(steps))
	assert.Equal(t, "create_table_users", names[0])

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		assert.False(t, seen[n], "duplicate step %s", n)
		seen[n] = true
	}

	tables := []string{
		"users", "parents", "providers", "workshops", "categories", "cities",
		"institution_statuses", "provider_types", "blocked_provider_parents",
		"backup_operations", "operations_with_objects", "parent_blocked_by_admin_log", "changes_log",
	}
	for _, table := range tables {
		assert.True(t, seen["create_table_"+table], "missing table %s", table)
	}
}
