package database

import (
	"bytes"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"outofschool/internal/config"
)

func TestBuildPostgresDSN(t *testing.T) {
	base := config.DatabaseConfig{Host: "db", Port: "5432", User: "app", Name: "outofschool"}

	tests := []struct {
		name    string
		mutate  func(c *config.DatabaseConfig)
		want    string
		wantErr bool
	}{
		{
			name:   "minimal",
			mutate: func(c *config.DatabaseConfig) {},
			want:   "postgres://app@db:5432/outofschool",
		},
		{
			name: "escaped password with sslmode and application name",
			mutate: func(c *config.DatabaseConfig) {
				c.Password = "p@ss"
				c.SSLMode = "disable"
				c.ApplicationName = "outofschool-api"
			},
			want: "postgres://app:p%40ss@db:5432/outofschool?application_name=outofschool-api&sslmode=disable",
		},
		{name: "missing host", mutate: func(c *config.DatabaseConfig) { c.Host = "" }, wantErr: true},
		{name: "missing port", mutate: func(c *config.DatabaseConfig) { c.Port = "" }, wantErr: true},
		{name: "missing user", mutate: func(c *config.DatabaseConfig) { c.User = "" }, wantErr: true},
		{name: "missing name", mutate: func(c *config.DatabaseConfig) { c.Name = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)

			got, err := BuildPostgresDSN(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpanAttributes(t *testing.T) {
	assert.Equal(t,
		[]attribute.KeyValue{semconv.DBSystemPostgreSQL, semconv.DBName("outofschool")},
		spanAttributes(config.DatabaseConfig{Name: "outofschool"}),
	)
}

func stubOpen(t *testing.T, db *sql.DB, err error) *string {
	t.Helper()
	var dsn string
	orig := sqlOpen
	sqlOpen = func(_, dataSourceName string) (*sql.DB, error) {
		dsn = dataSourceName
		return db, err
	}
	t.Cleanup(func() { sqlOpen = orig })
	return &dsn
}

func TestNewPostgres(t *testing.T) {
	conf := config.DatabaseConfig{
		Host:               "localhost",
		Port:               "5432",
		User:               "user",
		Password:           "pass",
		Name:               "outofschool",
		ApplicationName:    "outofschool-test",
		MaxOpenConns:       10,
		MaxIdleConns:       5,
		ConnMaxLifetimeSec: 300,
	}

	t.Run("connects and applies pool limits", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		gotDSN := stubOpen(t, db, nil)
		var buf bytes.Buffer

		mock.ExpectPing()

		gotDB, err := NewPostgres(conf, zerolog.New(&buf))
		require.NoError(t, err)

		assert.Equal(t, 10, gotDB.Stats().MaxOpenConnections)
		assert.Contains(t, *gotDSN, "application_name=outofschool-test")
		assert.Contains(t, buf.String(), `"message":"database connected"`)
		assert.Contains(t, buf.String(), `"db_name":"outofschool"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("open error", func(t *testing.T) {
		stubOpen(t, nil, errors.New("open error"))

		gotDB, err := NewPostgres(conf, zerolog.Nop())
		assert.EqualError(t, err, "sql open: open error")
		assert.Nil(t, gotDB)
	})

	t.Run("ping error is logged", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)
		var buf bytes.Buffer

		mock.ExpectPing().WillReturnError(errors.New("ping failed"))

		gotDB, err := NewPostgres(conf, zerolog.New(&buf))
		assert.EqualError(t, err, "db ping: ping failed")
		assert.Nil(t, gotDB)
		assert.Contains(t, buf.String(), `"level":"error"`)
		assert.Contains(t, buf.String(), `"message":"database ping failed"`)
		assert.Contains(t, buf.String(), `"db_host":"localhost"`)
		assert.NotContains(t, buf.String(), "database connected")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid config never opens", func(t *testing.T) {
		gotDSN := stubOpen(t, nil, errors.New("unexpected open"))

		gotDB, err := NewPostgres(config.DatabaseConfig{}, zerolog.Nop())
		assert.Error(t, err)
		assert.Nil(t, gotDB)
		assert.Empty(t, *gotDSN)
	})
}
