package storage

import (
	"testing"

	"github.com/juju/errors"
	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"outofschool/internal/config"
)

func TestNewMinIO_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{AccessKey: "a", SecretKey: "s", Bucket: "b"}},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b"}},
		{name: "missing bucket", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewMinIO(tt.cfg, zerolog.Nop())
			assert.Nil(t, st)
			assert.True(t, errors.Is(err, errors.NotValid))
		})
	}
}

func TestTranslateError(t *testing.T) {
	missing := minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	assert.True(t, errors.Is(translateError(missing, "backups/users/x.jsonl"), errors.NotFound))

	denied := minio.ErrorResponse{Code: "AccessDenied"}
	assert.Equal(t, denied, translateError(denied, "k"))
}
