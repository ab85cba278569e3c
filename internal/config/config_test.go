package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "STORAGE_DRIVER", "STORAGE_KEY", "REDIS_DB", "AUDIT_QUEUE_SIZE"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StorageFile, cfg.StorageDriver)
	assert.Equal(t, "appointments", cfg.StorageKey)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 100, cfg.AuditQueueSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("AUDIT_QUEUE_SIZE", "not-a-number")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, StorageRedis, cfg.StorageDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 100, cfg.AuditQueueSize)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{StorageDriver: StorageMemory, StorageKey: "k"}, false},
		{"postgres", Config{StorageDriver: StoragePostgres, StorageKey: "k"}, false},
		{"s3 without bucket", Config{StorageDriver: StorageS3, StorageKey: "k"}, true},
		{"s3 with bucket", Config{StorageDriver: StorageS3, StorageKey: "k", S3Bucket: "b"}, false},
		{"unknown driver", Config{StorageDriver: "floppy", StorageKey: "k"}, true},
		{"empty key", Config{StorageDriver: StorageMemory}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
