package slot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/db"
)

// exerciseSlot checks the behaviour every driver must share.
func exerciseSlot(t *testing.T, s Slot) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Read(ctx)
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, s.Write(ctx, []byte(`[{"id":"1"}]`)))
	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, s.Write(ctx, []byte(`[]`)))
	got, err = s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestMemory(t *testing.T) {
	exerciseSlot(t, NewMemory())
}

func TestMemoryWith(t *testing.T) {
	m := NewMemoryWith([]byte("seed"))

	got, err := m.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "seed", string(got))
}

func TestMemoryFail(t *testing.T) {
	m := NewMemory()
	m.Fail = assert.AnError

	assert.ErrorIs(t, m.Write(context.Background(), []byte("x")), assert.AnError)
	_, err := m.Read(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	f, err := NewFile(dir, "appointments")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "appointments.json"), f.Path())

	exerciseSlot(t, f)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, &config.Config{StorageDriver: config.StorageMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(ctx, &config.Config{
		StorageDriver: config.StorageFile,
		StorageDir:    t.TempDir(),
		StorageKey:    "appointments",
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	s, err = Open(ctx, &config.Config{
		StorageDriver: config.StorageS3,
		StorageKey:    "appointments",
		S3Bucket:      "clinic",
		S3Region:      "us-east-1",
		S3Endpoint:    "http://localhost:9000",
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &S3{}, s)

	_, err = Open(ctx, &config.Config{StorageDriver: config.StoragePostgres}, nil)
	assert.Error(t, err)

	_, err = Open(ctx, &config.Config{StorageDriver: "tape"}, nil)
	assert.Error(t, err)
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	key := "test:appointments:" + uuid.NewString()
	t.Cleanup(func() {
		client.Del(context.Background(), key)
		client.Close()
	})

	exerciseSlot(t, NewRedis(client, key))
}

func TestGorm(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	gdb, err := db.NewDB(&config.Config{DBUrl: url})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	s := NewGorm(gdb, "test-"+uuid.NewString())
	exerciseSlot(t, s)

	// the shared connection outlives the slot
	require.NoError(t, s.Close())
	assert.NoError(t, sqlDB.PingContext(context.Background()))
}

func TestS3(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("S3_BUCKET not set")
	}

	cfg := &config.Config{
		S3Bucket:    bucket,
		S3Region:    os.Getenv("S3_REGION"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}

	exerciseSlot(t, NewS3(NewS3Client(cfg), bucket, "test-"+uuid.NewString()))
}
