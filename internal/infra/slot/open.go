package slot

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
)

// Open builds the slot selected by cfg.StorageDriver. db is only used by the
// postgres driver and may be nil otherwise.
func Open(ctx context.Context, cfg *config.Config, db *gorm.DB) (Slot, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return NewMemory(), nil

	case config.StorageFile:
		return NewFile(cfg.StorageDir, cfg.StorageKey)

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return NewRedis(client, cfg.StorageKey), nil

	case config.StoragePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres storage driver needs a database")
		}
		return NewGorm(db, cfg.StorageKey), nil

	case config.StorageS3:
		return NewS3(NewS3Client(cfg), cfg.S3Bucket, cfg.StorageKey), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func NewS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
	}
	if cfg.S3AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}
