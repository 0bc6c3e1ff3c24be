package redis

//go:generate mockgen -source=redis.go -destination=redis_mock.go -package=redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ReceiptLedger/internal/entity"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const digestKeyPrefix = "receipt:digest:"

type IRedis interface {
	GetRecord(ctx context.Context, digest string) (*entity.ReceiptRecord, error)
	SetRecord(ctx context.Context, digest string, record entity.ReceiptRecord, expiration time.Duration) error
}

type Config struct {
	Address  string
	Password string
	DB       int
}

type redisClient struct {
	client *redis.Client
	log    *logrus.Logger
}

func New(cfg Config, log *logrus.Logger) IRedis {
	log.Info(fmt.Sprintf("Connecting to Redis at %s...", cfg.Address))

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		log.Info("Successfully connected to Redis")
	}

	return NewWithClient(client, log)
}

func NewWithClient(client *redis.Client, log *logrus.Logger) IRedis {
	return &redisClient{client: client, log: log}
}

func digestKey(digest string) string {
	return digestKeyPrefix + digest
}

// GetRecord returns the record cached for an image digest, or nil when the
// digest has not been seen.
func (r *redisClient) GetRecord(ctx context.Context, digest string) (*entity.ReceiptRecord, error) {
	key := digestKey(digest)
	r.log.Debug(fmt.Sprintf("Getting cached receipt for key %s", key))

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		r.log.Error(fmt.Sprintf("Error getting cached receipt for key %s: %v", key, err))
		return nil, err
	}

	var record entity.ReceiptRecord
	if err := jsoniter.Unmarshal(val, &record); err != nil {
		return nil, fmt.Errorf("decode cached receipt %s: %w", key, err)
	}

	return &record, nil
}

func (r *redisClient) SetRecord(ctx context.Context, digest string, record entity.ReceiptRecord, expiration time.Duration) error {
	key := digestKey(digest)

	payload, err := jsoniter.Marshal(record)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, key, payload, expiration).Err(); err != nil {
		r.log.Error(fmt.Sprintf("Error caching receipt for key %s: %v", key, err))
		return err
	}

	r.log.Debug(fmt.Sprintf("Cached receipt for key %s with expiration %v", key, expiration))
	return nil
}
