package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/models"
)

const customerCacheKeyPrefix = "customer:"

// errStaleRead means a write landed while a cache miss was reading the row.
var errStaleRead = errors.New("customer changed during read")

// cacheEntry is the redis representation of a customer. It keeps the
// password hash so cached lookups honour the repository contract.
type cacheEntry struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	PasswordHash string `json:"password_hash"`
}

// cachedCustomerRepository is a read-through cache for SelectByID.
// Update and DeleteByID evict the entry after the write reaches the
// underlying repository and bump a per-customer version. A miss only fills
// the cache when the version is unchanged since before the read, so a row
// read before a concurrent write is never cached. Redis failures are logged
// and bypassed.
type cachedCustomerRepository struct {
	CustomerRepository
	client redis.UniversalClient
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedCustomerRepository wraps repo with a redis cache.
func NewCachedCustomerRepository(repo CustomerRepository, client redis.UniversalClient, ttl time.Duration, log *logger.Logger) CustomerRepository {
	log.Debug().Dur("ttl", ttl).Msg("creating cached customer repository")
	return &cachedCustomerRepository{
		CustomerRepository: repo,
		client:             client,
		ttl:                ttl,
		logger:             log,
	}
}

func customerCacheKey(id int64) string {
	return customerCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func customerVersionKey(id int64) string {
	return customerCacheKey(id) + ":version"
}

func (r *cachedCustomerRepository) SelectByID(ctx context.Context, id int64) (models.Customer, error) {
	log := logger.FromContext(ctx)
	key := customerCacheKey(id)

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var entry cacheEntry
		if err = json.Unmarshal(raw, &entry); err == nil {
			return models.Customer{
				ID:           entry.ID,
				Name:         entry.Name,
				Email:        entry.Email,
				Age:          entry.Age,
				Gender:       models.Gender(entry.Gender),
				PasswordHash: entry.PasswordHash,
			}, nil
		}
		log.Warn().Err(err).Str("func", "*cachedCustomerRepository.SelectByID").Str("key", key).Msg("dropping corrupt cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("func", "*cachedCustomerRepository.SelectByID").Str("key", key).Msg("cache read failed")
	}

	version, versionErr := r.version(ctx, r.client, id)

	customer, err := r.CustomerRepository.SelectByID(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}

	if versionErr != nil {
		log.Warn().Err(versionErr).Str("func", "*cachedCustomerRepository.SelectByID").Str("key", key).Msg("cache version read failed")
		return customer, nil
	}

	r.store(ctx, customer, version)
	return customer, nil
}

func (r *cachedCustomerRepository) Update(ctx context.Context, customer models.Customer) error {
	if err := r.CustomerRepository.Update(ctx, customer); err != nil {
		return err
	}

	r.evict(ctx, customer.ID)
	return nil
}

func (r *cachedCustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.CustomerRepository.DeleteByID(ctx, id); err != nil {
		return err
	}

	r.evict(ctx, id)
	return nil
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *cachedCustomerRepository) version(ctx context.Context, c stringGetter, id int64) (int64, error) {
	v, err := c.Get(ctx, customerVersionKey(id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// store caches c unless its version moved past readVersion.
func (r *cachedCustomerRepository) store(ctx context.Context, c models.Customer, readVersion int64) {
	raw, err := json.Marshal(cacheEntry{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Age:          c.Age,
		Gender:       string(c.Gender),
		PasswordHash: c.PasswordHash,
	})
	if err != nil {
		return
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := r.version(ctx, tx, c.ID)
		if err != nil {
			return err
		}
		if current != readVersion {
			return errStaleRead
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, customerCacheKey(c.ID), raw, r.ttl)
			return nil
		})
		return err
	}, customerVersionKey(c.ID))

	log := logger.FromContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, errStaleRead), errors.Is(err, redis.TxFailedErr):
		log.Debug().Str("func", "*cachedCustomerRepository.store").Int64("id", c.ID).Msg("skipping cache write for concurrently modified customer")
	default:
		log.Warn().Err(err).Str("func", "*cachedCustomerRepository.store").Int64("id", c.ID).Msg("cache write failed")
	}
}

func (r *cachedCustomerRepository) evict(ctx context.Context, id int64) {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, customerVersionKey(id))
		pipe.Expire(ctx, customerVersionKey(id), r.ttl)
		pipe.Del(ctx, customerCacheKey(id))
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cachedCustomerRepository.evict").Int64("id", id).Msg("cache eviction failed")
	}
}
