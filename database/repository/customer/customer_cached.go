package customerRepo

import (
	"context"
	"encoding/json"
	"time"

	"lilac/models"
	"lilac/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CachedCustomerRepo wraps a CustomerRepository with a Redis read cache for
// profile lookups. Checkout renders and submissions hit the same profile
// several times per request; a short TTL keeps the store consistent enough.
type CachedCustomerRepo struct {
	inner CustomerRepository
	cache *redis.Client
}

// NewCachedCustomerRepo wraps the given repository with the profile cache.
func NewCachedCustomerRepo(inner CustomerRepository, cache *redis.Client) CustomerRepository {
	return &CachedCustomerRepo{inner: inner, cache: cache}
}

// GetByID retrieves a customer, consulting the cache first.
func (r *CachedCustomerRepo) GetByID(id string) (*models.Customer, error) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cacheKey := utils.ProfileCachePrefix + id
	if r.cache != nil {
		raw, err := r.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var customer models.Customer
			if jsonErr := json.Unmarshal([]byte(raw), &customer); jsonErr == nil {
				return &customer, nil
			}
			// Corrupt entry; drop it and fall through to the store.
			_ = r.cache.Del(ctx, cacheKey).Err()
		} else if err != redis.Nil {
			logger.Warn("profile cache read failed, falling back to store",
				zap.String("customerID", id), zap.Error(err))
		}
	}

	customer, err := r.inner.GetByID(id)
	if err != nil || customer == nil {
		return customer, err
	}

	if r.cache != nil {
		if raw, jsonErr := json.Marshal(customer); jsonErr == nil {
			_ = r.cache.Set(ctx, cacheKey, raw, utils.ProfileCacheTTL).Err()
		}
	}
	return customer, nil
}

// GetByEmail delegates to the underlying repository.
func (r *CachedCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	return r.inner.GetByEmail(email)
}

// GetByIDWithProjection bypasses the cache; projected reads are rare.
func (r *CachedCustomerRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Customer, error) {
	return r.inner.GetByIDWithProjection(id, projection)
}

// Create inserts a new customer record.
func (r *CachedCustomerRepo) Create(customer *models.Customer) error {
	return r.inner.Create(customer)
}

// Update modifies a customer record and invalidates its cache entry.
func (r *CachedCustomerRepo) Update(customer *models.Customer) error {
	if err := r.inner.Update(customer); err != nil {
		return err
	}
	r.invalidate(customer.ID)
	return nil
}

// Delete removes a customer record and invalidates its cache entry.
func (r *CachedCustomerRepo) Delete(id string) error {
	if err := r.inner.Delete(id); err != nil {
		return err
	}
	r.invalidate(id)
	return nil
}

func (r *CachedCustomerRepo) invalidate(id string) {
	if r.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = r.cache.Del(ctx, utils.ProfileCachePrefix+id).Err()
}
