// internal/store/redis.go
package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"menu-recommender/internal/common/config"
	"menu-recommender/internal/common/database"
	apperrors "menu-recommender/internal/common/errors"
	"menu-recommender/internal/common/logger"
	"menu-recommender/internal/common/metrics"
	"menu-recommender/internal/models"
)

// RedisStore serves order history and catalog reads from the document layout
// the ordering platform writes: a hash keyed by user id holding each user's
// raw order subtree, and a single JSON document for the menu.
type RedisStore struct {
	client    *database.RedisClient
	ordersKey string
	menuKey   string
	logger    logger.Logger
}

func NewRedisStore(client *database.RedisClient, cfg config.StoreConfig, log logger.Logger) *RedisStore {
	return &RedisStore{
		client:    client,
		ordersKey: cfg.OrdersKey,
		menuKey:   cfg.MenuKey,
		logger:    log.WithFields(map[string]interface{}{"store": "redis"}),
	}
}

func (s *RedisStore) FetchOrderHistory(ctx context.Context) (models.OrderHistory, error) {
	fields, err := s.client.HGetAll(ctx, s.ordersKey)
	if err != nil {
		metrics.StoreFetchErrors.WithLabelValues("redis", "order_history").Inc()
		return nil, apperrors.NewOrderHistoryFetchFailedError(err)
	}

	// HGETALL on a missing key returns an empty map, which is exactly the
	// "empty store" contract.
	history := models.OrderHistory{}
	for userID, raw := range fields {
		orders, err := DecodeUserOrders([]byte(raw))
		if err != nil {
			s.logger.Warn("skipping undecodable order subtree", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
			continue
		}
		history[userID] = orders
	}
	return history, nil
}

func (s *RedisStore) FetchCatalog(ctx context.Context) (models.Catalog, error) {
	raw, err := s.client.Get(ctx, s.menuKey)
	if errors.Is(err, redis.Nil) {
		return models.Catalog{}, nil
	}
	if err != nil {
		metrics.StoreFetchErrors.WithLabelValues("redis", "catalog").Inc()
		return models.Catalog{}, apperrors.NewCatalogFetchFailedError(err)
	}

	catalog, err := DecodeCatalog([]byte(raw))
	if err != nil {
		metrics.StoreFetchErrors.WithLabelValues("redis", "catalog").Inc()
		return models.Catalog{}, apperrors.NewCatalogFetchFailedError(err)
	}
	return catalog, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
