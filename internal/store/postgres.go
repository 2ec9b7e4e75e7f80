// internal/store/postgres.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"menu-recommender/internal/common/database"
	apperrors "menu-recommender/internal/common/errors"
	"menu-recommender/internal/common/logger"
	"menu-recommender/internal/common/metrics"
	"menu-recommender/internal/models"
)

const (
	queryOrders = `SELECT user_id, order_id, payload FROM orders ORDER BY user_id, order_id`
	queryMenu   = `SELECT category, name, price, description, image FROM menu_items ORDER BY category, name`
)

// PostgresStore serves the same reads from a relational layout: one row per
// order with a JSON payload, one row per menu item grouped by category.
type PostgresStore struct {
	client *database.PostgresClient
	logger logger.Logger
}

func NewPostgresStore(client *database.PostgresClient, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		client: client,
		logger: log.WithFields(map[string]interface{}{"store": "postgres"}),
	}
}

func (s *PostgresStore) FetchOrderHistory(ctx context.Context) (models.OrderHistory, error) {
	rows, err := s.client.Query(ctx, queryOrders)
	if err != nil {
		metrics.StoreFetchErrors.WithLabelValues("postgres", "order_history").Inc()
		return nil, apperrors.NewOrderHistoryFetchFailedError(err)
	}
	defer rows.Close()

	history := models.OrderHistory{}
	for rows.Next() {
		var userID, orderID string
		var payload []byte
		if err := rows.Scan(&userID, &orderID, &payload); err != nil {
			metrics.StoreFetchErrors.WithLabelValues("postgres", "order_history").Inc()
			return nil, apperrors.NewOrderHistoryFetchFailedError(err)
		}

		order, ok := decodeOrderPayload(orderID, payload)
		if !ok {
			s.logger.Warn("skipping undecodable order payload", map[string]interface{}{
				"userId":  userID,
				"orderId": orderID,
			})
			continue
		}
		history[userID] = append(history[userID], order)
	}
	if err := rows.Err(); err != nil {
		metrics.StoreFetchErrors.WithLabelValues("postgres", "order_history").Inc()
		return nil, apperrors.NewOrderHistoryFetchFailedError(err)
	}
	return history, nil
}

func (s *PostgresStore) FetchCatalog(ctx context.Context) (models.Catalog, error) {
	rows, err := s.client.Query(ctx, queryMenu)
	if err != nil {
		metrics.StoreFetchErrors.WithLabelValues("postgres", "catalog").Inc()
		return models.Catalog{}, apperrors.NewCatalogFetchFailedError(err)
	}
	defer rows.Close()

	var catalog models.Catalog
	for rows.Next() {
		var category, name string
		var price sql.NullFloat64
		var description, image sql.NullString
		if err := rows.Scan(&category, &name, &price, &description, &image); err != nil {
			metrics.StoreFetchErrors.WithLabelValues("postgres", "catalog").Inc()
			return models.Catalog{}, apperrors.NewCatalogFetchFailedError(err)
		}

		item := models.MenuItem{
			Name:        name,
			Category:    category,
			Description: description.String,
			Image:       image.String,
		}
		if price.Valid {
			p := price.Float64
			item.Price = &p
		}
		catalog.Grouped = append(catalog.Grouped, item)
	}
	if err := rows.Err(); err != nil {
		metrics.StoreFetchErrors.WithLabelValues("postgres", "catalog").Inc()
		return models.Catalog{}, apperrors.NewCatalogFetchFailedError(err)
	}
	return catalog, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// decodeOrderPayload reuses the document decoder for the JSON payload column.
func decodeOrderPayload(orderID string, payload []byte) (models.Order, bool) {
	var entry map[string]interface{}
	if err := json.Unmarshal(payload, &entry); err != nil {
		return models.Order{}, false
	}
	return decodeOrder(orderID, entry)
}
