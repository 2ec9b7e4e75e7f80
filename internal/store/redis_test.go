// internal/store/redis_test.go
package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-recommender/internal/common/config"
	"menu-recommender/internal/common/database"
	apperrors "menu-recommender/internal/common/errors"
	"menu-recommender/internal/common/logger"
)

func testStoreConfig() config.StoreConfig {
	return config.StoreConfig{
		Backend:   "redis",
		OrdersKey: "orders",
		MenuKey:   "menu",
	}
}

func newMiniredisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, testStoreConfig(), logger.NewTestLogger(t)), mr
}

func TestRedisStore_FetchOrderHistory(t *testing.T) {
	st, mr := newMiniredisStore(t)

	mr.HSet("orders", "u1", `{"-Oab1": {"items": [{"name": "burger"}]}}`)
	mr.HSet("orders", "u2", `{"history": {"-Oab2": {"items": [{"name": "soda"}]}}}`)
	mr.HSet("orders", "u3", `not json at all`)

	history, err := st.FetchOrderHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 2, "undecodable subtree skipped")
	assert.Equal(t, []string{"burger"}, itemNames(history["u1"]))
	assert.Equal(t, []string{"soda"}, itemNames(history["u2"]))
}

func TestRedisStore_FetchOrderHistory_MissingKey(t *testing.T) {
	st, _ := newMiniredisStore(t)

	history, err := st.FetchOrderHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestRedisStore_FetchCatalog(t *testing.T) {
	st, mr := newMiniredisStore(t)

	mr.Set("menu", `{"Drinks": [{"name": "Cola", "price": 2}]}`)

	catalog, err := st.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog.Grouped, 1)
	assert.Equal(t, "Cola", catalog.Grouped[0].Name)
}

func TestRedisStore_FetchCatalog_MissingKey(t *testing.T) {
	st, _ := newMiniredisStore(t)

	catalog, err := st.FetchCatalog(context.Background())
	require.NoError(t, err)
	assert.True(t, catalog.Empty())
}

func TestRedisStore_FetchCatalog_InvalidDocument(t *testing.T) {
	st, mr := newMiniredisStore(t)

	mr.Set("menu", `[1, 2, 3]`)

	_, err := st.FetchCatalog(context.Background())
	require.Error(t, err)

	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeCatalogFetchFailed, stdErr.Code)
}

func TestRedisStore_ConnectionErrors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &database.RedisClient{Client: db}
	st := NewRedisStore(client, testStoreConfig(), logger.NewNoOpLogger())

	connErr := errors.New("connection refused")

	t.Run("order history fetch", func(t *testing.T) {
		mock.ExpectHGetAll("orders").SetErr(connErr)

		_, err := st.FetchOrderHistory(context.Background())
		require.Error(t, err)

		stdErr, ok := apperrors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeOrderHistoryFetchFailed, stdErr.Code)
		assert.True(t, stdErr.Retryable)
	})

	t.Run("catalog fetch", func(t *testing.T) {
		mock.ExpectGet("menu").SetErr(connErr)

		_, err := st.FetchCatalog(context.Background())
		require.Error(t, err)

		stdErr, ok := apperrors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeCatalogFetchFailed, stdErr.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
