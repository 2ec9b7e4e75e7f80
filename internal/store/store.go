// internal/store/store.go
package store

import (
	"context"

	"menu-recommender/internal/models"
)

// Store is the read-only view of the ordering platform's data that the
// recommendation pipeline consumes. An empty or missing store yields empty
// structures and a nil error; only transport and decode failures error out,
// so an outage is never mistaken for "no orders".
type Store interface {
	FetchOrderHistory(ctx context.Context) (models.OrderHistory, error)
	FetchCatalog(ctx context.Context) (models.Catalog, error)
	Ping(ctx context.Context) error
}
