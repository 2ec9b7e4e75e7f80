// internal/recommender/engine.go
package recommender

import (
	"context"
	"time"

	"menu-recommender/internal/common/logger"
	"menu-recommender/internal/common/metrics"
	"menu-recommender/internal/common/observability"
	"menu-recommender/internal/models"
	"menu-recommender/internal/store"
)

// Engine runs the recommendation pipeline. It holds no mutable state between
// calls: every invocation fetches fresh store snapshots and builds its own
// matrix and score maps, so concurrent calls need no coordination.
type Engine struct {
	store  store.Store
	config *Config
	logger logger.Logger
	obs    *observability.Observability
}

func NewEngine(st store.Store, config *Config, log logger.Logger) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{
		store:  st,
		config: config,
		logger: log.WithFields(map[string]interface{}{"component": "recommender"}),
	}
}

// WithObservability attaches the OTel recorder. A nil recorder is a no-op,
// so tests can skip it.
func (e *Engine) WithObservability(obs *observability.Observability) *Engine {
	e.obs = obs
	return e
}

// Recommend returns at most MaxItems enriched entries for the given user,
// personalized when co-purchase similarity allows it and falling back to
// global popularity otherwise. The two store reads are the only failure
// points: their errors propagate, everything else degrades to an empty or
// fallback result.
func (e *Engine) Recommend(ctx context.Context, userID string) ([]models.Recommendation, error) {
	start := time.Now()

	if e.config.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.FetchTimeout)
		defer cancel()
	}

	history, err := e.store.FetchOrderHistory(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := e.store.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	profiles := BuildProfiles(history)

	names := e.rankCandidates(profiles, userID)
	source := metrics.SourcePersonalized
	if len(names) == 0 {
		names = PopularItems(profiles, e.config.MaxItems)
		source = metrics.SourcePopularity
	}
	if len(names) == 0 {
		source = metrics.SourceEmpty
	}

	recommendations := ResolveAll(names, catalog)

	metrics.RecommendationsServed.WithLabelValues(source).Inc()
	metrics.RecommendationDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	e.obs.RecordRequest(ctx, source)
	e.obs.RecordDuration(ctx, time.Since(start), source)
	e.logger.Debug("recommendation computed", map[string]interface{}{
		"userId": userID,
		"source": source,
		"count":  len(recommendations),
	})

	return recommendations, nil
}

// rankCandidates runs the personalized half of the pipeline. Any empty result
// along the way means "no personalization possible", never an error.
func (e *Engine) rankCandidates(profiles map[string][]string, userID string) []string {
	matrix := BuildMatrix(profiles)
	if matrix == nil {
		return nil
	}

	neighbors := SimilarUsers(matrix, userID)
	if len(neighbors) == 0 {
		return nil
	}

	owned := OwnedItems(profiles, userID)
	return AggregateCandidates(neighbors, owned, profiles, e.config.MaxItems)
}
