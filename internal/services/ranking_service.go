// internal/services/ranking_service.go
package services

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/config"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/models"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/scoring"
)

// RankingService runs the full pipeline: search, concurrent enrichment,
// scoring, and a stable descending sort with 1-based ranks.
type RankingService struct {
	dataService *DataService
	scorer      *scoring.Scorer
	workers     int
}

func NewRankingService(dataService *DataService, scorer *scoring.Scorer, cfg *config.Config) *RankingService {
	return &RankingService{
		dataService: dataService,
		scorer:      scorer,
		workers:     cfg.Ranking.Workers,
	}
}

// TopProducts searches for up to limit products and returns them enriched,
// scored, and ranked by quality score descending. Products whose enrichment
// fails are dropped without leaving gaps in the rank numbers; equal scores
// keep their search-result order. An empty search yields an empty slice,
// never an error.
func (s *RankingService) TopProducts(ctx context.Context, query string, limit int) []models.EnrichedProduct {
	if limit <= 0 {
		return []models.EnrichedProduct{}
	}

	logrus.WithFields(logrus.Fields{"query": query, "limit": limit}).Info("ranking products")

	summaries := s.dataService.SearchProducts(ctx, query, limit)

	// Enrichment results land in a slice addressed by search-result index,
	// so the tie-break order below is the search order regardless of which
	// worker finishes first.
	enriched := make([]*models.EnrichedProduct, len(summaries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, summary := range summaries {
		i, summary := i, summary
		g.Go(func() error {
			enriched[i] = s.dataService.AnalyzeProduct(gctx, summary.ASIN)
			return nil
		})
	}
	// Workers report failures as nil slots, never as errors.
	_ = g.Wait()

	ranked := make([]models.EnrichedProduct, 0, len(enriched))
	for _, e := range enriched {
		if e == nil {
			continue
		}
		scored := *e
		scored.QualityScore = s.scorer.Score(scored)
		ranked = append(ranked, scored)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QualityScore > ranked[j].QualityScore
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	logrus.WithFields(logrus.Fields{"query": query, "ranked": len(ranked), "dropped": len(summaries) - len(ranked)}).
		Info("ranking complete")

	return ranked
}
