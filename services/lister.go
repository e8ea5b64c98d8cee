package services

import (
	"context"
	"sync"
	"time"

	"card-lister/catalog"
	"card-lister/models"
	"card-lister/utils"
)

// PriceSource returns observed sale prices for a search query. The lister
// treats it as an opaque, possibly slow collaborator: failures cost the
// card its price report, nothing else.
type PriceSource interface {
	SoldPrices(ctx context.Context, query string) ([]float64, error)
}

// Lister runs the full per-card pipeline: inference, title build, title
// scoring, category, SKU, HTML description, and optional pricing.
type Lister struct {
	logger *utils.Logger
	prices PriceSource // nil disables pricing
	pool   *utils.WorkerPool
}

// NewLister creates a Lister. Pass a nil PriceSource to skip pricing.
func NewLister(logger *utils.Logger, prices PriceSource, maxConcurrency, rateLimitMs int) *Lister {
	return &Lister{
		logger: logger,
		prices: prices,
		pool:   utils.NewWorkerPool(maxConcurrency, rateLimitMs),
	}
}

// ProcessCard builds the complete listing payload for one card. Required
// fields are validated here at the boundary; past that point the pipeline
// only degrades, it does not fail.
func (l *Lister) ProcessCard(ctx context.Context, card *models.CardAttributes) (*models.ListingResult, error) {
	if err := card.Validate(); err != nil {
		return nil, err
	}

	candidate := BuildTitle(card)
	if candidate.OverLimit {
		l.logger.Warn("[lister] Title exceeds %d chars even after truncation: %q",
			MaxTitleLength, candidate.Title)
	}

	report := ValidateTitle(candidate.Title, card)
	categoryID, categoryName := catalog.CategoryForSport(card.Sport)
	specifics := InferSpecifics(card)
	sku := GenerateTrackingSKU(card, time.Now())

	html, err := RenderDescription(card, candidate.Title, sku)
	if err != nil {
		return nil, err
	}

	result := &models.ListingResult{
		Card:            card,
		Title:           candidate.Title,
		TitleReport:     report,
		CategoryID:      categoryID,
		CategoryName:    categoryName,
		Specifics:       specifics,
		TrackingSKU:     sku,
		HTMLDescription: html,
		ProcessedAt:     time.Now(),
	}

	if l.prices != nil {
		result.Pricing = l.lookupPricing(ctx, card)
	}

	return result, nil
}

// lookupPricing queries the price source and aggregates what comes back.
// Any failure is logged and reported as "no pricing data".
func (l *Lister) lookupPricing(ctx context.Context, card *models.CardAttributes) *models.PriceReport {
	query := BuildPriceQuery(card)
	prices, err := l.prices.SoldPrices(ctx, query)
	if err != nil {
		l.logger.Warn("[lister] Pricing lookup failed for %q: %v", query, err)
		return nil
	}
	if len(prices) == 0 {
		l.logger.Info("[lister] No recent sales found for %q", query)
		return nil
	}
	return AggregatePrices(prices)
}

// BatchProcess runs ProcessCard over many cards on the worker pool. Each
// card reads only the shared catalog tables and writes its own result, so
// the map is embarrassingly parallel. Failed cards are logged and skipped.
func (l *Lister) BatchProcess(ctx context.Context, cards []*models.CardAttributes) []*models.ListingResult {
	slots := make([]*models.ListingResult, len(cards))
	var mu sync.Mutex

	for i, card := range cards {
		i, card := i, card
		l.pool.Submit(func() {
			result, err := l.ProcessCard(ctx, card)
			if err != nil {
				l.logger.Error("[lister] Card %d (%s) failed: %v", i+1, card.Player, err)
				return
			}
			mu.Lock()
			slots[i] = result
			mu.Unlock()
		})
	}
	l.pool.Wait()

	results := make([]*models.ListingResult, 0, len(cards))
	for _, r := range slots {
		if r != nil {
			results = append(results, r)
		}
	}

	l.logger.Info("[lister] Batch complete: %d/%d cards processed", len(results), len(cards))
	return results
}
