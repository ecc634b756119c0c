package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	catmodels "github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/outfit/domain/models"
	"github.com/ghuser/wardrobe/services/outfit/domain/repositories"
	domainsvcs "github.com/ghuser/wardrobe/services/outfit/domain/services"
)

// DefaultTopCompanions is how many companions Report shows per item by default.
const DefaultTopCompanions = 5

// ResolvedCompanion is a companion whose clothing item still exists.
type ResolvedCompanion struct {
	Item  *catmodels.ClothingItem
	Count int
}

// ItemReport summarizes how one item has been worn. Item is nil when the id
// does not resolve, and the other fields are then empty.
type ItemReport struct {
	ItemID     int64
	Item       *catmodels.ClothingItem
	UsageCount int
	Companions []ResolvedCompanion
}

// HistoryService answers read-only questions over the outfit ledger.
type HistoryService struct {
	repo    repositories.OutfitRepository
	items   ItemResolver
	metrics *metrics
}

func NewHistoryService(repo repositories.OutfitRepository, items ItemResolver) *HistoryService {
	return &HistoryService{repo: repo, items: items, metrics: newMetrics()}
}

// ItemHistory returns every record containing itemID, newest first.
func (s *HistoryService) ItemHistory(ctx context.Context, ownerID uuid.UUID, itemID int64) ([]models.Outfit, error) {
	history, err := s.repo.Containing(ctx, ownerID, itemID)
	if err != nil {
		return nil, fmt.Errorf("load item history: %w", err)
	}
	return history, nil
}

// CompanionFrequency ranks every item worn alongside target: count
// descending, then lower id first.
func (s *HistoryService) CompanionFrequency(ctx context.Context, ownerID uuid.UUID, target int64) ([]models.Companion, error) {
	history, err := s.ItemHistory(ctx, ownerID, target)
	if err != nil {
		return nil, err
	}
	s.metrics.query(ctx, "companions")
	return domainsvcs.RankCompanions(history, target), nil
}

// UsageCount is the number of dates whose record contains itemID.
func (s *HistoryService) UsageCount(ctx context.Context, ownerID uuid.UUID, itemID int64) (int, error) {
	history, err := s.ItemHistory(ctx, ownerID, itemID)
	if err != nil {
		return 0, err
	}
	s.metrics.query(ctx, "usage")
	return domainsvcs.UsageCount(history, itemID), nil
}

// Report builds an ItemReport per distinct id, in request order. Only the
// topN highest ranked companions are considered; those whose item was deleted
// are dropped rather than replaced. topN <= 0 means DefaultTopCompanions.
func (s *HistoryService) Report(ctx context.Context, ownerID uuid.UUID, ids []int64, topN int) ([]ItemReport, error) {
	if topN <= 0 {
		topN = DefaultTopCompanions
	}
	s.metrics.query(ctx, "report")

	reports := make([]ItemReport, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		report := ItemReport{ItemID: id, Companions: []ResolvedCompanion{}}
		found, err := s.items.GetMany(ctx, ownerID, []int64{id})
		if err != nil {
			return nil, fmt.Errorf("resolve item %d: %w", id, err)
		}
		if len(found) == 0 {
			reports = append(reports, report)
			continue
		}
		report.Item = found[0]

		history, err := s.ItemHistory(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}
		report.UsageCount = len(history)

		ranked := domainsvcs.RankCompanions(history, id)
		if len(ranked) > topN {
			ranked = ranked[:topN]
		}
		if len(ranked) > 0 {
			report.Companions, err = s.resolve(ctx, ownerID, ranked)
			if err != nil {
				return nil, err
			}
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *HistoryService) resolve(ctx context.Context, ownerID uuid.UUID, ranked []models.Companion) ([]ResolvedCompanion, error) {
	ids := make([]int64, len(ranked))
	for i, c := range ranked {
		ids[i] = c.ItemID
	}
	items, err := s.items.GetMany(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve companions: %w", err)
	}
	byID := make(map[int64]*catmodels.ClothingItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	out := make([]ResolvedCompanion, 0, len(ranked))
	for _, c := range ranked {
		if item, ok := byID[c.ItemID]; ok {
			out = append(out, ResolvedCompanion{Item: item, Count: c.Count})
		}
	}
	return out, nil
}
