package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/apperr"
	catmodels "github.com/ghuser/wardrobe/services/catalog/domain/models"
	outfitdomain "github.com/ghuser/wardrobe/services/outfit/domain"
	"github.com/ghuser/wardrobe/services/outfit/domain/models"
	"github.com/ghuser/wardrobe/services/outfit/domain/repositories"
)

// DefaultUpcomingDays is how many dates UpcomingDates offers by default.
const DefaultUpcomingDays = 14

// ItemResolver resolves clothing ids, skipping ids that no longer exist.
type ItemResolver interface {
	GetMany(ctx context.Context, ownerID uuid.UUID, ids []int64) ([]*catmodels.ClothingItem, error)
}

// DayPlan is one day of a week view.
type DayPlan struct {
	Date    civil.Date
	Weekday time.Weekday
	ItemIDs []int64
	Items   []*catmodels.ClothingItem
}

// WeekView is a rendered Monday-to-Sunday calendar page.
type WeekView struct {
	Offset int
	Title  string
	Start  civil.Date
	End    civil.Date
	Days   []DayPlan
}

// PlannerService owns the outfit ledger.
type PlannerService struct {
	repo    repositories.OutfitRepository
	items   ItemResolver
	loc     *time.Location
	now     func() time.Time
	metrics *metrics
}

// NewPlannerService returns a planner whose notion of today follows loc.
func NewPlannerService(repo repositories.OutfitRepository, items ItemResolver, loc *time.Location) *PlannerService {
	if loc == nil {
		loc = time.UTC
	}
	return &PlannerService{repo: repo, items: items, loc: loc, now: time.Now, metrics: newMetrics()}
}

// Today is the current calendar date in the planner's time zone.
func (s *PlannerService) Today() civil.Date {
	return models.Today(s.now(), s.loc)
}

// Save merges ids into the outfit for date and returns the resulting set.
// Ids already planned stay planned; only Clear removes them. A date without a
// record gets one holding exactly ids, even when ids is empty.
func (s *PlannerService) Save(ctx context.Context, ownerID uuid.UUID, date civil.Date, ids []int64) ([]int64, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, apperr.Invalid(outfitdomain.ErrInvalidOutfit, "clothing id %d is not positive", id)
		}
	}
	if err := s.repo.Merge(ctx, ownerID, date, models.NormalizeIDs(ids)); err != nil {
		return nil, fmt.Errorf("merge outfit: %w", err)
	}
	s.metrics.write(ctx, "merge")
	return s.Get(ctx, ownerID, date)
}

// Clear empties the outfit for date. The record stays, with an empty set.
func (s *PlannerService) Clear(ctx context.Context, ownerID uuid.UUID, date civil.Date) error {
	if err := validDate(date); err != nil {
		return err
	}
	if err := s.repo.Clear(ctx, ownerID, date); err != nil {
		return fmt.Errorf("clear outfit: %w", err)
	}
	s.metrics.write(ctx, "clear")
	return nil
}

// Get returns the ids planned for date in ascending order. A missing record
// and an empty one both read as an empty slice.
func (s *PlannerService) Get(ctx context.Context, ownerID uuid.UUID, date civil.Date) ([]int64, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	ids, err := s.repo.Get(ctx, ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("get outfit: %w", err)
	}
	return ids, nil
}

// GetRange maps each date in [start, end] that has a record to its ids.
// Dates without a record are absent from the map.
func (s *PlannerService) GetRange(ctx context.Context, ownerID uuid.UUID, start, end civil.Date) (map[civil.Date][]int64, error) {
	if err := validDate(start); err != nil {
		return nil, err
	}
	if err := validDate(end); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, apperr.Invalid(outfitdomain.ErrInvalidRange, "start %s is after end %s", start, end)
	}
	records, err := s.repo.Range(ctx, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list outfits: %w", err)
	}
	out := make(map[civil.Date][]int64, len(records))
	for _, o := range records {
		out[o.Date] = o.ItemIDs
	}
	return out, nil
}

// ListPast returns records dated strictly before asOf, newest first.
func (s *PlannerService) ListPast(ctx context.Context, ownerID uuid.UUID, asOf civil.Date) ([]models.Outfit, error) {
	if err := validDate(asOf); err != nil {
		return nil, err
	}
	records, err := s.repo.Before(ctx, ownerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("list past outfits: %w", err)
	}
	return records, nil
}

// Items resolves the clothing planned for date. Deleted items are skipped.
func (s *PlannerService) Items(ctx context.Context, ownerID uuid.UUID, date civil.Date) ([]*catmodels.ClothingItem, error) {
	ids, err := s.Get(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*catmodels.ClothingItem{}, nil
	}
	items, err := s.items.GetMany(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve outfit items: %w", err)
	}
	return items, nil
}

// Week renders the calendar page offset weeks from the week containing today.
func (s *PlannerService) Week(ctx context.Context, ownerID uuid.UUID, today civil.Date, offset int) (*WeekView, error) {
	if !models.ValidWeekOffset(offset) {
		return nil, apperr.Invalid(outfitdomain.ErrInvalidWeek, "week %d is outside ±%d", offset, models.MaxWeekOffset)
	}
	w := models.NewWeek(today, offset)
	byDate, err := s.GetRange(ctx, ownerID, w.Start(), w.End())
	if err != nil {
		return nil, err
	}

	var all []int64
	for _, ids := range byDate {
		all = append(all, ids...)
	}
	resolved := map[int64]*catmodels.ClothingItem{}
	if len(all) > 0 {
		items, err := s.items.GetMany(ctx, ownerID, models.NormalizeIDs(all))
		if err != nil {
			return nil, fmt.Errorf("resolve week items: %w", err)
		}
		for _, item := range items {
			resolved[item.ID] = item
		}
	}

	view := &WeekView{Offset: w.Offset, Title: w.Title, Start: w.Start(), End: w.End()}
	for _, d := range w.Days {
		day := DayPlan{Date: d, Weekday: models.Weekday(d), ItemIDs: []int64{}, Items: []*catmodels.ClothingItem{}}
		if ids, ok := byDate[d]; ok {
			day.ItemIDs = ids
		}
		for _, id := range day.ItemIDs {
			if item, ok := resolved[id]; ok {
				day.Items = append(day.Items, item)
			}
		}
		view.Days = append(view.Days, day)
	}
	return view, nil
}

// UpcomingDates offers n dates starting today; n <= 0 means DefaultUpcomingDays.
func (s *PlannerService) UpcomingDates(n int) []models.PlanDate {
	if n <= 0 {
		n = DefaultUpcomingDays
	}
	return models.UpcomingDates(s.Today(), n)
}

func validDate(d civil.Date) error {
	if !d.IsValid() {
		return apperr.Invalid(outfitdomain.ErrInvalidDate, "%s is not a calendar date", d)
	}
	return nil
}
