// Package services contains stateless domain services for the outfit context.
package services

import (
	"sort"

	"github.com/ghuser/wardrobe/services/outfit/domain/models"
)

// RankCompanions counts, over every outfit containing target, each other item
// in that outfit. The result is ordered by count descending, then by lower
// item id, so it does not depend on the order of history.
func RankCompanions(history []models.Outfit, target int64) []models.Companion {
	counts := make(map[int64]int)
	for _, o := range history {
		if !o.Contains(target) {
			continue
		}
		for _, id := range o.ItemIDs {
			if id != target {
				counts[id]++
			}
		}
	}

	ranked := make([]models.Companion, 0, len(counts))
	for id, n := range counts {
		ranked = append(ranked, models.Companion{ItemID: id, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ItemID < ranked[j].ItemID
	})
	return ranked
}

// UsageCount is the number of outfits containing id.
func UsageCount(history []models.Outfit, id int64) int {
	n := 0
	for _, o := range history {
		if o.Contains(id) {
			n++
		}
	}
	return n
}
