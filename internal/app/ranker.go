package app

import (
	"sort"

	"github.com/LushWare-Org/Travel-Agency-Management-System-sub004/internal/domain"
)

// RankedOffers partitions the eligible set into offers the agent picks from
// explicitly and offers applied automatically. The partition is exhaustive
// and disjoint, and each half keeps its ranked order.
type RankedOffers struct {
	Exclusive          []domain.Offer
	AutoApplied        []domain.Offer
	SuggestedExclusive *domain.Offer
}

var typePriority = map[domain.DiscountType]int{
	domain.DiscountExclusive:      4,
	domain.DiscountTransportation: 3,
	domain.DiscountSeasonal:       2,
	domain.DiscountPercentage:     2,
	domain.DiscountLibert:         1,
}

// Rank orders eligible offers by type priority and partitions them. The sort
// is stable on priority alone: equal-priority offers (seasonal vs percentage)
// keep their catalog order. Libert offers are a catalog-wide fallback and are
// dropped whenever any non-libert offer qualifies.
func Rank(eligible []domain.Offer) RankedOffers {
	ranked := append([]domain.Offer{}, eligible...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return typePriority[ranked[i].Type] > typePriority[ranked[j].Type]
	})

	hasStronger := false
	for _, offer := range ranked {
		if offer.Type != domain.DiscountLibert {
			hasStronger = true
			break
		}
	}

	var result RankedOffers
	for _, offer := range ranked {
		if offer.Type == domain.DiscountLibert && hasStronger {
			continue
		}
		if offer.Type == domain.DiscountExclusive {
			result.Exclusive = append(result.Exclusive, offer)
			continue
		}
		result.AutoApplied = append(result.AutoApplied, offer)
	}

	if len(result.Exclusive) > 0 {
		first := result.Exclusive[0]
		result.SuggestedExclusive = &first
	}
	return result
}
