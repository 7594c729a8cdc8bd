package storage

import (
	"strings"

	"github.com/poiesic/planmatch/core"
)

// FilterPredicate is a boolean combination of attribute comparisons used to
// hard-filter the catalog. A zero predicate matches everything: an unset
// condition is a universal match, never a default value.
//
// Tolerance bands are applied by the predicate builder before the predicate
// reaches storage; the comparisons here are exact.
type FilterPredicate struct {
	// MaxPromotionPrice keeps items with PromotionPrice <= the bound.
	MaxPromotionPrice *float64

	// MinDataGB keeps items with DataAmountGB >= the bound.
	MinDataGB *float64

	// ExcludeProvider drops items whose provider equals it, compared
	// case-insensitively. Empty means no exclusion.
	ExcludeProvider string

	// RoamingCovers keeps items whose roaming set is a superset of these
	// lowercased country names.
	RoamingCovers []string

	// BYODOnly keeps only bring-your-own-device items when true.
	BYODOnly bool
}

// Matches reports whether the item satisfies every set condition.
func (p *FilterPredicate) Matches(item *core.CatalogItem) bool {
	if item == nil {
		return false
	}
	if p.MaxPromotionPrice != nil && item.PromotionPrice > *p.MaxPromotionPrice {
		return false
	}
	if p.MinDataGB != nil && item.DataAmountGB < *p.MinDataGB {
		return false
	}
	if p.ExcludeProvider != "" && strings.EqualFold(item.Provider, p.ExcludeProvider) {
		return false
	}
	if len(p.RoamingCovers) > 0 {
		covered := make(map[string]bool, len(item.Roaming))
		for _, country := range item.Roaming {
			covered[strings.ToLower(country)] = true
		}
		for _, country := range p.RoamingCovers {
			if !covered[country] {
				return false
			}
		}
	}
	if p.BYODOnly && !item.BYODOrTerm {
		return false
	}
	return true
}

// Params returns the bound values of the set conditions, keyed by condition
// name. Used for structured logging of filter runs.
func (p *FilterPredicate) Params() map[string]any {
	params := make(map[string]any)
	if p.MaxPromotionPrice != nil {
		params["max_price"] = *p.MaxPromotionPrice
	}
	if p.MinDataGB != nil {
		params["min_data"] = *p.MinDataGB
	}
	if p.ExcludeProvider != "" {
		params["exclude_provider"] = p.ExcludeProvider
	}
	if len(p.RoamingCovers) > 0 {
		params["roaming"] = p.RoamingCovers
	}
	if p.BYODOnly {
		params["byod"] = true
	}
	return params
}
