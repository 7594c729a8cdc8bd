package search

import (
	"strconv"
	"strings"

	"github.com/poiesic/planmatch/core"
	"github.com/poiesic/planmatch/storage"
)

// Multiplicative tolerance bands applied to numeric predicates so a plan a
// few dollars over budget or a few GB under target is not filtered out.
const (
	priceTolerance = 1.1
	dataTolerance  = 0.9
)

// BuildPredicate converts a requirement into the hard filter predicate.
// Unset fields contribute no condition. Tolerance bands are folded into the
// bounds here; the predicate itself compares exactly.
func BuildPredicate(req *core.RequirementState) *storage.FilterPredicate {
	pred := &storage.FilterPredicate{}

	if req.TargetPrice != nil {
		ceiling := *req.TargetPrice * priceTolerance
		pred.MaxPromotionPrice = &ceiling
	}
	// The data floor folds together the tolerance-adjusted target and the
	// firm minimum; the stricter of the two wins.
	if req.TargetData != nil {
		floor := *req.TargetData * dataTolerance
		pred.MinDataGB = &floor
	}
	if req.MinDataGB != nil && (pred.MinDataGB == nil || *req.MinDataGB > *pred.MinDataGB) {
		floor := *req.MinDataGB
		pred.MinDataGB = &floor
	}
	if req.CurrentProvider != nil {
		pred.ExcludeProvider = *req.CurrentProvider
	}
	if req.Roaming != nil {
		covers := make([]string, len(req.Roaming))
		for i, country := range req.Roaming {
			covers[i] = strings.ToLower(country)
		}
		pred.RoamingCovers = covers
	}
	if req.BYOD != nil && *req.BYOD {
		pred.BYODOnly = true
	}

	return pred
}

// BuildQueryText renders the requirement as weighted text for semantic
// ranking. Providers the user can switch to lead the text so the provider
// signal dominates the embedding; the remaining fields follow as key:value
// tokens in canonical field order. This text, not the raw user utterance,
// is what gets embedded.
func BuildQueryText(req *core.RequirementState, knownProviders []string) string {
	var parts []string

	var candidates []string
	for _, provider := range knownProviders {
		if req.CurrentProvider != nil && strings.EqualFold(provider, *req.CurrentProvider) {
			continue
		}
		candidates = append(candidates, provider)
	}
	if len(candidates) > 0 {
		parts = append(parts, "provider: "+strings.Join(candidates, ", "))
	}

	if req.TargetPrice != nil {
		parts = append(parts, "target_price: "+formatNumber(*req.TargetPrice))
	}
	if req.TargetData != nil {
		parts = append(parts, "target_data: "+formatNumber(*req.TargetData)+" GB")
	}
	if req.Roaming != nil {
		parts = append(parts, "roaming: "+strings.Join(req.Roaming, ", "))
	}
	if req.MinDataGB != nil {
		parts = append(parts, "min_data_gb: "+formatNumber(*req.MinDataGB))
	}
	if req.BYOD != nil && *req.BYOD {
		parts = append(parts, "byod: true")
	}

	return strings.Join(parts, ", ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
