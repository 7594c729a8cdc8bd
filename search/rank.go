package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/poiesic/planmatch/core"
)

// candidateSet holds items that already passed the hard predicate. It is the
// only input the ranking functions accept and it is constructed in exactly
// one place, from the filter output, so an unfiltered item can never reach
// ranking or the result set.
type candidateSet struct {
	items []*core.CatalogItem
}

func newCandidateSet(items []*core.CatalogItem) candidateSet {
	return candidateSet{items: items}
}

func (cs candidateSet) empty() bool {
	return len(cs.items) == 0
}

// rankBySimilarity scores every candidate against the query vector and
// returns the top limit candidates, best first. Items without a precomputed
// vector score zero and sort last; they stay eligible because they passed
// the hard filter. A stored vector whose dimension differs from the query
// vector is a configuration error, not a per-item condition.
func (cs candidateSet) rankBySimilarity(queryVec []float32, limit int) ([]core.Candidate, error) {
	candidates := make([]core.Candidate, 0, len(cs.items))
	for _, item := range cs.items {
		var score float32
		if len(item.Vector) > 0 {
			var err error
			score, err = cosineSimilarity(queryVec, item.Vector)
			if err != nil {
				return nil, fmt.Errorf("%w: item %s", err, item.Key())
			}
		}
		candidates = append(candidates, core.Candidate{Item: item, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// orderForPresentation sorts candidates into the final presentation order:
// promotion price ascending, then data amount descending, then roaming
// coverage descending. Candidates still tied after all three keys keep
// their input order.
func orderForPresentation(candidates []core.Candidate) []core.Candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].Item, candidates[j].Item
		if a.PromotionPrice != b.PromotionPrice {
			return a.PromotionPrice < b.PromotionPrice
		}
		if a.DataAmountGB != b.DataAmountGB {
			return a.DataAmountGB > b.DataAmountGB
		}
		return len(a.Roaming) > len(b.Roaming)
	})
	return candidates
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Returns ErrVectorDimension when the dimensions differ.
func cosineSimilarity(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", core.ErrVectorDimension, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB))), nil
}
