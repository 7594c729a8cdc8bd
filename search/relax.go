package search

import (
	"strings"

	"github.com/poiesic/planmatch/core"
)

// relaxationLadder is the fixed order in which constraints are dropped when
// filtering yields no candidates. Only targetPrice, targetData, and
// currentProvider are ever dropped. Roaming, minDataGB, and byod are firm
// user requirements and never relaxed.
//
// Single fields are tried first, then pairs, then all three. The first rung
// that yields at least one candidate wins and later rungs are never tried.
var relaxationLadder = [][]string{
	{core.FieldTargetPrice},
	{core.FieldTargetData},
	{core.FieldCurrentProvider},
	{core.FieldTargetPrice, core.FieldTargetData},
	{core.FieldTargetPrice, core.FieldCurrentProvider},
	{core.FieldTargetData, core.FieldCurrentProvider},
	{core.FieldTargetPrice, core.FieldTargetData, core.FieldCurrentProvider},
}

// filterAttempts returns the sequence of requirement states to filter with:
// the original state first, then one copy per ladder rung with the rung's
// fields dropped. The original state is never modified. Rungs that would
// produce a state already tried (their set fields match an earlier rung's)
// are skipped.
func filterAttempts(req *core.RequirementState) []filterAttempt {
	attempts := []filterAttempt{{state: req.Clone()}}
	seen := map[string]bool{"": true}

	for _, rung := range relaxationLadder {
		dropped := make([]string, 0, len(rung))
		for _, field := range rung {
			if fieldSet(req, field) {
				dropped = append(dropped, field)
			}
		}
		dropped = canonicalOrder(dropped)

		key := strings.Join(dropped, ",")
		if seen[key] {
			continue
		}
		seen[key] = true

		attempts = append(attempts, filterAttempt{
			state:         req.WithoutFields(rung...),
			relaxedFields: dropped,
		})
	}

	return attempts
}

// filterAttempt is one candidate requirement state to filter with, paired
// with the fields that were dropped to produce it.
type filterAttempt struct {
	state         core.RequirementState
	relaxedFields []string
}

func fieldSet(req *core.RequirementState, field string) bool {
	switch field {
	case core.FieldCurrentProvider:
		return req.CurrentProvider != nil
	case core.FieldTargetPrice:
		return req.TargetPrice != nil
	case core.FieldTargetData:
		return req.TargetData != nil
	}
	return false
}

// canonicalOrder sorts field names into the canonical requirement field order.
func canonicalOrder(fields []string) []string {
	ordered := make([]string, 0, len(fields))
	for _, field := range core.RequirementFields {
		for _, f := range fields {
			if f == field {
				ordered = append(ordered, field)
				break
			}
		}
	}
	return ordered
}
