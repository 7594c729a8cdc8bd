package search

import "github.com/poiesic/planmatch/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(queryText string)
	AfterPredicateBuild(params map[string]any)
	AfterFilter(relaxedFields []string, matched int)
	AfterSimilarityRanking(candidates []core.Candidate)
	Finish(outcome *core.SearchOutcome)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                            {}
func (n *noopMonitor) AfterPredicateBuild(_ map[string]any)      {}
func (n *noopMonitor) AfterFilter(_ []string, _ int)             {}
func (n *noopMonitor) AfterSimilarityRanking(_ []core.Candidate) {}
func (n *noopMonitor) Finish(_ *core.SearchOutcome)              {}
