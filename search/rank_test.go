package search

import (
	"errors"
	"testing"

	"github.com/poiesic/planmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderForPresentation(t *testing.T) {
	a := core.Candidate{Item: &core.CatalogItem{Name: "A", PromotionPrice: 30, DataAmountGB: 10, Roaming: []string{"usa", "mexico"}}}
	b := core.Candidate{Item: &core.CatalogItem{Name: "B", PromotionPrice: 30, DataAmountGB: 15, Roaming: []string{"usa"}}}
	c := core.Candidate{Item: &core.CatalogItem{Name: "C", PromotionPrice: 25, DataAmountGB: 5}}

	ordered := orderForPresentation([]core.Candidate{a, b, c})

	require.Len(t, ordered, 3)
	assert.Equal(t, "C", ordered[0].Item.Name, "lowest price first")
	assert.Equal(t, "B", ordered[1].Item.Name, "price tie broken by more data")
	assert.Equal(t, "A", ordered[2].Item.Name)
}

func TestOrderForPresentation_RoamingBreaksFullTie(t *testing.T) {
	a := core.Candidate{Item: &core.CatalogItem{Name: "A", PromotionPrice: 30, DataAmountGB: 10, Roaming: []string{"usa"}}}
	b := core.Candidate{Item: &core.CatalogItem{Name: "B", PromotionPrice: 30, DataAmountGB: 10, Roaming: []string{"usa", "mexico"}}}

	ordered := orderForPresentation([]core.Candidate{a, b})
	assert.Equal(t, "B", ordered[0].Item.Name, "wider roaming coverage wins the tie")
}

func TestOrderForPresentation_StableOnFullTie(t *testing.T) {
	first := core.Candidate{Item: &core.CatalogItem{Name: "First", PromotionPrice: 30, DataAmountGB: 10}}
	second := core.Candidate{Item: &core.CatalogItem{Name: "Second", PromotionPrice: 30, DataAmountGB: 10}}

	ordered := orderForPresentation([]core.Candidate{first, second})
	assert.Equal(t, "First", ordered[0].Item.Name)
	assert.Equal(t, "Second", ordered[1].Item.Name)
}

func TestRankBySimilarity_TopK(t *testing.T) {
	query := []float32{1, 0, 0}
	items := []*core.CatalogItem{
		{Name: "orthogonal", Vector: []float32{0, 1, 0}},
		{Name: "aligned", Vector: []float32{1, 0, 0}},
		{Name: "close", Vector: []float32{0.9, 0.1, 0}},
	}

	ranked, err := newCandidateSet(items).rankBySimilarity(query, 2)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, "aligned", ranked[0].Item.Name)
	assert.Equal(t, "close", ranked[1].Item.Name)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankBySimilarity_MissingVectorScoresZero(t *testing.T) {
	query := []float32{1, 0, 0}
	items := []*core.CatalogItem{
		{Name: "no-vector"},
		{Name: "aligned", Vector: []float32{1, 0, 0}},
	}

	ranked, err := newCandidateSet(items).rankBySimilarity(query, 10)
	require.NoError(t, err)

	require.Len(t, ranked, 2, "items without vectors stay eligible")
	assert.Equal(t, "aligned", ranked[0].Item.Name)
	assert.Equal(t, "no-vector", ranked[1].Item.Name)
	assert.Zero(t, ranked[1].Score)
}

func TestRankBySimilarity_DimensionMismatch(t *testing.T) {
	query := []float32{1, 0, 0}
	items := []*core.CatalogItem{
		{Name: "bad", Provider: "bell", Vector: []float32{1, 0}},
	}

	_, err := newCandidateSet(items).rankBySimilarity(query, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrVectorDimension))
}

func TestRankBySimilarity_Empty(t *testing.T) {
	ranked, err := newCandidateSet(nil).rankBySimilarity([]float32{1, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestCosineSimilarity(t *testing.T) {
	sim, err := cosineSimilarity([]float32{1, 0}, []float32{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-6)

	sim, err = cosineSimilarity([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-6)

	// Zero vectors score zero rather than dividing by zero.
	sim, err = cosineSimilarity([]float32{0, 0}, []float32{1, 0})
	require.NoError(t, err)
	assert.Zero(t, sim)
}
