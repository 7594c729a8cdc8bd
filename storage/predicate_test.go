package storage

import (
	"testing"

	"github.com/poiesic/planmatch/core"
	"github.com/stretchr/testify/assert"
)

func f64Ptr(v float64) *float64 { return &v }

func TestFilterPredicate_ZeroMatchesEverything(t *testing.T) {
	pred := &FilterPredicate{}

	items := []*core.CatalogItem{
		{Name: "A", Provider: "bell", PromotionPrice: 999, DataAmountGB: 0},
		{Name: "B", Provider: "rogers", BYODOrTerm: false},
	}
	for _, item := range items {
		assert.True(t, pred.Matches(item), "zero predicate must match %s", item.Name)
	}
}

func TestFilterPredicate_PriceCeiling(t *testing.T) {
	pred := &FilterPredicate{MaxPromotionPrice: f64Ptr(55)}

	tests := []struct {
		name  string
		price float64
		want  bool
	}{
		{"well under", 40, true},
		{"exactly at bound", 55, true},
		{"just over bound", 55.0001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &core.CatalogItem{Name: "plan", Provider: "bell", PromotionPrice: tt.price}
			assert.Equal(t, tt.want, pred.Matches(item))
		})
	}
}

func TestFilterPredicate_DataFloor(t *testing.T) {
	pred := &FilterPredicate{MinDataGB: f64Ptr(9)}

	assert.True(t, pred.Matches(&core.CatalogItem{DataAmountGB: 9}))
	assert.True(t, pred.Matches(&core.CatalogItem{DataAmountGB: 20}))
	assert.False(t, pred.Matches(&core.CatalogItem{DataAmountGB: 8.9}))
}

func TestFilterPredicate_ProviderExclusion(t *testing.T) {
	pred := &FilterPredicate{ExcludeProvider: "rogers"}

	assert.False(t, pred.Matches(&core.CatalogItem{Provider: "rogers"}))
	assert.False(t, pred.Matches(&core.CatalogItem{Provider: "Rogers"}), "exclusion is case-insensitive")
	assert.True(t, pred.Matches(&core.CatalogItem{Provider: "bell"}))
}

func TestFilterPredicate_RoamingSuperset(t *testing.T) {
	pred := &FilterPredicate{RoamingCovers: []string{"china", "usa"}}

	tests := []struct {
		name    string
		roaming []string
		want    bool
	}{
		{"exact cover", []string{"china", "usa"}, true},
		{"superset", []string{"usa", "china", "japan"}, true},
		{"mixed case item names", []string{"China", "USA"}, true},
		{"partial cover", []string{"china"}, false},
		{"no roaming", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &core.CatalogItem{Roaming: tt.roaming}
			assert.Equal(t, tt.want, pred.Matches(item))
		})
	}
}

func TestFilterPredicate_BYOD(t *testing.T) {
	pred := &FilterPredicate{BYODOnly: true}

	assert.True(t, pred.Matches(&core.CatalogItem{BYODOrTerm: true}))
	assert.False(t, pred.Matches(&core.CatalogItem{BYODOrTerm: false}))

	// Unset byod imposes no constraint.
	none := &FilterPredicate{}
	assert.True(t, none.Matches(&core.CatalogItem{BYODOrTerm: false}))
}

func TestFilterPredicate_NilItem(t *testing.T) {
	pred := &FilterPredicate{}
	assert.False(t, pred.Matches(nil))
}

func TestFilterPredicate_Params(t *testing.T) {
	pred := &FilterPredicate{
		MaxPromotionPrice: f64Ptr(55),
		ExcludeProvider:   "rogers",
	}

	params := pred.Params()
	assert.Equal(t, 55.0, params["max_price"])
	assert.Equal(t, "rogers", params["exclude_provider"])
	assert.NotContains(t, params, "min_data")
	assert.NotContains(t, params, "byod")
}
