package ingestion

import (
	"strings"
	"testing"

	"github.com/poiesic/planmatch/core"
	"github.com/stretchr/testify/assert"
)

func TestItemText_WeightsProviderAndData(t *testing.T) {
	item := &core.CatalogItem{
		Name:         "Essential 30",
		Provider:     "bell",
		DataAmountGB: 30,
	}

	text := ItemText(item)

	assert.Equal(t, providerDataWeight, strings.Count(text, "The provider is bell."))
	assert.Equal(t, providerDataWeight, strings.Count(text, "The amount of data is 30 GB."))
	assert.Contains(t, text, "Item: Essential 30")
}

func TestItemText_IncludesAttributes(t *testing.T) {
	item := &core.CatalogItem{
		Name:           "Big 100",
		Provider:       "telus",
		Region:         "BC",
		PromotionPrice: 80,
		DataAmountGB:   100,
		Roaming:        []string{"usa", "mexico"},
		BYODOrTerm:     true,
		Tier:           "top",
	}

	text := ItemText(item)

	assert.Contains(t, text, "Region: BC")
	assert.Contains(t, text, "Promotion Price: 80")
	assert.Contains(t, text, "Roaming: usa, mexico")
	assert.Contains(t, text, "BYOD/Term: BYOD")
	assert.Contains(t, text, "Tier: top")
	assert.NotContains(t, text, "Promo:", "zero promo dates are omitted")
}

func TestItemText_Deterministic(t *testing.T) {
	item := &core.CatalogItem{Name: "A", Provider: "bell", DataAmountGB: 10}
	assert.Equal(t, ItemText(item), ItemText(item))
}
