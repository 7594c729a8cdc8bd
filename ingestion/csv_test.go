package ingestion

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/planmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `item_name,provider,promotion_price,data,roaming,byod_or_term,promo_start_date,promo_end_date,code,tier
Essential 30,Bell,45,30,"USA; Mexico",BYOD,2026-01-01,2026-03-31,ESS30,mid
Big 100,Telus,80,100,,Term,,,B100,top
`

func TestParseCSV(t *testing.T) {
	items, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Essential 30", first.Name)
	assert.Equal(t, "bell", first.Provider, "provider is lowercased")
	assert.Equal(t, 45.0, first.PromotionPrice)
	assert.Equal(t, 30.0, first.DataAmountGB)
	assert.Equal(t, []string{"usa", "mexico"}, first.Roaming)
	assert.True(t, first.BYODOrTerm)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), first.PromoStartDate)
	assert.Equal(t, "ESS30", first.Code)

	second := items[1]
	assert.Equal(t, "telus", second.Provider)
	assert.Nil(t, second.Roaming)
	assert.False(t, second.BYODOrTerm)
	assert.True(t, second.PromoStartDate.IsZero())
}

func TestParseCSV_ColumnOrderFree(t *testing.T) {
	csv := "provider,item_name\nbell,Essential 30\n"
	items, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Essential 30", items[0].Name)
}

func TestParseCSV_UnknownColumnsIgnored(t *testing.T) {
	csv := "item_name,provider,mystery\nEssential 30,bell,whatever\n"
	items, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestParseCSV_MissingRequiredColumn(t *testing.T) {
	csv := "item_name,promotion_price\nEssential 30,45\n"
	_, err := ParseCSV(strings.NewReader(csv))
	assert.True(t, errors.Is(err, ErrUnknownColumn))
}

func TestParseCSV_EmptyInput(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrMissingHeader))
}

func TestParseCSV_MalformedNumber(t *testing.T) {
	csv := "item_name,provider,promotion_price\nEssential 30,bell,notanumber\n"
	_, err := ParseCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "promotion_price")
}

func TestParseCSV_InvalidItem(t *testing.T) {
	csv := "item_name,provider\n,bell\n"
	_, err := ParseCSV(strings.NewReader(csv))
	assert.True(t, errors.Is(err, core.ErrInvalidCatalogItem))
}
