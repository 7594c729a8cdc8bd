package ingestion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/planmatch/core"
)

// providerDataWeight is how many times the provider and data tokens are
// repeated in an item's embedding text. Repetition weights those fields
// more heavily in the semantic signal, matching how the query text leads
// with the provider preference.
const providerDataWeight = 4

// ItemText renders a catalog item as the weighted text its embedding is
// computed from. Provider and data amount come first and repeated; the
// remaining attributes follow once each in a fixed order.
func ItemText(item *core.CatalogItem) string {
	provider := "The provider is " + item.Provider + "."
	data := "The amount of data is " + formatAmount(item.DataAmountGB) + " GB."

	parts := []string{
		"Provider: " + repeat(provider, providerDataWeight),
		"Data: " + repeat(data, providerDataWeight),
		"Item: " + item.Name,
		"Region: " + item.Region,
		"Condition: " + item.Condition,
		"Channel: " + item.Channel,
		"Line Type: " + item.LineType,
		"Promotion Price: " + formatAmount(item.PromotionPrice),
		"Original Price: " + formatAmount(item.OriginalPrice),
		"Overage Rate: " + formatAmount(item.OverageRate),
		"Roaming: " + strings.Join(item.Roaming, ", "),
		"BYOD/Term: " + byodLabel(item.BYODOrTerm),
		"Free Long Distance: " + item.FreeLongDistance,
		"Activation Fee: " + formatAmount(item.ActivationFee),
		"Code: " + item.Code,
		"Tier: " + item.Tier,
	}
	if !item.PromoStartDate.IsZero() || !item.PromoEndDate.IsZero() {
		parts = append(parts, fmt.Sprintf("Promo: %s to %s",
			item.PromoStartDate.Format("2006-01-02"), item.PromoEndDate.Format("2006-01-02")))
	}

	return strings.Join(parts, ", ")
}

func repeat(token string, n int) string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = token
	}
	return strings.Join(tokens, " ")
}

func byodLabel(byod bool) string {
	if byod {
		return "BYOD"
	}
	return "Term"
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
