package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/planmatch/core"
)

// CSV column names, matching the catalog export format. item_name and
// provider are required; everything else is optional and defaults to the
// zero value.
const (
	colItemName       = "item_name"
	colProvider       = "provider"
	colPromoStartDate = "promo_start_date"
	colPromoEndDate   = "promo_end_date"
	colChannel        = "channel"
	colRegion         = "region"
	colCondition      = "condition"
	colLineType       = "line_type"
	colPromotionPrice = "promotion_price"
	colData           = "data"
	colOriginalPrice  = "original_price"
	colOverageRate    = "overage_rate"
	colRoaming        = "roaming"
	colBYODOrTerm     = "byod_or_term"
	colFreeLD         = "free_ld"
	colActivationFee  = "activation_fee"
	colCode           = "code"
	colTier           = "tier"
)

const dateLayout = "2006-01-02"

// ParseCSV reads catalog items from CSV data. The first row must be a
// header naming the columns; column order is free and unknown columns are
// ignored. Malformed numeric cells are an error naming the row, never
// silently dropped.
func ParseCSV(r io.Reader) ([]*core.CatalogItem, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colItemName, colProvider} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, required)
		}
	}

	var items []*core.CatalogItem
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		item, err := rowToItem(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func rowToItem(row []string, cols map[string]int) (*core.CatalogItem, error) {
	cell := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	item := &core.CatalogItem{
		Name:             cell(colItemName),
		Provider:         strings.ToLower(cell(colProvider)),
		Region:           cell(colRegion),
		Condition:        cell(colCondition),
		Channel:          cell(colChannel),
		LineType:         cell(colLineType),
		FreeLongDistance: cell(colFreeLD),
		Code:             cell(colCode),
		Tier:             cell(colTier),
		Roaming:          splitList(cell(colRoaming)),
		BYODOrTerm:       strings.EqualFold(cell(colBYODOrTerm), "byod"),
	}

	var err error
	if item.PromotionPrice, err = parseFloat(cell(colPromotionPrice)); err != nil {
		return nil, fmt.Errorf("%s: %w", colPromotionPrice, err)
	}
	if item.OriginalPrice, err = parseFloat(cell(colOriginalPrice)); err != nil {
		return nil, fmt.Errorf("%s: %w", colOriginalPrice, err)
	}
	if item.OverageRate, err = parseFloat(cell(colOverageRate)); err != nil {
		return nil, fmt.Errorf("%s: %w", colOverageRate, err)
	}
	if item.DataAmountGB, err = parseFloat(cell(colData)); err != nil {
		return nil, fmt.Errorf("%s: %w", colData, err)
	}
	if item.ActivationFee, err = parseFloat(cell(colActivationFee)); err != nil {
		return nil, fmt.Errorf("%s: %w", colActivationFee, err)
	}
	if item.PromoStartDate, err = parseDate(cell(colPromoStartDate)); err != nil {
		return nil, fmt.Errorf("%s: %w", colPromoStartDate, err)
	}
	if item.PromoEndDate, err = parseDate(cell(colPromoEndDate)); err != nil {
		return nil, fmt.Errorf("%s: %w", colPromoEndDate, err)
	}

	if err := core.ValidateCatalogItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// splitList splits a delimited cell like "USA; Mexico" into lowercased
// entries. Both comma and semicolon delimiters appear in exports.
func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	fields := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ';'
	})
	entries := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			entries = append(entries, strings.ToLower(trimmed))
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

func parseFloat(cell string) (float64, error) {
	if cell == "" {
		return 0, nil
	}
	return strconv.ParseFloat(cell, 64)
}

func parseDate(cell string) (time.Time, error) {
	if cell == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, cell)
}
