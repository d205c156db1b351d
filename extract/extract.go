// Package extract provides read-only queries over an integrated
// chart.FinancialData: node lookup by account code, cross-entity value
// series, code validation, and dispersion statistics used to build
// spread-reduction targets.
//
// Absence is the normal case here. An entity without a value for a code is
// simply missing from the result series, never zero-filled, and a code
// found nowhere is reported as invalid rather than raising an error.
package extract

import (
	"github.com/shopspring/decimal"

	"github.com/gemfin/gemfin/chart"
)

// AccountCodeValue is one entity's reported value for one account code.
type AccountCodeValue struct {
	EntityCode  string  `json:"entityCode"`
	AccountCode string  `json:"accountCode"`
	Value       float64 `json:"value"`
	Year        int     `json:"year"`
}

// FindNodeByCode searches a tree depth-first for the exact code. Codes are
// unique within a tree, so the first match is the only match.
func FindNodeByCode(tree *chart.AccountNode, code string) *chart.AccountNode {
	return tree.Find(code)
}

// ExtractAccountValues collects, for each requested code, the values every
// entity reported for it. The income statement is searched first, then the
// balance sheet; once a value is found for an entity the second tree is
// not consulted. Entities without a value for a code are omitted.
//
// Entity iteration is sorted by entity key so results are deterministic.
func ExtractAccountValues(data *chart.FinancialData, codes []string) map[string][]AccountCodeValue {
	out := make(map[string][]AccountCodeValue, len(codes))
	entityKeys := data.EntityKeys()

	for _, code := range codes {
		var series []AccountCodeValue

		incomeNode := data.IncomeStatement.Find(code)
		balanceNode := data.BalanceSheet.Find(code)

		for _, key := range entityKeys {
			value, ok := lookupValue(incomeNode, key)
			if !ok {
				value, ok = lookupValue(balanceNode, key)
			}
			if !ok {
				continue
			}

			series = append(series, AccountCodeValue{
				EntityCode:  key,
				AccountCode: code,
				Value:       value.Amount.InexactFloat64(),
				Year:        data.Entities[key].Year,
			})
		}

		out[code] = series
	}

	return out
}

func lookupValue(node *chart.AccountNode, entityKey string) (chart.Value, bool) {
	if node == nil {
		return chart.Value{}, false
	}
	value, ok := node.Values[entityKey]
	return value, ok
}

// CodeValidation partitions requested codes into those found for at least
// one entity and those found nowhere.
type CodeValidation struct {
	Valid      []string
	Invalid    []string
	FoundCount map[string]int
}

// ValidateAccountCodes is a pre-flight check before expensive downstream
// processing: it reports which codes carry any values at all.
func ValidateAccountCodes(data *chart.FinancialData, codes []string) CodeValidation {
	result := CodeValidation{FoundCount: make(map[string]int, len(codes))}

	series := ExtractAccountValues(data, codes)
	for _, code := range codes {
		count := len(series[code])
		result.FoundCount[code] = count
		if count > 0 {
			result.Valid = append(result.Valid, code)
		} else {
			result.Invalid = append(result.Invalid, code)
		}
	}

	return result
}

// SubtreeTotal aggregates the values of an entity over a whole subtree.
// Node values never store aggregates, so totals are computed on read. The
// unit of the first value seen wins; false means the entity reported
// nothing in the subtree.
func SubtreeTotal(node *chart.AccountNode, entityKey string) (chart.Value, bool) {
	total := decimal.Zero
	unit := ""
	found := false

	node.Walk(func(n *chart.AccountNode) bool {
		if value, ok := n.Values[entityKey]; ok {
			total = total.Add(value.Amount)
			if unit == "" {
				unit = value.Unit
			}
			found = true
		}
		return true
	})

	if !found {
		return chart.Value{}, false
	}
	return chart.Value{Amount: total, Unit: unit}, true
}

// ScaledValue applies an entity's scaling factor (e.g. population) to a
// value, turning absolute figures into per-unit ones. Entities without a
// factor, with a zero factor, or with an unknown scaling mode return the
// value unchanged.
func ScaledValue(entity *chart.Entity, value float64) float64 {
	if entity == nil || entity.ScalingFactor == nil || entity.ScalingMode != chart.ScalingModeDivide {
		return value
	}
	factor := entity.ScalingFactor.InexactFloat64()
	if factor == 0 {
		return value
	}
	return value / factor
}
