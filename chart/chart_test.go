package chart

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

// TestNew_TreesFullyPopulated verifies that the structural contract holds:
// both trees exist in full with empty value maps before any integration.
func TestNew_TreesFullyPopulated(t *testing.T) {
	data := New()

	assert.Equal(t, "root", data.BalanceSheet.Code)
	assert.Equal(t, "root", data.IncomeStatement.Code)
	assert.Equal(t, 0, len(data.Entities))

	// Spot-check nesting: 3600 sits under 360 under 36 under 3.
	node := data.IncomeStatement.Find("3600")
	assert.True(t, node != nil, "3600 should exist")

	parent := data.IncomeStatement.Find("360")
	found := false
	for _, child := range parent.Children {
		if child == node {
			found = true
		}
	}
	assert.True(t, found, "3600 should be a child of 360")

	// Every node starts without values.
	data.IncomeStatement.Walk(func(n *AccountNode) bool {
		assert.Equal(t, 0, len(n.Values))
		return true
	})
}

// TestNew_BalanceAndIncomeSeparated verifies codes land in the right tree.
func TestNew_BalanceAndIncomeSeparated(t *testing.T) {
	data := New()

	assert.True(t, data.BalanceSheet.Find("100") != nil, "100 belongs to the balance sheet")
	assert.True(t, data.IncomeStatement.Find("100") == nil, "100 must not be in the income statement")
	assert.True(t, data.IncomeStatement.Find("400") != nil, "400 belongs to the income statement")
	assert.True(t, data.BalanceSheet.Find("400") == nil, "400 must not be in the balance sheet")
}

func TestFind_MissingCode(t *testing.T) {
	data := New()
	assert.True(t, data.BalanceSheet.Find("999") == nil, "unknown code yields nil")
}

func TestLabels_FallbackToGerman(t *testing.T) {
	l := Labels{DE: "Aufwand", FR: "Charges"}

	assert.Equal(t, "Charges", l.Get(LangFR))
	assert.Equal(t, "Aufwand", l.Get(LangIT))
	assert.Equal(t, "Aufwand", l.Get(LangEN))
	assert.Equal(t, "Aufwand", l.Get("unknown"))
}

func TestDimensionForCode(t *testing.T) {
	assert.Equal(t, DimBilanz, DimensionForCode("100"))
	assert.Equal(t, DimBilanz, DimensionForCode("29"))
	assert.Equal(t, DimAufwand, DimensionForCode("3600"))
	assert.Equal(t, DimErtrag, DimensionForCode("46"))
	assert.Equal(t, Dimension(""), DimensionForCode("900"))
	assert.Equal(t, Dimension(""), DimensionForCode(""))
}

func TestTreeFor(t *testing.T) {
	data := New()

	assert.Equal(t, data.BalanceSheet, data.TreeFor(DimBilanz))
	assert.Equal(t, data.IncomeStatement, data.TreeFor(DimAufwand))
	assert.Equal(t, data.IncomeStatement, data.TreeFor(DimErtrag))
	assert.True(t, data.TreeFor("") == nil, "unmappable dimension has no tree")
}

func TestMarkUsed_Deduplicates(t *testing.T) {
	data := New()

	data.MarkUsed("3600")
	data.MarkUsed("3600")
	data.MarkUnused("9999")
	data.MarkUnused("9999")

	assert.Equal(t, []string{"3600"}, data.UsedCodes)
	assert.Equal(t, []string{"9999"}, data.UnusedCodes)
}

func TestEntityKeys_Sorted(t *testing.T) {
	data := New()
	data.Entities["gdn/fs/b:2022"] = &Entity{Code: "gdn/fs/b:2022"}
	data.Entities["gdn/fs/a:2022"] = &Entity{Code: "gdn/fs/a:2022"}

	assert.Equal(t, []string{"gdn/fs/a:2022", "gdn/fs/b:2022"}, data.EntityKeys())
}

func TestWalk_StopsEarly(t *testing.T) {
	data := New()

	visited := 0
	data.IncomeStatement.Walk(func(n *AccountNode) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestValues_PerEntity(t *testing.T) {
	data := New()
	node := data.IncomeStatement.Find("3600")

	node.Values["gdn/fs/010002:2022"] = Value{Amount: decimal.NewFromInt(1500), Unit: "CHF"}
	node.Values["gdn/fs/010003:2022"] = Value{Amount: decimal.NewFromInt(2500), Unit: "CHF"}

	assert.Equal(t, []string{"gdn/fs/010002:2022", "gdn/fs/010003:2022"}, node.EntityKeys())
	assert.Equal(t, int64(1500), node.Values["gdn/fs/010002:2022"].Amount.IntPart())
}
