// Package chart provides the canonical hierarchical chart of accounts for
// Swiss municipal and cantonal financial statements (HRM2 numbering). It
// holds two static trees, the balance sheet (codes 1 and 2) and the income
// statement (codes 3 and 4), and stores per-entity reported values on the
// nodes of those trees.
//
// The tree shape is fixed data, versioned with the accounting standard. It
// is never grown at runtime: integration locates existing nodes by account
// code and either records a value or reports the code as unused.
//
// Example usage:
//
//	data := chart.New()
//	node := data.BalanceSheet.Find("100")
//	node.Values["gdn/fs/010002:2022"] = chart.Value{Amount: amount, Unit: "CHF"}
package chart

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Language codes used for account and entity labels.
const (
	LangDE = "de"
	LangFR = "fr"
	LangIT = "it"
	LangEN = "en"
)

// Labels holds the four-language label set used throughout the chart.
// German is the authoritative language of the source data; the other
// languages fall back to it when empty.
type Labels struct {
	DE string `json:"de"`
	FR string `json:"fr"`
	IT string `json:"it"`
	EN string `json:"en"`
}

// Get returns the label in the requested language, falling back to German.
func (l Labels) Get(lang string) string {
	var s string
	switch lang {
	case LangFR:
		s = l.FR
	case LangIT:
		s = l.IT
	case LangEN:
		s = l.EN
	case LangDE:
		s = l.DE
	}
	if s == "" {
		return l.DE
	}
	return s
}

// Value is a single reported figure for one entity on one account node.
type Value struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}

// AccountNode is a node of a chart-of-accounts tree. Code is unique within
// its tree. Values maps entity keys ("source/model/entity:year") to the
// figure that entity reported for this account. A node's own Values never
// include aggregated children values; subtree totals are computed on read.
type AccountNode struct {
	Code     string           `json:"code"`
	Labels   Labels           `json:"labels"`
	Values   map[string]Value `json:"values,omitempty"`
	Children []*AccountNode   `json:"children,omitempty"`
}

// Find performs a depth-first search for the node with the exact code.
// Codes are unique within a tree, so the first match is the only match.
// Returns nil if the code is not part of the tree.
func (n *AccountNode) Find(code string) *AccountNode {
	if n == nil {
		return nil
	}
	if n.Code == code {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(code); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits the node and all descendants in pre-order. Returning false
// from fn stops the traversal.
func (n *AccountNode) Walk(fn func(*AccountNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// EntityKeys returns the sorted entity keys that reported a value on this
// node. Sorting keeps iteration deterministic for display and tests.
func (n *AccountNode) EntityKeys() []string {
	keys := maps.Keys(n.Values)
	slices.Sort(keys)
	return keys
}

// Dimension identifies which statement a raw record belongs to.
type Dimension string

const (
	DimBilanz  Dimension = "bilanz"  // balance sheet
	DimAufwand Dimension = "aufwand" // expenses (income statement)
	DimErtrag  Dimension = "ertrag"  // revenues (income statement)
)

// DimensionForCode derives the dimension from the first digit of an account
// code. Codes outside the 1-4 range have no dimension; the empty string
// signals an unmappable record.
func DimensionForCode(code string) Dimension {
	if code == "" {
		return ""
	}
	switch code[0] {
	case '1', '2':
		return DimBilanz
	case '3':
		return DimAufwand
	case '4':
		return DimErtrag
	}
	return ""
}

// Metadata describes where and when a structure or entity was loaded.
type Metadata struct {
	Source      string    `json:"source"`
	LoadedAt    time.Time `json:"loadedAt"`
	RecordCount int       `json:"recordCount"`
}

// Entity is one reporting government unit for a specific year and model.
// Code is the composite key "source/model/entityId:year".
type Entity struct {
	Code          string           `json:"code"`
	Name          Labels           `json:"name"`
	ScalingFactor *decimal.Decimal `json:"scalingFactor,omitempty"`
	ScalingInfo   Labels           `json:"scalingInfo,omitempty"`
	ScalingMode   string           `json:"scalingMode,omitempty"`
	Year          int              `json:"year"`
	Metadata      Metadata         `json:"metadata"`
}

// ScalingModeDivide is the only supported scaling mode: the reported value
// is divided by the scaling factor (e.g. population for per-capita views).
const ScalingModeDivide = "divide"

// FinancialData is the integrated result of one load cycle: both account
// trees, the entities that contributed values, and diagnostic code lists.
type FinancialData struct {
	BalanceSheet    *AccountNode       `json:"balanceSheet"`
	IncomeStatement *AccountNode       `json:"incomeStatement"`
	Entities        map[string]*Entity `json:"entities"`
	UsedCodes       []string           `json:"usedCodes"`
	UnusedCodes     []string           `json:"unusedCodes"`
	Metadata        Metadata           `json:"metadata"`
}

// New creates a fresh FinancialData with both trees fully populated from
// the static account table and every Values map empty. This is the
// structural contract every integration call assumes: the trees exist in
// full before the first record is processed.
func New() *FinancialData {
	return &FinancialData{
		BalanceSheet:    buildTree("root", balanceSheetAccounts),
		IncomeStatement: buildTree("root", incomeStatementAccounts),
		Entities:        make(map[string]*Entity),
		Metadata:        Metadata{Source: "hrm2", LoadedAt: time.Now()},
	}
}

// TreeFor returns the tree a record with the given dimension belongs to,
// or nil for an unmappable dimension.
func (d *FinancialData) TreeFor(dim Dimension) *AccountNode {
	switch dim {
	case DimBilanz:
		return d.BalanceSheet
	case DimAufwand, DimErtrag:
		return d.IncomeStatement
	}
	return nil
}

// EntityKeys returns the sorted keys of all registered entities.
func (d *FinancialData) EntityKeys() []string {
	keys := maps.Keys(d.Entities)
	slices.Sort(keys)
	return keys
}

// MarkUsed records an account code as matched during integration.
// Duplicate codes are kept out so the diagnostic lists stay readable.
func (d *FinancialData) MarkUsed(code string) {
	if !slices.Contains(d.UsedCodes, code) {
		d.UsedCodes = append(d.UsedCodes, code)
	}
}

// MarkUnused records an account code that matched no tree node.
func (d *FinancialData) MarkUnused(code string) {
	if !slices.Contains(d.UnusedCodes, code) {
		d.UnusedCodes = append(d.UnusedCodes, code)
	}
}

// buildTree assembles a tree from a flat account table. Each row is
// attached to the deepest earlier row whose code is a proper prefix of its
// own, or to the synthetic root when no such row exists. Row order is the
// chart-of-accounts sequence and is preserved in Children.
func buildTree(rootCode string, accounts []accountDef) *AccountNode {
	root := &AccountNode{Code: rootCode, Values: map[string]Value{}}
	nodes := make([]*AccountNode, 0, len(accounts))
	for _, def := range accounts {
		node := &AccountNode{
			Code:   def.code,
			Labels: def.labels,
			Values: map[string]Value{},
		}
		parent := root
		// Scan earlier rows back to front so the deepest prefix wins.
		for i := len(nodes) - 1; i >= 0; i-- {
			candidate := nodes[i]
			if len(candidate.Code) < len(node.Code) && node.Code[:len(candidate.Code)] == candidate.Code {
				parent = candidate
				break
			}
		}
		parent.Children = append(parent.Children, node)
		nodes = append(nodes, node)
	}
	return root
}
