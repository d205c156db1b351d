package filter

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/gemfin/gemfin/records"
)

func excludeStartsWith(pattern string) Rule {
	return Rule{ID: "ex-" + pattern, Type: MatchStartsWith, Pattern: pattern, Enabled: true, Action: ActionExclude}
}

func includeExact(pattern string) Rule {
	return Rule{ID: "in-" + pattern, Type: MatchExact, Pattern: pattern, Enabled: true, Action: ActionInclude}
}

// TestInclude_DisabledConfigPassesEverything verifies the short-circuit for
// disabled configs.
func TestInclude_DisabledConfigPassesEverything(t *testing.T) {
	e := NewEngine(Config{Enabled: false, Rules: []Rule{excludeStartsWith("36")}})
	assert.True(t, e.Include("3600"), "disabled config must pass all records")
}

// TestInclude_ExcludeWinsInBothModes: an exclude rule subtracts the record
// in AND and OR mode alike, even when an include rule matches it.
func TestInclude_ExcludeWinsInBothModes(t *testing.T) {
	for _, mode := range []Mode{ModeAND, ModeOR} {
		e := NewEngine(Config{
			Enabled:     true,
			CombineMode: mode,
			Rules:       []Rule{includeExact("3600"), excludeStartsWith("36")},
		})
		assert.False(t, e.Include("3600"), "exclude must win in %s mode", mode)
	}
}

// TestInclude_ExcludeOnly: with only an exclude rule, both modes exclude
// matching codes and pass the rest.
func TestInclude_ExcludeOnly(t *testing.T) {
	for _, mode := range []Mode{ModeAND, ModeOR} {
		e := NewEngine(Config{Enabled: true, CombineMode: mode, Rules: []Rule{excludeStartsWith("36")}})
		assert.False(t, e.Include("3600"))
		assert.True(t, e.Include("4600"))
	}
}

// TestInclude_ANDRequiresAllIncludes: in AND mode every enabled include
// rule must match.
func TestInclude_ANDRequiresAllIncludes(t *testing.T) {
	e := NewEngine(Config{
		Enabled:     true,
		CombineMode: ModeAND,
		Rules: []Rule{
			{ID: "starts-36", Type: MatchStartsWith, Pattern: "36", Enabled: true, Action: ActionInclude},
			{ID: "ends-00", Type: MatchEndsWith, Pattern: "00", Enabled: true, Action: ActionInclude},
		},
	})

	assert.True(t, e.Include("3600"), "matches both includes")
	assert.False(t, e.Include("3601"), "matches only one include")
}

// TestInclude_ORGatesOnAnyInclude: in OR mode one matching include rule is
// enough; with no include rules at all every record passes.
func TestInclude_ORGatesOnAnyInclude(t *testing.T) {
	e := NewEngine(Config{
		Enabled:     true,
		CombineMode: ModeOR,
		Rules: []Rule{
			{ID: "starts-36", Type: MatchStartsWith, Pattern: "36", Enabled: true, Action: ActionInclude},
			{ID: "starts-46", Type: MatchStartsWith, Pattern: "46", Enabled: true, Action: ActionInclude},
		},
	})

	assert.True(t, e.Include("3600"))
	assert.True(t, e.Include("4600"))
	assert.False(t, e.Include("400"), "matches no include rule")

	noIncludes := NewEngine(Config{Enabled: true, CombineMode: ModeOR})
	assert.True(t, noIncludes.Include("400"), "no include rules means pass")
}

func TestInclude_DisabledRulesIgnored(t *testing.T) {
	rule := excludeStartsWith("36")
	rule.Enabled = false
	e := NewEngine(Config{Enabled: true, CombineMode: ModeAND, Rules: []Rule{rule}})

	assert.True(t, e.Include("3600"), "disabled rules must not match")
}

func TestInclude_MatchTypes(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		code    string
		matched bool
	}{
		{"startsWith hit", Rule{ID: "r", Type: MatchStartsWith, Pattern: "36", Enabled: true, Action: ActionExclude}, "3600", true},
		{"endsWith hit", Rule{ID: "r", Type: MatchEndsWith, Pattern: "00", Enabled: true, Action: ActionExclude}, "3600", true},
		{"contains hit", Rule{ID: "r", Type: MatchContains, Pattern: "60", Enabled: true, Action: ActionExclude}, "3600", true},
		{"exact miss", Rule{ID: "r", Type: MatchExact, Pattern: "360", Enabled: true, Action: ActionExclude}, "3600", false},
		{"regex hit", Rule{ID: "r", Type: MatchRegex, Pattern: "^36..$", Enabled: true, Action: ActionExclude}, "3600", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(Config{Enabled: true, CombineMode: ModeAND, Rules: []Rule{tt.rule}})
			assert.Equal(t, !tt.matched, e.Include(tt.code))
		})
	}
}

// TestInclude_BrokenRegexFailsClosed: a pattern that does not compile never
// matches at evaluation time; Validate reports it at edit time.
func TestInclude_BrokenRegexFailsClosed(t *testing.T) {
	cfg := Config{
		Enabled:     true,
		CombineMode: ModeAND,
		Rules: []Rule{
			{ID: "broken", Type: MatchRegex, Pattern: "[36", Enabled: true, Action: ActionExclude},
		},
	}

	e := NewEngine(cfg)
	assert.True(t, e.Include("3600"), "broken regex must not exclude anything")

	errs := Validate(cfg)
	assert.Equal(t, 1, len(errs))

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(errs[0], &cfgErr), "expected a ConfigurationError")
	assert.Equal(t, "broken", cfgErr.RuleID)
}

func TestValidate(t *testing.T) {
	errs := Validate(Config{Rules: []Rule{
		{ID: "ok", Type: MatchExact, Pattern: "3600"},
		{ID: "empty", Type: MatchStartsWith, Pattern: ""},
		{ID: "unknown", Type: MatchType("fuzzy"), Pattern: "x"},
	}})

	assert.Equal(t, 2, len(errs))
}

func TestApply_Report(t *testing.T) {
	recs := []records.Record{
		{Arten: "3600", Jahr: 2022, Value: decimal.NewFromInt(100), HasValue: true},
		{Arten: "3601", Jahr: 2022, Value: decimal.NewFromInt(200), HasValue: true},
		{Arten: "4600", Jahr: 2022, Value: decimal.NewFromInt(300), HasValue: true},
	}

	e := NewEngine(Config{
		Enabled:     true,
		CombineMode: ModeAND,
		LogFiltered: true,
		Rules:       []Rule{excludeStartsWith("36")},
	})

	kept, report := e.Apply(recs)
	assert.Equal(t, 1, len(kept))
	assert.Equal(t, "4600", kept[0].Arten)
	assert.Equal(t, 2, report.FilteredCount)
	assert.Equal(t, []string{"3600", "3601"}, report.ExcludedCodes)
}

func TestApply_NoReportWithoutLogFiltered(t *testing.T) {
	recs := []records.Record{{Arten: "3600", Jahr: 2022}}
	e := NewEngine(Config{Enabled: true, CombineMode: ModeAND, Rules: []Rule{excludeStartsWith("36")}})

	kept, report := e.Apply(recs)
	assert.Equal(t, 0, len(kept))
	assert.Equal(t, 0, report.FilteredCount)
}

func TestPresets(t *testing.T) {
	preset, ok := GetPreset("exclude-transfer-expenses")
	assert.True(t, ok, "preset should exist")

	e := NewEngine(preset.Config)
	assert.False(t, e.Include("3600"))
	assert.True(t, e.Include("400"))

	all := Presets()
	assert.True(t, len(all) >= 3, "expected at least three presets")
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].ID < all[i].ID, "presets should be sorted by id")
	}
}
