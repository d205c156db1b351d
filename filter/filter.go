// Package filter decides, per raw record, whether it takes part in
// integration. Rules match against the record's account code and carry an
// include or exclude action; a config combines its rules in AND or OR mode.
//
// The combination semantics are asymmetric and intentional: exclude rules
// always subtract, include rules gate the record depending on the combine
// mode. In AND mode every enabled include rule must match; in OR mode the
// record passes when there are no include rules or at least one matches.
// Exclude wins over include in both modes.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gemfin/gemfin/records"
)

// MatchType selects how a rule's pattern is compared to an account code.
type MatchType string

const (
	MatchStartsWith MatchType = "startsWith"
	MatchEndsWith   MatchType = "endsWith"
	MatchContains   MatchType = "contains"
	MatchExact      MatchType = "exact"
	MatchRegex      MatchType = "regex"
)

// Action decides what a matching rule does with the record.
type Action string

const (
	ActionInclude Action = "include"
	ActionExclude Action = "exclude"
)

// Mode is the combination mode for include rules.
type Mode string

const (
	ModeAND Mode = "AND"
	ModeOR  Mode = "OR"
)

// Rule is one user-configured account-code predicate.
type Rule struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Type    MatchType `json:"type"`
	Pattern string    `json:"pattern"`
	Enabled bool      `json:"enabled"`
	Action  Action    `json:"action"`
}

// Config is a full filter configuration. A disabled config passes every
// record unfiltered.
type Config struct {
	Enabled     bool   `json:"enabled"`
	Rules       []Rule `json:"rules"`
	CombineMode Mode   `json:"combineMode"`
	LogFiltered bool   `json:"logFiltered"`
}

// ConfigurationError reports an invalid rule, discovered at rule-edit time.
// Evaluation never raises it; a broken regex fails closed there.
type ConfigurationError struct {
	RuleID string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid filter rule %q: %s", e.RuleID, e.Reason)
}

// Validate checks every rule of a config and returns one error per invalid
// rule. It is the rule-edit-time counterpart of evaluation's fail-closed
// behavior for regex rules.
func Validate(cfg Config) []error {
	var errs []error
	for _, rule := range cfg.Rules {
		switch rule.Type {
		case MatchStartsWith, MatchEndsWith, MatchContains, MatchExact:
			if rule.Pattern == "" {
				errs = append(errs, &ConfigurationError{RuleID: rule.ID, Reason: "empty pattern"})
			}
		case MatchRegex:
			if _, err := regexp.Compile(rule.Pattern); err != nil {
				errs = append(errs, &ConfigurationError{RuleID: rule.ID, Reason: fmt.Sprintf("invalid regex: %v", err)})
			}
		default:
			errs = append(errs, &ConfigurationError{RuleID: rule.ID, Reason: fmt.Sprintf("unknown match type %q", rule.Type)})
		}
	}
	return errs
}

// Report summarizes the exclusion decisions of one Apply call. It is
// diagnostic output for display, never control flow.
type Report struct {
	FilteredCount int
	ExcludedCodes []string
}

// Engine evaluates a Config against records. Regex rules are compiled once
// at construction; rules whose pattern does not compile never match.
type Engine struct {
	cfg     Config
	regexps map[string]*regexp.Regexp
}

// NewEngine creates an engine for the given config.
func NewEngine(cfg Config) *Engine {
	e := &Engine{cfg: cfg, regexps: make(map[string]*regexp.Regexp)}
	for _, rule := range cfg.Rules {
		if rule.Type == MatchRegex {
			if re, err := regexp.Compile(rule.Pattern); err == nil {
				e.regexps[rule.ID] = re
			}
		}
	}
	return e
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Include reports whether a record with the given account code passes the
// filter.
func (e *Engine) Include(code string) bool {
	if !e.cfg.Enabled {
		return true
	}

	var includeRules, includeMatched, excludeMatched int
	for _, rule := range e.cfg.Rules {
		if !rule.Enabled {
			continue
		}
		matched := e.matches(rule, code)
		switch rule.Action {
		case ActionExclude:
			if matched {
				excludeMatched++
			}
		case ActionInclude:
			includeRules++
			if matched {
				includeMatched++
			}
		}
	}

	// Exclude always wins, regardless of combine mode.
	if excludeMatched > 0 {
		return false
	}

	if includeRules == 0 {
		return true
	}
	if e.cfg.CombineMode == ModeAND {
		return includeMatched == includeRules
	}
	return includeMatched > 0
}

// Apply partitions records into the kept slice and a diagnostic report.
// The report is only populated when LogFiltered is set.
func (e *Engine) Apply(recs []records.Record) ([]records.Record, Report) {
	if !e.cfg.Enabled {
		return recs, Report{}
	}

	kept := make([]records.Record, 0, len(recs))
	var report Report
	for _, rec := range recs {
		if e.Include(rec.Arten) {
			kept = append(kept, rec)
			continue
		}
		if e.cfg.LogFiltered {
			report.FilteredCount++
			report.ExcludedCodes = append(report.ExcludedCodes, rec.Arten)
		}
	}
	return kept, report
}

func (e *Engine) matches(rule Rule, code string) bool {
	switch rule.Type {
	case MatchStartsWith:
		return strings.HasPrefix(code, rule.Pattern)
	case MatchEndsWith:
		return strings.HasSuffix(code, rule.Pattern)
	case MatchContains:
		return strings.Contains(code, rule.Pattern)
	case MatchExact:
		return code == rule.Pattern
	case MatchRegex:
		re, ok := e.regexps[rule.ID]
		if !ok {
			// Broken pattern: fail closed, surfaced by Validate.
			return false
		}
		return re.MatchString(code)
	}
	return false
}
