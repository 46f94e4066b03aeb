// Package conflict resolves divergent local and remote copies of the same
// record with prioritized, pluggable rules.
//
// Resolution is deterministic: rules are evaluated in descending priority
// (ties keep insertion order) and the first rule whose condition holds
// decides. When nothing matches, the remote copy wins with confidence 0.5.
package conflict

import (
	"slices"
)

// Kind tells which side a resolution took.
type Kind string

const (
	KindLocal  Kind = "local"
	KindRemote Kind = "remote"
	KindMerge  Kind = "merge"
	KindManual Kind = "manual"
)

// DefaultRuleName is reported when no rule matched.
const DefaultRuleName = "default_remote"

// Record is a pair of diverging copies. LastSynced is the last version both
// sides agreed on, when known.
type Record[T any] struct {
	Local      T
	Remote     T
	LastSynced *T
}

// Resolution is the outcome of resolving a [Record]. Confidence in [0,1] is
// informational only.
type Resolution[T any] struct {
	Kind       Kind
	Data       T
	Confidence float64
	Reason     string
	// Rule is the name of the rule that produced the resolution.
	Rule string
}

// Rule is one resolution strategy. Higher Priority is evaluated first.
type Rule[T any] struct {
	Name      string
	Priority  int
	Condition func(Record[T]) bool
	Resolve   func(Record[T]) Resolution[T]
}

// RuleSet is an ordered list of rules for one record type. The zero value
// is an empty set that always falls back to the remote copy.
type RuleSet[T any] struct {
	rules []Rule[T]
}

// NewRuleSet returns a set holding rules sorted by descending priority.
func NewRuleSet[T any](rules ...Rule[T]) *RuleSet[T] {
	rs := &RuleSet[T]{}
	rs.Add(rules...)
	return rs
}

// Add inserts rules and restores the priority order.
func (rs *RuleSet[T]) Add(rules ...Rule[T]) {
	rs.rules = append(rs.rules, rules...)
	slices.SortStableFunc(rs.rules, func(a, b Rule[T]) int {
		return b.Priority - a.Priority
	})
}

// Len returns the number of rules.
func (rs *RuleSet[T]) Len() int {
	return len(rs.rules)
}

// Names returns rule names in evaluation order.
func (rs *RuleSet[T]) Names() []string {
	names := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		names[i] = r.Name
	}
	return names
}

// Resolve applies the first matching rule to rec.
func (rs *RuleSet[T]) Resolve(rec Record[T]) Resolution[T] {
	for _, r := range rs.rules {
		if r.Condition == nil || !r.Condition(rec) {
			continue
		}

		res := r.Resolve(rec)
		res.Rule = r.Name
		return res
	}

	return Resolution[T]{
		Kind:       KindRemote,
		Data:       rec.Remote,
		Confidence: 0.5,
		Reason:     "no rule matched, defaulting to remote version",
		Rule:       DefaultRuleName,
	}
}

func (rs *RuleSet[T]) clone() *RuleSet[T] {
	return &RuleSet[T]{rules: slices.Clone(rs.rules)}
}
