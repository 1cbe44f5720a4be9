// Package override applies manual replace and exclude rules to a working
// set of canonical identifiers.
//
// Exclusion is checked first: an excluded identifier is never replaced or
// looked up. Replace rules are followed in chains: with rules A->B and
// B->C both A and B are replaced by C. A chain stops at an excluded
// identifier. An identifier whose chain runs into a loop is not
// replaced.
package override

import (
	"github.com/gnames/txlist/pkg/isbn"
)

// ReplaceRule substitutes a bookstore identifier with the identifier used
// in the catalog.
type ReplaceRule struct {
	// Source is the bookstore identifier.
	Source string
	// Target is the catalog identifier that replaces Source.
	Target string
}

// Replacement is a replace rule that matched the working set.
type Replacement struct {
	Source string
	Target string
}

// Rules keeps replace and exclude rules as maps for constant-time
// matching.
type Rules struct {
	replace map[string]string
	exclude map[string]struct{}

	// Invalid is the number of rule identifiers that could not be
	// normalized. Rules with such identifiers are ignored.
	Invalid int

	// Duplicates contains replace rules ignored because an earlier rule
	// already used the same source.
	Duplicates []ReplaceRule
}

// NewRules canonicalizes rule identifiers and builds Rules. When several
// replace rules share a source, the first one in input order wins.
func NewRules(replace []ReplaceRule, exclude []string) *Rules {
	res := &Rules{
		replace: make(map[string]string, len(replace)),
		exclude: make(map[string]struct{}, len(exclude)),
	}

	for _, v := range replace {
		src, err1 := isbn.Normalize(v.Source)
		trg, err2 := isbn.Normalize(v.Target)
		if err1 != nil || err2 != nil {
			res.Invalid++
			continue
		}
		if _, ok := res.replace[src]; ok {
			res.Duplicates = append(
				res.Duplicates, ReplaceRule{Source: src, Target: trg},
			)
			continue
		}
		res.replace[src] = trg
	}

	for _, v := range exclude {
		id, err := isbn.Normalize(v)
		if err != nil {
			res.Invalid++
			continue
		}
		res.exclude[id] = struct{}{}
	}
	return res
}

// ReplaceNum returns the number of distinct replace rules.
func (r *Rules) ReplaceNum() int {
	return len(r.replace)
}

// ExcludeNum returns the number of distinct exclude rules.
func (r *Rules) ExcludeNum() int {
	return len(r.exclude)
}

// IsExcluded checks if an identifier has an exclude rule.
func (r *Rules) IsExcluded(id string) bool {
	_, ok := r.exclude[id]
	return ok
}

// Target returns the replacement of an identifier, if there is one.
func (r *Rules) Target(id string) (string, bool) {
	res, ok := r.replace[id]
	return res, ok
}

// Partition is the outcome of applying rules to a working set.
type Partition struct {
	// Remaining identifiers go to catalog lookup. Pass-through
	// identifiers come first in working-set order, followed by
	// replacement targets. All of them are distinct.
	Remaining []string

	// Replaced keeps matched replace rules in working-set order.
	Replaced []Replacement

	// Excluded keeps identifiers removed by exclude rules.
	Excluded []string

	// Cyclic keeps identifiers left unchanged because their replace
	// rules run into a loop.
	Cyclic []string

	sources map[string][]string
}

// Resolve partitions the working set. Identifiers of the working set are
// expected to be canonical and distinct.
func (r *Rules) Resolve(working []string) Partition {
	var res Partition
	res.sources = make(map[string][]string)

	seen := make(map[string]struct{}, len(working))
	var targets []string

	for _, id := range working {
		if r.IsExcluded(id) {
			res.Excluded = append(res.Excluded, id)
			continue
		}
		trg, ok, cyclic := r.finalTarget(id)
		if cyclic {
			res.Cyclic = append(res.Cyclic, id)
		}
		if ok {
			res.Replaced = append(res.Replaced,
				Replacement{Source: id, Target: trg})
			if _, ok := res.sources[trg]; !ok {
				targets = append(targets, trg)
			}
			res.sources[trg] = append(res.sources[trg], id)
			continue
		}
		seen[id] = struct{}{}
		res.Remaining = append(res.Remaining, id)
	}

	for _, trg := range targets {
		if _, ok := seen[trg]; ok {
			continue
		}
		// excluded identifiers are never looked up, targets included
		if r.IsExcluded(trg) {
			continue
		}
		seen[trg] = struct{}{}
		res.Remaining = append(res.Remaining, trg)
	}
	return res
}

// finalTarget follows replace rules starting from id. The second value
// is false if id is not replaced. The third value is true if the rules
// starting from id run into a loop.
func (r *Rules) finalTarget(id string) (string, bool, bool) {
	trg, ok := r.replace[id]
	if !ok {
		return "", false, false
	}

	visited := map[string]struct{}{id: {}}
	for !r.IsExcluded(trg) {
		if _, ok := visited[trg]; ok {
			return "", false, true
		}
		next, ok := r.replace[trg]
		if !ok {
			break
		}
		visited[trg] = struct{}{}
		trg = next
	}
	return trg, true, false
}

// Sources returns original identifiers replaced by the given target, in
// working-set order. It returns nil if the identifier is not a
// replacement target.
func (p Partition) Sources(target string) []string {
	return p.sources[target]
}

// IsTarget checks if an identifier entered the working set as a
// replacement target.
func (p Partition) IsTarget(id string) bool {
	_, ok := p.sources[id]
	return ok
}
