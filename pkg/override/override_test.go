package override_test

import (
	"testing"

	"github.com/gnames/txlist/pkg/override"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRules(t *testing.T) {
	rules := override.NewRules(
		[]override.ReplaceRule{
			{Source: "9780000000002", Target: "9780000000099"},
			{Source: "306406152", Target: "9780000000098"},
			{Source: "9780000000002", Target: "9780000000097"},
			{Source: "", Target: "9780000000096"},
		},
		[]string{"9780000000001", "0", "9780000000001.0"},
	)

	assert.Equal(t, 2, rules.ReplaceNum())
	assert.Equal(t, 1, rules.ExcludeNum())
	assert.Equal(t, 2, rules.Invalid)

	t.Run("first duplicate source wins", func(t *testing.T) {
		trg, ok := rules.Target("9780000000002")
		require.True(t, ok)
		assert.Equal(t, "9780000000099", trg)
		require.Len(t, rules.Duplicates, 1)
		assert.Equal(t, "9780000000097", rules.Duplicates[0].Target)
	})

	t.Run("rule identifiers are canonical", func(t *testing.T) {
		trg, ok := rules.Target("0306406152")
		require.True(t, ok)
		assert.Equal(t, "9780000000098", trg)
		assert.True(t, rules.IsExcluded("9780000000001"))
	})
}

func TestResolve(t *testing.T) {
	rules := override.NewRules(
		[]override.ReplaceRule{
			{Source: "9780000000002", Target: "9780000000099"},
			{Source: "9780000000005", Target: "9780000000099"},
			{Source: "9780000000001", Target: "9780000000088"},
			{Source: "9780000000099", Target: "9780000000077"},
		},
		[]string{"9780000000001"},
	)

	working := []string{
		"9780000000001",
		"9780000000002",
		"9780000000003",
		"9780000000005",
	}
	p := rules.Resolve(working)

	t.Run("exclusion wins over replacement", func(t *testing.T) {
		assert.Equal(t, []string{"9780000000001"}, p.Excluded)
		for _, v := range p.Replaced {
			assert.NotEqual(t, "9780000000001", v.Source)
		}
		assert.NotContains(t, p.Remaining, "9780000000088")
	})

	t.Run("replacement pairs in working-set order", func(t *testing.T) {
		assert.Equal(t, []override.Replacement{
			{Source: "9780000000002", Target: "9780000000077"},
			{Source: "9780000000005", Target: "9780000000077"},
		}, p.Replaced)
	})

	t.Run("chained rules lead to the final target", func(t *testing.T) {
		assert.Equal(t,
			[]string{"9780000000003", "9780000000077"},
			p.Remaining,
		)
		assert.False(t, p.IsTarget("9780000000099"))
	})

	t.Run("sources of a target", func(t *testing.T) {
		assert.True(t, p.IsTarget("9780000000077"))
		assert.False(t, p.IsTarget("9780000000003"))
		assert.Equal(t,
			[]string{"9780000000002", "9780000000005"},
			p.Sources("9780000000077"),
		)
		assert.Nil(t, p.Sources("9780000000003"))
	})
}

func TestResolveTargetInWorkingSet(t *testing.T) {
	rules := override.NewRules(
		[]override.ReplaceRule{
			{Source: "9780000000002", Target: "9780000000003"},
		},
		nil,
	)
	p := rules.Resolve([]string{"9780000000003", "9780000000002"})

	assert.Equal(t, []string{"9780000000003"}, p.Remaining)
	assert.Equal(t, []string{"9780000000002"}, p.Sources("9780000000003"))
}

func TestResolveChains(t *testing.T) {
	const (
		a = "9780000000011"
		b = "9780000000012"
		c = "9780000000013"
		d = "9780000000014"
	)

	tests := []struct {
		msg       string
		replace   []override.ReplaceRule
		exclude   []string
		working   []string
		remaining []string
		replaced  []override.Replacement
		cyclic    []string
	}{
		{
			msg:       "source that is also a target",
			replace:   []override.ReplaceRule{{Source: a, Target: b}, {Source: b, Target: c}},
			working:   []string{a, b},
			remaining: []string{c},
			replaced: []override.Replacement{
				{Source: a, Target: c}, {Source: b, Target: c},
			},
		},
		{
			msg:       "chain stops at an excluded identifier",
			replace:   []override.ReplaceRule{{Source: a, Target: b}, {Source: b, Target: c}},
			exclude:   []string{b},
			working:   []string{a},
			remaining: nil,
			replaced:  []override.Replacement{{Source: a, Target: b}},
		},
		{
			msg:       "loop leaves identifiers unchanged",
			replace:   []override.ReplaceRule{{Source: a, Target: b}, {Source: b, Target: a}},
			working:   []string{a, b},
			remaining: []string{a, b},
			cyclic:    []string{a, b},
		},
		{
			msg: "loop further down the chain",
			replace: []override.ReplaceRule{
				{Source: d, Target: b}, {Source: b, Target: c}, {Source: c, Target: b},
			},
			working:   []string{d},
			remaining: []string{d},
			cyclic:    []string{d},
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			p := override.NewRules(tt.replace, tt.exclude).Resolve(tt.working)
			assert.Equal(t, tt.remaining, p.Remaining)
			assert.Equal(t, tt.replaced, p.Replaced)
			assert.Equal(t, tt.cyclic, p.Cyclic)

			// a replaced identifier is never looked up
			for _, v := range p.Replaced {
				assert.NotContains(t, p.Remaining, v.Source)
			}
		})
	}
}

func TestResolveExcludedTarget(t *testing.T) {
	rules := override.NewRules(
		[]override.ReplaceRule{
			{Source: "9780000000002", Target: "9780000000004"},
		},
		[]string{"9780000000004"},
	)
	p := rules.Resolve([]string{"9780000000002"})

	assert.Empty(t, p.Remaining)
	assert.Len(t, p.Replaced, 1)
}

func TestResolveEmpty(t *testing.T) {
	rules := override.NewRules(nil, nil)
	p := rules.Resolve(nil)
	assert.Empty(t, p.Remaining)
	assert.Empty(t, p.Replaced)
	assert.Empty(t, p.Excluded)

	p = rules.Resolve([]string{"9780000000003"})
	assert.Equal(t, []string{"9780000000003"}, p.Remaining)
}
