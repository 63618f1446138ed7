package picmode

import (
	"github.com/smoeding/pic-ts-mode/tree"
)

// Level is a highlight activation level. Levels are cumulative by caller
// convention: enabling level N usually means enabling 1..N-1 too, but the
// engine honors exactly the set it is given.
type Level int

const (
	LevelMinimal  Level = 1
	LevelModerate Level = 2
	LevelDetailed Level = 3
	LevelMaximal  Level = 4
)

// LevelsThrough returns the cumulative level set 1..n, for callers that
// follow the cumulative convention.
func LevelsThrough(n Level) []Level {
	levels := make([]Level, 0, n)
	for l := LevelMinimal; l <= n; l++ {
		levels = append(levels, l)
	}
	return levels
}

// Span is one highlighted source range. Spans returned by Highlight are
// ordered by start offset and never overlap; overlap between rule matches
// is resolved by the override policy before spans are emitted.
type Span struct {
	StartByte uint
	EndByte   uint
	Category  string
}

// Highlight walks the subtree rooted at root once, top-down and depth-first,
// attempts every rule whose level is enabled at each node, and returns the
// resolved spans. Rules of the error feature are attempted regardless of
// the enabled set so parse errors stay visible at every level.
//
// When two matches overlap, the earlier one (in walk and declaration order)
// keeps the overlap unless the later rule is marked override; the
// non-overlapping remainder of the losing span survives either way.
//
// The source must be the byte buffer the tree was parsed from; node
// references are borrowed and must not be retained across a re-parse.
func (rs *RuleSet) Highlight(root tree.Node, source []byte, levels ...Level) []Span {
	if root == nil || len(levels) == 0 {
		return nil
	}

	enabled := make(map[Level]bool, len(levels))
	for _, l := range levels {
		enabled[l] = true
	}

	base := root.StartByte()
	c := &claims{
		base:     base,
		category: make([]int16, root.EndByte()-base),
		serial:   make([]int32, root.EndByte()-base),
	}

	rs.walk(root, source, rs.rules, enabled, c)

	// Error-feature rules run in a second pass so their override claims
	// come last: no other rule can re-color a parse error.
	rs.walk(root, source, rs.alwaysOn, nil, c)

	return c.spans(rs.categories)
}

func (rs *RuleSet) walk(n tree.Node, source []byte, rules []compiledRule, enabled map[Level]bool, c *claims) {
	for i := range rules {
		rule := &rules[i]
		if !rule.alwaysOn && !enabled[rule.level] {
			continue
		}
		m, ok := matchPattern(rule.pattern, n, source)
		if !ok {
			continue
		}
		if !checkPredicates(rule.predicates, m, source) {
			continue
		}
		// A rule highlighting its literal capture claims every literal
		// child, not just the first (e.g. both "if" and "then").
		if rule.spanCapture != CaptureSelf && rule.spanCapture == rule.pattern.LiteralCapture {
			for _, literal := range m.Literals {
				c.claim(literal.StartByte(), literal.EndByte(), rule.categoryIndex, rule.override)
			}
			continue
		}
		target := m.Captures[rule.spanCapture]
		if target == nil {
			continue
		}
		c.claim(target.StartByte(), target.EndByte(), rule.categoryIndex, rule.override)
	}

	for i := range n.ChildCount() {
		rs.walk(n.Child(i), source, rules, enabled, c)
	}
}

// claims tracks, per byte of the root range, which match owns it: the
// category of the owning match (0 = unclaimed) and the serial number of the
// claim, so adjacent distinct matches do not merge into one span.
type claims struct {
	base     uint
	category []int16 // 0 = unclaimed, i+1 = category index i
	serial   []int32
	nextID   int32
}

func (c *claims) claim(start, end uint, categoryIndex int16, override bool) {
	if start < c.base {
		start = c.base
	}
	if limit := c.base + uint(len(c.category)); end > limit {
		end = limit
	}
	if start >= end {
		return
	}

	c.nextID++
	for i := start - c.base; i < end-c.base; i++ {
		if c.category[i] != 0 && !override {
			continue
		}
		c.category[i] = categoryIndex + 1
		c.serial[i] = c.nextID
	}
}

// spans compresses the per-byte claims into ordered, non-overlapping spans.
func (c *claims) spans(categories []string) []Span {
	var result []Span
	var open *Span
	for i, cat := range c.category {
		if cat == 0 {
			open = nil
			continue
		}
		if open != nil && c.serial[i] == c.serial[i-1] && open.Category == categories[cat-1] {
			open.EndByte++
			continue
		}
		result = append(result, Span{
			StartByte: c.base + uint(i),
			EndByte:   c.base + uint(i) + 1,
			Category:  categories[cat-1],
		})
		open = &result[len(result)-1]
	}
	return result
}
