package picmode

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/smoeding/pic-ts-mode/tree"
)

// Anchor names the position an indent rule measures its offset from.
type Anchor string

const (
	// AnchorColumnZero ignores the tree and yields the offset alone.
	AnchorColumnZero Anchor = "column-zero"

	// AnchorGrandparent measures from the column of the grandparent
	// node's own start position.
	AnchorGrandparent Anchor = "grandparent"

	// AnchorParent measures from the column of the parent node's own
	// start position.
	AnchorParent Anchor = "parent"

	// AnchorParentLineStart measures from the first non-blank column of
	// the line the parent node starts on, which differs from the parent's
	// own column when the parent is not the first token on its line.
	AnchorParentLineStart Anchor = "parent-line-start"
)

// IndentPredicate is a declarative context matcher for the node starting a
// line. All set constraints must hold; the zero value matches everything
// and serves as the mandatory catch-all.
type IndentPredicate struct {
	// Kind constrains the node's own kind.
	Kind string `yaml:"kind,omitempty"`

	// KindIn constrains the node's kind to a set, typically literal
	// closing tokens such as "]" and "}".
	KindIn []string `yaml:"kind_in,omitempty"`

	// ParentKind constrains the parent's kind; a node without a parent
	// never satisfies it.
	ParentKind string `yaml:"parent_kind,omitempty"`

	// GrandparentKind constrains the grandparent's kind.
	GrandparentKind string `yaml:"grandparent_kind,omitempty"`

	// GrandparentKindIn constrains the grandparent's kind to a set.
	GrandparentKindIn []string `yaml:"grandparent_kind_in,omitempty"`

	// FirstSibling, when set, requires the node to have no preceding
	// sibling.
	FirstSibling bool `yaml:"first_sibling,omitempty"`
}

func (p IndentPredicate) isCatchAll() bool {
	return p.Kind == "" && len(p.KindIn) == 0 && p.ParentKind == "" &&
		p.GrandparentKind == "" && len(p.GrandparentKindIn) == 0 && !p.FirstSibling
}

func (p IndentPredicate) matches(n tree.Node) bool {
	if p.Kind != "" && n.Kind() != p.Kind {
		return false
	}
	if len(p.KindIn) > 0 && !slices.Contains(p.KindIn, n.Kind()) {
		return false
	}
	if p.FirstSibling && n.PrevSibling() != nil {
		return false
	}
	parent := n.Parent()
	if p.ParentKind != "" && (parent == nil || parent.Kind() != p.ParentKind) {
		return false
	}
	if p.GrandparentKind != "" || len(p.GrandparentKindIn) > 0 {
		if parent == nil {
			return false
		}
		grandparent := parent.Parent()
		if grandparent == nil {
			return false
		}
		if p.GrandparentKind != "" && grandparent.Kind() != p.GrandparentKind {
			return false
		}
		if len(p.GrandparentKindIn) > 0 && !slices.Contains(p.GrandparentKindIn, grandparent.Kind()) {
			return false
		}
	}
	return true
}

// IndentRule pairs a context predicate with an anchor and an offset in
// indent units. Rules are evaluated strictly in declaration order and the
// first match wins; reordering a table changes behavior.
type IndentRule struct {
	When   IndentPredicate `yaml:"when"`
	Anchor Anchor          `yaml:"anchor"`
	Offset int             `yaml:"offset"`
}

// IndentTable is a compiled, immutable indentation rule table.
type IndentTable struct {
	rules []IndentRule
}

// NewIndentTable validates and freezes an indentation rule table. The last
// rule must be a catch-all (empty predicate) so every query resolves; a
// table without one is a configuration defect reported here, not at query
// time.
func NewIndentTable(rules []IndentRule) (*IndentTable, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("indent table must not be empty")
	}
	for i, r := range rules {
		switch r.Anchor {
		case AnchorColumnZero, AnchorGrandparent, AnchorParent, AnchorParentLineStart:
		default:
			return nil, fmt.Errorf("indent rule %d: unknown anchor %q", i, r.Anchor)
		}
		for _, kind := range append(append([]string{}, r.When.KindIn...), r.When.GrandparentKindIn...) {
			if !validKind(kind) {
				return nil, fmt.Errorf("indent rule %d: unknown node kind %q", i, kind)
			}
		}
		for _, kind := range []string{r.When.Kind, r.When.ParentKind, r.When.GrandparentKind} {
			if kind != "" && !validKind(kind) {
				return nil, fmt.Errorf("indent rule %d: unknown node kind %q", i, kind)
			}
		}
	}
	if !rules[len(rules)-1].When.isCatchAll() {
		return nil, fmt.Errorf("indent table must end with a catch-all rule")
	}
	return &IndentTable{rules: slices.Clone(rules)}, nil
}

// IndentOf returns the indentation column for a node that starts a line.
// Rules are tried in declaration order; the winning rule's anchor column
// plus its offset (scaled by indentUnit) is the result, floored at zero.
// The source must be the byte buffer the tree was parsed from.
func (t *IndentTable) IndentOf(n tree.Node, source []byte, indentUnit int) int {
	for _, r := range t.rules {
		if !r.When.matches(n) {
			continue
		}
		column := anchorColumn(r.Anchor, n, source) + r.Offset*indentUnit
		if column < 0 {
			column = 0
		}
		return column
	}
	// Unreachable: NewIndentTable guarantees a catch-all.
	return 0
}

func anchorColumn(anchor Anchor, n tree.Node, source []byte) int {
	if anchor == AnchorColumnZero {
		return 0
	}
	parent := n.Parent()
	if parent == nil {
		return 0
	}
	switch anchor {
	case AnchorParent:
		return columnOf(source, parent.StartByte())
	case AnchorParentLineStart:
		return lineIndentColumn(source, parent.StartByte())
	case AnchorGrandparent:
		grandparent := parent.Parent()
		if grandparent == nil {
			return columnOf(source, parent.StartByte())
		}
		return columnOf(source, grandparent.StartByte())
	}
	return 0
}

// lineStart returns the offset of the first byte of the line containing
// offset.
func lineStart(source []byte, offset uint) uint {
	if offset > uint(len(source)) {
		offset = uint(len(source))
	}
	for offset > 0 && source[offset-1] != '\n' {
		offset--
	}
	return offset
}

// columnOf returns the column of offset within its line.
func columnOf(source []byte, offset uint) int {
	return int(offset - lineStart(source, offset))
}

// lineIndentColumn returns the column of the first non-blank character on
// the line containing offset.
func lineIndentColumn(source []byte, offset uint) int {
	start := lineStart(source, offset)
	i := start
	for i < uint(len(source)) && (source[i] == ' ' || source[i] == '\t') {
		i++
	}
	return int(i - start)
}

// DefaultIndentRules returns the built-in indentation table for pic.
// Closing delimiters align with the statement that opened their block via
// the grandparent anchor, because the grammar wraps bracketed blocks in an
// extra delimited layer. Bodies of if and for hang off the introducing
// statement's column rather than the immediate block.
func DefaultIndentRules() (*IndentTable, error) {
	return NewIndentTable([]IndentRule{
		{
			When:   IndentPredicate{KindIn: []string{"]", "}"}},
			Anchor: AnchorGrandparent,
			Offset: 0,
		},
		{
			When: IndentPredicate{
				ParentKind:        KindDelimited,
				GrandparentKindIn: []string{KindIf, KindFor},
			},
			Anchor: AnchorGrandparent,
			Offset: 1,
		},
		{
			When:   IndentPredicate{ParentKind: KindPicture},
			Anchor: AnchorColumnZero,
			Offset: 0,
		},
		{
			When:   IndentPredicate{ParentKind: KindDelimited},
			Anchor: AnchorParentLineStart,
			Offset: 1,
		},
		{
			Anchor: AnchorParentLineStart,
			Offset: 0,
		},
	})
}

// indentConfig is the YAML shape of an indentation rule table.
type indentConfig struct {
	Rules []IndentRule `yaml:"rules"`
}

// LoadIndentTable parses a YAML indentation rule table and validates it:
//
//	rules:
//	  - when: {kind_in: ["]", "}"]}
//	    anchor: grandparent
//	    offset: 0
//	  - anchor: parent-line-start
//	    offset: 0
func LoadIndentTable(data []byte) (*IndentTable, error) {
	var cfg indentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing indent rule table: %w", err)
	}
	return NewIndentTable(cfg.Rules)
}
