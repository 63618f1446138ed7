package picmode

import (
	"regexp"

	"github.com/smoeding/pic-ts-mode/tree"
)

// CaptureSelf is the capture name implicitly bound to the node a pattern
// matched against.
const CaptureSelf = "self"

// Pattern is a declarative structural matcher for a single node. All set
// constraints must hold for the match to succeed; zero values mean
// "unconstrained". Patterns are plain data so rule tables stay reorderable
// and loadable from configuration.
type Pattern struct {
	// Kind constrains the node's own kind. Empty matches any kind.
	Kind string `yaml:"kind,omitempty"`

	// IsError, when set, requires the node to be a parser error node.
	IsError bool `yaml:"is_error,omitempty"`

	// Fields are named-field constraints on the node's children.
	Fields []FieldPattern `yaml:"fields,omitempty"`

	// Literals requires the node to have at least one child whose source
	// text is in this set. The first such child is bound to the capture
	// named by LiteralCapture.
	Literals []string `yaml:"literals,omitempty"`

	// LiteralCapture names the capture for the matched literal child.
	// Empty leaves the literal child uncaptured.
	LiteralCapture string `yaml:"literal_capture,omitempty"`
}

// FieldPattern constrains one named field of the matched node.
type FieldPattern struct {
	// Name is the field to look up; the field must be present.
	Name string `yaml:"name"`

	// Kind constrains the field child's kind. Empty matches any kind.
	Kind string `yaml:"kind,omitempty"`

	// Capture, when non-empty, binds the field child under this name.
	Capture string `yaml:"capture,omitempty"`
}

// Predicate is a text check applied to a capture after a structural match.
// A failing predicate aborts the whole match for its rule.
type Predicate struct {
	// Capture names the capture whose source text is tested.
	Capture string `yaml:"capture"`

	// Regexp is the pattern the capture text must match.
	Regexp string `yaml:"regexp"`

	re *regexp.Regexp
}

// Match is the result of a successful structural match: the capture
// bindings the pattern produced, keyed by capture name. CaptureSelf is
// always present. Literals holds every child matched by the pattern's
// literal set, in source order; the first one is also bound under the
// pattern's LiteralCapture name.
type Match struct {
	Captures map[string]tree.Node
	Literals []tree.Node
}

// matchPattern evaluates p against n and returns the capture bindings, or
// ok = false on a structural mismatch. A mismatch is a normal negative
// result, not an error.
func matchPattern(p Pattern, n tree.Node, source []byte) (Match, bool) {
	if p.IsError {
		if !n.IsError() {
			return Match{}, false
		}
	} else if n.IsError() && p.Kind == "" {
		// An unconstrained pattern must not swallow error nodes; only the
		// dedicated error pattern matches them.
		return Match{}, false
	}
	if p.Kind != "" && n.Kind() != p.Kind {
		return Match{}, false
	}

	captures := map[string]tree.Node{CaptureSelf: n}

	for _, fp := range p.Fields {
		child := n.ChildByField(fp.Name)
		if child == nil {
			return Match{}, false
		}
		if fp.Kind != "" && child.Kind() != fp.Kind {
			return Match{}, false
		}
		if fp.Capture != "" {
			captures[fp.Capture] = child
		}
	}

	var literals []tree.Node
	if len(p.Literals) > 0 {
		literals = literalChildren(n, p.Literals, source)
		if len(literals) == 0 {
			return Match{}, false
		}
		if p.LiteralCapture != "" {
			captures[p.LiteralCapture] = literals[0]
		}
	}

	return Match{Captures: captures, Literals: literals}, true
}

// literalChildren returns the children of n whose source text is in the
// given set, in source order.
func literalChildren(n tree.Node, set []string, source []byte) []tree.Node {
	var matched []tree.Node
	for i := range n.ChildCount() {
		child := n.Child(i)
		text := tree.Text(child, source)
		for _, want := range set {
			if text == want {
				matched = append(matched, child)
				break
			}
		}
	}
	return matched
}

// checkPredicates re-reads the captured text and applies each predicate's
// regular expression. All predicates must pass; there is no partial credit.
// Predicates must have been compiled at table-construction time.
func checkPredicates(predicates []Predicate, m Match, source []byte) bool {
	for _, p := range predicates {
		captured, ok := m.Captures[p.Capture]
		if !ok {
			return false
		}
		if !p.re.MatchString(tree.Text(captured, source)) {
			return false
		}
	}
	return true
}
