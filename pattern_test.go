package picmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smoeding/pic-ts-mode/tree"
)

// buildCall builds a function_call tree over source "name(2)" style text.
func buildCall(source string, nameEnd uint) *tree.MemNode {
	call := tree.NewMemNode(KindFunctionCall, 0, uint(len(source)))
	call.AddChild("function", tree.NewMemNode(KindVariable, 0, nameEnd))
	call.AddChild("argument", tree.NewMemNode(KindNumber, nameEnd+1, uint(len(source))-1))
	return call
}

func TestMatchPattern_KindOnly(t *testing.T) {
	source := []byte("# note")
	comment := tree.NewMemNode(KindComment, 0, 6)

	m, ok := matchPattern(Pattern{Kind: KindComment}, comment, source)
	require.True(t, ok)
	assert.Equal(t, tree.Node(comment), m.Captures[CaptureSelf])

	_, ok = matchPattern(Pattern{Kind: KindString}, comment, source)
	assert.False(t, ok)
}

func TestMatchPattern_FieldConstraints(t *testing.T) {
	source := []byte("sqrt(2)")
	call := buildCall("sqrt(2)", 4)

	m, ok := matchPattern(Pattern{
		Kind: KindFunctionCall,
		Fields: []FieldPattern{
			{Name: "function", Capture: "callee"},
		},
	}, call, source)
	require.True(t, ok)
	assert.Equal(t, "sqrt", tree.Text(m.Captures["callee"], source))

	// Wrong field kind is a structural mismatch.
	_, ok = matchPattern(Pattern{
		Kind:   KindFunctionCall,
		Fields: []FieldPattern{{Name: "function", Kind: KindNumber}},
	}, call, source)
	assert.False(t, ok)

	// Missing field is a structural mismatch.
	_, ok = matchPattern(Pattern{
		Kind:   KindFunctionCall,
		Fields: []FieldPattern{{Name: "body"}},
	}, call, source)
	assert.False(t, ok)
}

func TestMatchPattern_Literals(t *testing.T) {
	source := []byte("if 1 then")
	ifNode := tree.NewMemNode(KindIf, 0, 9)
	ifNode.AddChild("", tree.NewMemNode("if", 0, 2))
	ifNode.AddChild("condition", tree.NewMemNode(KindNumber, 3, 4))
	ifNode.AddChild("", tree.NewMemNode("then", 5, 9))

	m, ok := matchPattern(Pattern{
		Kind:           KindIf,
		Literals:       []string{"if", "then", "else"},
		LiteralCapture: "keyword",
	}, ifNode, source)
	require.True(t, ok)
	require.Len(t, m.Literals, 2)
	assert.Equal(t, "if", tree.Text(m.Literals[0], source))
	assert.Equal(t, "then", tree.Text(m.Literals[1], source))
	assert.Equal(t, m.Literals[0], m.Captures["keyword"])

	_, ok = matchPattern(Pattern{
		Kind:     KindIf,
		Literals: []string{"for"},
	}, ifNode, source)
	assert.False(t, ok)
}

func TestMatchPattern_ErrorNodes(t *testing.T) {
	source := []byte(`"oops`)
	bad := tree.NewErrorNode(KindString, 0, 5)

	_, ok := matchPattern(Pattern{IsError: true}, bad, source)
	assert.True(t, ok)

	_, ok = matchPattern(Pattern{IsError: true}, tree.NewMemNode(KindString, 0, 5), source)
	assert.False(t, ok)

	// Error nodes still match kind-constrained patterns; only the
	// dedicated error pattern is special.
	_, ok = matchPattern(Pattern{Kind: KindString}, bad, source)
	assert.True(t, ok)
}

func TestCheckPredicates(t *testing.T) {
	source := []byte("sqrt(2)")
	call := buildCall("sqrt(2)", 4)

	pattern := Pattern{
		Kind:   KindFunctionCall,
		Fields: []FieldPattern{{Name: "function", Capture: "callee"}},
	}
	m, ok := matchPattern(pattern, call, source)
	require.True(t, ok)

	rs, err := NewRuleSet([]LevelGroup{{
		Level: LevelMinimal,
		Features: []FeatureGroup{{
			Feature: "function",
			Rules: []Rule{{
				Pattern:    pattern,
				Category:   CategoryBuiltinFunction,
				Predicates: []Predicate{{Capture: "callee", Regexp: builtinFunctionPattern}},
			}},
		}},
	}})
	require.NoError(t, err)

	assert.True(t, checkPredicates(rs.rules[0].predicates, m, source))

	other := []byte("myMacro(2)")
	m2, ok := matchPattern(pattern, buildCall("myMacro(2)", 7), other)
	require.True(t, ok)
	assert.False(t, checkPredicates(rs.rules[0].predicates, m2, other))
}
