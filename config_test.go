package picmode

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smoeding/pic-ts-mode/tree"
)

func TestLoadRuleSet(t *testing.T) {
	data, err := os.ReadFile("testdata/rules.yml")
	require.NoError(t, err)

	rs, err := LoadRuleSet(data)
	require.NoError(t, err)

	source := []byte("box # note")
	primitive := tree.NewMemNode(KindPrimitive, 0, 3)
	primitive.AddChild("", tree.NewMemNode("box", 0, 3))
	picture := tree.NewMemNode(KindPicture, 0, 10)
	picture.AddChild("", primitive)
	picture.AddChild("", tree.NewMemNode(KindComment, 4, 10))

	spans := rs.Highlight(picture, source, LevelMinimal, LevelModerate)
	assert.Equal(t, []Span{
		{StartByte: 0, EndByte: 3, Category: CategoryKeyword},
		{StartByte: 4, EndByte: 10, Category: CategoryComment},
	}, spans)
}

func TestLoadRuleSet_InvalidYAML(t *testing.T) {
	_, err := LoadRuleSet([]byte("levels: {not: a list}"))
	assert.Error(t, err)
}

func TestNewRuleSet_Defects(t *testing.T) {
	tests := []struct {
		name    string
		levels  []LevelGroup
		wantErr string
	}{
		{
			name: "unknown node kind",
			levels: []LevelGroup{{Level: 1, Features: []FeatureGroup{{
				Feature: "comment",
				Rules:   []Rule{{Pattern: Pattern{Kind: "remark"}, Category: CategoryComment}},
			}}}},
			wantErr: "unknown node kind",
		},
		{
			name: "malformed regex",
			levels: []LevelGroup{{Level: 1, Features: []FeatureGroup{{
				Feature: "function",
				Rules: []Rule{{
					Pattern:    Pattern{Kind: KindFunctionCall, Fields: []FieldPattern{{Name: "function", Capture: "callee"}}},
					Category:   CategoryBuiltinFunction,
					Predicates: []Predicate{{Capture: "callee", Regexp: "("}},
				}},
			}}}},
			wantErr: "predicate",
		},
		{
			name: "predicate over unbound capture",
			levels: []LevelGroup{{Level: 1, Features: []FeatureGroup{{
				Feature: "function",
				Rules: []Rule{{
					Pattern:    Pattern{Kind: KindFunctionCall},
					Category:   CategoryBuiltinFunction,
					Predicates: []Predicate{{Capture: "callee", Regexp: "x"}},
				}},
			}}}},
			wantErr: "unbound capture",
		},
		{
			name: "error rule without override",
			levels: []LevelGroup{{Level: 1, Features: []FeatureGroup{{
				Feature: FeatureError,
				Rules:   []Rule{{Pattern: Pattern{IsError: true}, Category: CategoryError}},
			}}}},
			wantErr: "override",
		},
		{
			name: "level out of range",
			levels: []LevelGroup{{Level: 9, Features: []FeatureGroup{{
				Feature: "comment",
				Rules:   []Rule{{Pattern: Pattern{Kind: KindComment}, Category: CategoryComment}},
			}}}},
			wantErr: "invalid highlight level",
		},
		{
			name: "pattern matches every node",
			levels: []LevelGroup{{Level: 1, Features: []FeatureGroup{{
				Feature: "comment",
				Rules:   []Rule{{Pattern: Pattern{}, Category: CategoryComment}},
			}}}},
			wantErr: "matches every node",
		},
		{
			name: "missing category",
			levels: []LevelGroup{{Level: 1, Features: []FeatureGroup{{
				Feature: "comment",
				Rules:   []Rule{{Pattern: Pattern{Kind: KindComment}}},
			}}}},
			wantErr: "category",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewRuleSet(test.levels)
			assert.ErrorContains(t, err, test.wantErr)
		})
	}
}

func TestLoadIndentTable(t *testing.T) {
	data, err := os.ReadFile("testdata/indent.yml")
	require.NoError(t, err)

	table, err := LoadIndentTable(data)
	require.NoError(t, err)

	box, circle, closing, source := buildBlockElement()
	assert.Equal(t, 2, table.IndentOf(box, source, 2))
	assert.Equal(t, 2, table.IndentOf(circle, source, 2))
	assert.Equal(t, 0, table.IndentOf(closing, source, 2))
}

func TestLoadIndentTable_MissingCatchAll(t *testing.T) {
	_, err := LoadIndentTable([]byte("rules:\n  - when: {kind: primitive}\n    anchor: parent\n"))
	assert.ErrorContains(t, err, "catch-all")
}

func TestDefaultTables(t *testing.T) {
	rs, err := DefaultRules()
	require.NoError(t, err)
	assert.NotNil(t, rs)

	table, err := DefaultIndentRules()
	require.NoError(t, err)
	assert.NotNil(t, table)
}
