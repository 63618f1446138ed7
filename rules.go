package picmode

// DefaultRules returns the built-in highlight rule table for pic. Features
// follow the usual font-lock leveling: level 1 carries comments and macro
// definitions, level 2 the keyword and string syntax, level 3 the finer
// value categories, level 4 raw troff command lines. The error feature is
// always active and overrides whatever span an error node fell under.
func DefaultRules() (*RuleSet, error) {
	return NewRuleSet([]LevelGroup{
		{
			Level: LevelMinimal,
			Features: []FeatureGroup{
				{
					Feature: "comment",
					Rules: []Rule{
						{Pattern: Pattern{Kind: KindComment}, Category: CategoryComment},
					},
				},
				{
					Feature: "definition",
					Rules: []Rule{
						{
							Pattern: Pattern{
								Kind: KindMacroDefinition,
								Fields: []FieldPattern{
									{Name: "name", Kind: KindMacroName, Capture: "name"},
								},
							},
							Category:    CategoryMacro,
							SpanCapture: "name",
						},
					},
				},
				{
					Feature: FeatureError,
					Rules: []Rule{
						{Pattern: Pattern{IsError: true}, Category: CategoryError, Override: true},
					},
				},
			},
		},
		{
			Level: LevelModerate,
			Features: []FeatureGroup{
				{
					Feature: "keyword",
					Rules: []Rule{
						{
							Pattern: Pattern{
								Kind:           KindPrimitive,
								Literals:       primitiveKeywords,
								LiteralCapture: "keyword",
							},
							Category:    CategoryKeyword,
							SpanCapture: "keyword",
						},
						{
							Pattern: Pattern{
								Kind:           KindIf,
								Literals:       []string{"if", "then", "else"},
								LiteralCapture: "keyword",
							},
							Category:    CategoryKeyword,
							SpanCapture: "keyword",
						},
						{
							Pattern: Pattern{
								Kind:           KindFor,
								Literals:       []string{"for", "to", "by", "do"},
								LiteralCapture: "keyword",
							},
							Category:    CategoryKeyword,
							SpanCapture: "keyword",
						},
						{
							Pattern: Pattern{
								Kind:           KindMacroDefinition,
								Literals:       []string{"define", "undef"},
								LiteralCapture: "keyword",
							},
							Category:    CategoryKeyword,
							SpanCapture: "keyword",
						},
						{
							Pattern: Pattern{
								Kind:           KindPrimitive,
								Literals:       []string{"sh", "copy", "print", "reset", "plot", "command"},
								LiteralCapture: "keyword",
							},
							Category:    CategoryKeyword,
							SpanCapture: "keyword",
						},
						{Pattern: Pattern{Kind: KindDirection}, Category: CategoryKeyword},
					},
				},
				{
					Feature: "string",
					Rules: []Rule{
						{Pattern: Pattern{Kind: KindString}, Category: CategoryString},
					},
				},
			},
		},
		{
			Level: LevelDetailed,
			Features: []FeatureGroup{
				{
					Feature: "variable",
					Rules: []Rule{
						{Pattern: Pattern{Kind: KindVariable}, Category: CategoryVariable},
						{Pattern: Pattern{Kind: KindLabel}, Category: CategoryLabel},
					},
				},
				{
					Feature: "number",
					Rules: []Rule{
						{Pattern: Pattern{Kind: KindNumber}, Category: CategoryNumber},
					},
				},
				{
					Feature: "function",
					Rules: []Rule{
						{
							Pattern: Pattern{
								Kind: KindFunctionCall,
								Fields: []FieldPattern{
									{Name: "function", Capture: "callee"},
								},
							},
							Predicates: []Predicate{
								{Capture: "callee", Regexp: builtinFunctionPattern},
							},
							Category:    CategoryBuiltinFunction,
							SpanCapture: "callee",
						},
						{
							Pattern: Pattern{
								Kind: KindFunctionCall,
								Fields: []FieldPattern{
									{Name: "function", Capture: "callee"},
								},
							},
							Category:    CategoryFunctionCall,
							SpanCapture: "callee",
						},
					},
				},
				{
					Feature: "constant",
					Rules: []Rule{
						{Pattern: Pattern{Kind: KindCorner}, Category: CategoryCorner},
					},
				},
				{
					Feature: "escape",
					Rules: []Rule{
						// Escape sequences sit inside string spans and must
						// re-color their slice of the string.
						{Pattern: Pattern{Kind: KindEscapeSequence}, Category: CategoryEscape, Override: true},
					},
				},
			},
		},
		{
			Level: LevelMaximal,
			Features: []FeatureGroup{
				{
					Feature: "command",
					Rules: []Rule{
						{Pattern: Pattern{Kind: KindCommandLine}, Category: CategoryPreproc},
					},
				},
			},
		},
	})
}
