package picmode

// Node kinds of the pic grammar the rule tables are written against. The
// vocabulary is a fixed contract with the external parser; anonymous tokens
// ("{", "]", keyword literals) use their token text as kind.
const (
	KindPicture         = "picture"
	KindElement         = "element"
	KindDelimited       = "delimited"
	KindPrimitive       = "primitive"
	KindIf              = "if"
	KindFor             = "for"
	KindComment         = "comment"
	KindString          = "string"
	KindEscapeSequence  = "escape_sequence"
	KindVariable        = "variable"
	KindNumber          = "number"
	KindCorner          = "corner"
	KindCommandLine     = "command_line"
	KindFunctionCall    = "function_call"
	KindMacroDefinition = "macro_definition"
	KindMacroName       = "macro_name"
	KindLabel           = "label"
	KindAssignment      = "assignment"
	KindDirection       = "direction"
)

// Highlight categories produced by the engine. Mapping a category to a
// visual style is the caller's concern.
const (
	CategoryComment         = "comment"
	CategoryString          = "string"
	CategoryEscape          = "string.escape"
	CategoryKeyword         = "keyword"
	CategoryVariable        = "variable"
	CategoryNumber          = "number"
	CategoryBuiltinFunction = "function.builtin"
	CategoryFunctionCall    = "function.call"
	CategoryCorner          = "constant.builtin"
	CategoryPreproc         = "preproc"
	CategoryMacro           = "function.macro"
	CategoryLabel           = "label"
	CategoryError           = "error"
)

// Primitive object keywords of the pic language.
var primitiveKeywords = []string{
	"arc", "arrow", "box", "circle", "ellipse", "line", "move", "spline",
}

// Control-flow and statement keywords.
var statementKeywords = []string{
	"if", "then", "else", "for", "do", "to", "by", "define", "undef",
	"reset", "print", "command", "sh", "copy", "thru", "until", "plot",
	"with", "at", "from",
}

// builtinFunctionPattern matches the names of pic's built-in math
// functions; anything else with call syntax is an ordinary macro call.
const builtinFunctionPattern = `^(atan2|cos|exp|int|log|max|min|rand|sin|sqrt|srand)$`

// knownKinds is the vocabulary rule tables are validated against at load
// time. Anonymous token kinds (keyword literals and punctuation) are
// permitted in addition to this set.
var knownKinds = map[string]bool{
	KindPicture:         true,
	KindElement:         true,
	KindDelimited:       true,
	KindPrimitive:       true,
	KindIf:              true,
	KindFor:             true,
	KindComment:         true,
	KindString:          true,
	KindEscapeSequence:  true,
	KindVariable:        true,
	KindNumber:          true,
	KindCorner:          true,
	KindCommandLine:     true,
	KindFunctionCall:    true,
	KindMacroDefinition: true,
	KindMacroName:       true,
	KindLabel:           true,
	KindAssignment:      true,
	KindDirection:       true,
}

// validKind reports whether a rule table may reference kind: either a named
// grammar kind, a known keyword literal, or a pure punctuation token.
func validKind(kind string) bool {
	if kind == "" || knownKinds[kind] {
		return kind != ""
	}
	for _, kw := range primitiveKeywords {
		if kind == kw {
			return true
		}
	}
	for _, kw := range statementKeywords {
		if kind == kw {
			return true
		}
	}
	for _, r := range kind {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' {
			return false
		}
	}
	return true
}
