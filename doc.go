/*
Package picmode is the editor-support engine for the pic diagram language:
it turns a parsed syntax tree into highlight spans and answers indentation
queries for line-start nodes.

The package does not parse pic itself. It operates on any tree exposing the
[tree.Node] interface; the tsnode subpackage adapts a live tree-sitter tree,
and [tree.MemNode] builds trees in memory. Both engines are pure functions
over the tree and their immutable rule tables, so one RuleSet or IndentTable
may serve any number of concurrent queries.

# Usage

Compile a rule table once, then query it per redraw or keystroke:

	rules, err := picmode.DefaultRules()
	if err != nil {
		log.Fatal(err)
	}

	spans := rules.Highlight(root, source, picmode.LevelsThrough(picmode.LevelDetailed)...)
	for _, span := range spans {
		log.Printf("%d-%d: %s", span.StartByte, span.EndByte, span.Category)
	}

	indent, err := picmode.DefaultIndentRules()
	if err != nil {
		log.Fatal(err)
	}

	column := indent.IndentOf(lineStartNode, source, 2)

Rule tables are plain data and can be loaded from YAML with [LoadRuleSet]
and [LoadIndentTable]; all table defects (unknown node kinds, malformed
regular expressions, a missing indent catch-all) are reported at load time,
never during a query.

Spans are ordered, non-overlapping, and tagged with a category name; mapping
a category to a visual style is the caller's concern. [RenderHTML] and
[RenderTerm] are sample consumers.

Node references are borrowed from the external parser. A re-parse
invalidates every node and every result computed from it; callers must not
reuse either across that boundary.
*/
package picmode
