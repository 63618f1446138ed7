package picmode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classAttributeCallback(category string) []byte {
	return []byte(`class="hl-` + category + `"`)
}

func TestRenderHTML(t *testing.T) {
	root, source := buildIfStatement()
	spans := defaultRules(t).Highlight(root, source, LevelsThrough(LevelDetailed)...)

	var sb strings.Builder
	err := RenderHTML(&sb, spans, source, classAttributeCallback)
	require.NoError(t, err)

	assert.Equal(t,
		`<span class="hl-keyword">if</span> `+
			`<span class="hl-number">1</span> `+
			`<span class="hl-keyword">then</span> { `+
			`<span class="hl-keyword">sh</span> `+
			`<span class="hl-string">&#34;foo&#34;</span> }`,
		sb.String())
}

func TestRenderHTML_EscapesText(t *testing.T) {
	var sb strings.Builder
	err := RenderHTML(&sb, nil, []byte(`a < b & 'c' > "d"`), nil)
	require.NoError(t, err)

	assert.Equal(t, "a &lt; b &amp; &#39;c&#39; &gt; &#34;d&#34;", sb.String())
}

func TestRenderHTML_NilCallback(t *testing.T) {
	var sb strings.Builder
	spans := []Span{{StartByte: 0, EndByte: 3, Category: CategoryKeyword}}
	err := RenderHTML(&sb, spans, []byte("box it"), nil)
	require.NoError(t, err)

	assert.Equal(t, "<span>box</span> it", sb.String())
}

func TestRenderHTML_RejectsBadSpans(t *testing.T) {
	var sb strings.Builder

	err := RenderHTML(&sb, []Span{{StartByte: 2, EndByte: 9, Category: CategoryKeyword}}, []byte("box"), nil)
	assert.Error(t, err)

	err = RenderHTML(&sb, []Span{
		{StartByte: 2, EndByte: 3, Category: CategoryKeyword},
		{StartByte: 0, EndByte: 1, Category: CategoryKeyword},
	}, []byte("box"), nil)
	assert.Error(t, err)
}
