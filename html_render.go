package picmode

import (
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	escapeAmpersand   = []byte("&amp;")
	escapeSingle      = []byte("&#39;")
	escapeLessThan    = []byte("&lt;")
	escapeGreaterThan = []byte("&gt;")
	escapeDouble      = []byte("&#34;")
)

// AttributeCallback returns the html element attributes for a highlight
// span of the given category. This can be anything from classes, ids, or
// inline styles.
type AttributeCallback func(category string) []byte

// RenderHTML renders the source to the writer with a span element for each
// highlight span. The spans must be the ordered, non-overlapping output of
// Highlight over the same source. The AttributeCallback is used to generate
// the classes or inline styles for each span.
func RenderHTML(w io.Writer, spans []Span, source []byte, callback AttributeCallback) error {
	cursor := uint(0)
	for _, span := range spans {
		if span.StartByte < cursor || span.EndByte > uint(len(source)) {
			return fmt.Errorf("span %d-%d out of order or out of range", span.StartByte, span.EndByte)
		}

		if err := addText(w, source[cursor:span.StartByte]); err != nil {
			return err
		}
		if err := startHighlight(w, span.Category, callback); err != nil {
			return err
		}
		if err := addText(w, source[span.StartByte:span.EndByte]); err != nil {
			return err
		}
		if err := endHighlight(w); err != nil {
			return err
		}

		cursor = span.EndByte
	}

	return addText(w, source[cursor:])
}

func addText(w io.Writer, source []byte) error {
	for len(source) > 0 {
		c, l := utf8.DecodeRune(source)
		source = source[l:]

		if c == utf8.RuneError || c == '\r' {
			continue
		}

		var b []byte
		switch c {
		case '&':
			b = escapeAmpersand
		case '\'':
			b = escapeSingle
		case '<':
			b = escapeLessThan
		case '>':
			b = escapeGreaterThan
		case '"':
			b = escapeDouble
		default:
			b = []byte(string(c))
		}

		if _, err := w.Write(b); err != nil {
			return err
		}
	}

	return nil
}

func startHighlight(w io.Writer, category string, callback AttributeCallback) error {
	if _, err := fmt.Fprintf(w, "<span"); err != nil {
		return err
	}

	var attributes []byte
	if callback != nil {
		attributes = callback(category)
	}

	if len(attributes) > 0 {
		if _, err := w.Write([]byte(" ")); err != nil {
			return err
		}
		if _, err := w.Write(attributes); err != nil {
			return err
		}
	}

	_, err := w.Write([]byte(">"))
	return err
}

func endHighlight(w io.Writer) error {
	_, err := w.Write([]byte("</span>"))
	return err
}
