package picmode

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Theme maps highlight categories to terminal colors. Categories without
// an entry render unstyled.
type Theme map[string]*color.Color

// DefaultTheme returns a theme covering the built-in categories.
func DefaultTheme() Theme {
	return Theme{
		CategoryComment:         color.New(color.FgHiBlack),
		CategoryString:          color.New(color.FgGreen),
		CategoryEscape:          color.New(color.FgHiGreen),
		CategoryKeyword:         color.New(color.FgMagenta),
		CategoryVariable:        color.New(color.FgBlue),
		CategoryNumber:          color.New(color.FgCyan),
		CategoryBuiltinFunction: color.New(color.FgYellow),
		CategoryFunctionCall:    color.New(color.FgHiYellow),
		CategoryCorner:          color.New(color.FgCyan),
		CategoryPreproc:         color.New(color.FgHiBlack),
		CategoryMacro:           color.New(color.FgHiMagenta),
		CategoryLabel:           color.New(color.FgBlue),
		CategoryError:           color.New(color.FgRed, color.Underline),
	}
}

// RenderTerm renders the source to the writer with ANSI styling for each
// highlight span. The spans must be the ordered, non-overlapping output of
// Highlight over the same source.
func RenderTerm(w io.Writer, spans []Span, source []byte, theme Theme) error {
	cursor := uint(0)
	for _, span := range spans {
		if span.StartByte < cursor || span.EndByte > uint(len(source)) {
			return fmt.Errorf("span %d-%d out of order or out of range", span.StartByte, span.EndByte)
		}

		if _, err := w.Write(source[cursor:span.StartByte]); err != nil {
			return err
		}

		text := source[span.StartByte:span.EndByte]
		if c := theme[span.Category]; c != nil {
			if _, err := c.Fprint(w, string(text)); err != nil {
				return err
			}
		} else if _, err := w.Write(text); err != nil {
			return err
		}

		cursor = span.EndByte
	}

	_, err := w.Write(source[cursor:])
	return err
}
