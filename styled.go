package sgr

import "fmt"

// Styled pairs a [Style] with the content it applies to. The content is
// opaque: anything fmt can print, rendered only when String is called and
// never inspected or transformed. Styled is a pure value; rendering it
// repeatedly or concurrently yields identical output
type Styled struct {
	Style   Style
	Content any
}

// NewStyled wraps content with an empty style
func NewStyled(content any) Styled {
	return Styled{Content: content}
}

// String renders the styled content. An empty style renders the content's
// own text verbatim, with no escape bytes and no reset. Otherwise the text
// is preceded by the style's escape sequence and followed by [Reset]
func (s Styled) String() string {
	text := fmt.Sprint(s.Content)
	seq := s.Style.String()
	if seq == "" {
		return text
	}
	return seq + text + Reset
}

// Width returns the number of terminal cells the content occupies when
// printed, not counting the escape sequences around it
func (s Styled) Width() int {
	return StringWidth(fmt.Sprint(s.Content))
}

// With merges the given elements into the wrapper's style
func (s Styled) With(elems ...Element) Styled {
	s.Style = s.Style.With(elems...)
	return s
}

// Without returns the wrapper with the given effects removed
func (s Styled) Without(e Effect) Styled {
	s.Style = s.Style.Without(e)
	return s
}

func (s Styled) Fg(c Color) Styled {
	s.Style = s.Style.Fg(c)
	return s
}

func (s Styled) Bg(c Color) Styled {
	s.Style = s.Style.Bg(c)
	return s
}

func (s Styled) Ul(c Color) Styled {
	s.Style = s.Style.Ul(c)
	return s
}

func (s Styled) Underline(u UnderlineStyle) Styled {
	s.Style = s.Style.Underline(u)
	return s
}

func (s Styled) Underlined() Styled {
	s.Style = s.Style.Underlined()
	return s
}

func (s Styled) Bold() Styled {
	s.Style = s.Style.Bold()
	return s
}

func (s Styled) Dim() Styled {
	s.Style = s.Style.Dim()
	return s
}

func (s Styled) Italic() Styled {
	s.Style = s.Style.Italic()
	return s
}

func (s Styled) Blink() Styled {
	s.Style = s.Style.Blink()
	return s
}

func (s Styled) Reverse() Styled {
	s.Style = s.Style.Reverse()
	return s
}

func (s Styled) Hidden() Styled {
	s.Style = s.Style.Hidden()
	return s
}

func (s Styled) StrikeThrough() Styled {
	s.Style = s.Style.StrikeThrough()
	return s
}
