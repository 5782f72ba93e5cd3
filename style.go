// Package sgr builds ANSI Select Graphic Rendition escape sequences from
// composable, immutable text styles. It is one-directional: structured
// styles are rendered to escape-sequence text, never parsed back, and no
// terminal capability detection is done. Whether the output stream actually
// supports the emitted sequences is the caller's decision
package sgr

// Element is any standalone styling value that can be lifted into a partial
// [Style] and combined with others. It is implemented by [Effect],
// [UnderlineStyle], [TargetedColor] and [Style] itself
type Element interface {
	toStyle() Style
}

// Style is the canonical aggregate of at most one color per plane, a set of
// effects and an underline variant. The zero value is the empty style. All
// operations return new values; a Style is never mutated
type Style struct {
	// Foreground is the color of the foreground plane. The zero value
	// leaves the terminal default in place
	Foreground Color
	// Background is the color of the background plane
	Background Color
	// UnderlineColor is the color of the underline, if the terminal
	// supports colored underlines
	UnderlineColor Color
	// UnderlineStyle is the single active underline variant
	UnderlineStyle UnderlineStyle
	// Attribute is the set of active boolean effects
	Attribute Effect
}

// NewStyle folds the given elements into one Style, merging left to right
func NewStyle(elems ...Element) Style {
	var s Style
	for _, e := range elems {
		s = s.Merge(e.toStyle())
	}
	return s
}

func (s Style) toStyle() Style {
	return s
}

// Merge combines two styles into a new one. Effects are unioned; for the
// colors and the underline variant o wins whenever it specifies the
// attribute, otherwise the specified side wins. Merge is associative and the
// empty style is its identity
func (s Style) Merge(o Style) Style {
	s.Attribute |= o.Attribute
	if o.Foreground != 0 {
		s.Foreground = o.Foreground
	}
	if o.Background != 0 {
		s.Background = o.Background
	}
	if o.UnderlineColor != 0 {
		s.UnderlineColor = o.UnderlineColor
	}
	if o.UnderlineStyle != UnderlineOff {
		s.UnderlineStyle = o.UnderlineStyle
	}
	return s
}

// String renders the escape sequence enabling the style: effects in
// declaration order, then the underline variant, then foreground,
// background and underline colors. The empty style renders as the empty
// string with no envelope at all, since some terminals treat a bare "\x1b[m"
// as a full reset. Output is byte-identical for equal styles
func (s Style) String() string {
	if s == (Style{}) {
		return ""
	}
	var w seqWriter
	w.sb.WriteString(csi)
	for _, ec := range effectCodes {
		if s.Attribute&ec.effect != 0 {
			w.num(ec.code)
		}
	}
	if p := s.UnderlineStyle.param(); p != "" {
		w.param(p)
	}
	s.Foreground.writeParams(&w, Foreground)
	s.Background.writeParams(&w, Background)
	s.UnderlineColor.writeParams(&w, Underline)
	w.sb.WriteByte('m')
	return w.sb.String()
}

// Apply pairs the style with content. Rendering the result wraps the
// content's text in the style's escape sequence and [Reset]
func (s Style) Apply(content any) Styled {
	return Styled{Style: s, Content: content}
}

// With merges the given elements into the style, left to right
func (s Style) With(elems ...Element) Style {
	for _, e := range elems {
		s = s.Merge(e.toStyle())
	}
	return s
}

// Without returns the style with the given effects removed
func (s Style) Without(e Effect) Style {
	s.Attribute &^= e
	return s
}

// Fg returns the style with its foreground color set. Passing the zero
// Color clears it
func (s Style) Fg(c Color) Style {
	s.Foreground = c
	return s
}

// Bg returns the style with its background color set
func (s Style) Bg(c Color) Style {
	s.Background = c
	return s
}

// Ul returns the style with its underline color set
func (s Style) Ul(c Color) Style {
	s.UnderlineColor = c
	return s
}

// Underline returns the style with the given underline variant, replacing
// any previously set one
func (s Style) Underline(u UnderlineStyle) Style {
	s.UnderlineStyle = u
	return s
}

// Underlined returns the style with a single underline
func (s Style) Underlined() Style {
	return s.Underline(UnderlineSingle)
}

func (s Style) Bold() Style {
	s.Attribute |= Bold
	return s
}

func (s Style) Dim() Style {
	s.Attribute |= Dim
	return s
}

func (s Style) Italic() Style {
	s.Attribute |= Italic
	return s
}

func (s Style) Blink() Style {
	s.Attribute |= Blink
	return s
}

func (s Style) Reverse() Style {
	s.Attribute |= Reverse
	return s
}

func (s Style) Hidden() Style {
	s.Attribute |= Hidden
	return s
}

func (s Style) StrikeThrough() Style {
	s.Attribute |= StrikeThrough
	return s
}
