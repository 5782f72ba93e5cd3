package sgr

// UnderlineStyle represents the style of underline to apply. Variants are
// mutually exclusive: a style holds exactly one, and setting a variant
// replaces any previously set one
type UnderlineStyle uint8

const (
	UnderlineOff UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// param returns the SGR parameter token for the variant. All variants other
// than single carry a colon-joined sub-parameter, which stays a single token
// in the semicolon-joined parameter list
func (u UnderlineStyle) param() string {
	switch u {
	case UnderlineSingle:
		return "4"
	case UnderlineDouble:
		return "4:2"
	case UnderlineCurly:
		return "4:3"
	case UnderlineDotted:
		return "4:4"
	case UnderlineDashed:
		return "4:5"
	}
	return ""
}

func (u UnderlineStyle) toStyle() Style {
	return Style{UnderlineStyle: u}
}

// Style lifts the underline variant into a Style with only it set
func (u UnderlineStyle) Style() Style {
	return u.toStyle()
}

// Apply pairs the underline variant with content
func (u UnderlineStyle) Apply(content any) Styled {
	return u.toStyle().Apply(content)
}

// String renders the escape sequence enabling the underline variant alone
func (u UnderlineStyle) String() string {
	return u.toStyle().String()
}
