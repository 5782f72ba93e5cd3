package sgr

// Color is a terminal color. The zero value represents the default color of
// the plane it is applied to
type Color uint32

const (
	basic   Color = 1 << 24
	indexed Color = 1 << 25
	rgb     Color = 1 << 26
)

// The 16 basic palette colors. Their numeric codes depend on the plane they
// are applied to
const (
	Black Color = basic + iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// IndexColor returns a Color for an index into the 256 color palette
func IndexColor(index uint8) Color {
	return Color(index) | indexed
}

// RGBColor returns a 24-bit Color from the three channel values
func RGBColor(r uint8, g uint8, b uint8) Color {
	return Color(int(r)<<16|int(g)<<8|int(b)) | rgb
}

// HexColor returns a 24-bit Color from a hex value, eg 0x00AABB
func HexColor(v uint32) Color {
	return Color(v&0xFFFFFF) | rgb
}

// ColorTarget selects the rendering plane a color applies to
type ColorTarget uint8

const (
	Foreground ColorTarget = iota
	Background
	Underline
)

// selector is the extended-color parameter introducing an indexed or RGB
// color on the target plane
func (t ColorTarget) selector() int {
	switch t {
	case Background:
		return 48
	case Underline:
		return 58
	default:
		return 38
	}
}

// Params returns the SGR parameters selecting c on plane t, or an empty
// slice if c is the default color. Every representable Color serializes; the
// underline plane has no basic-color codes, so basic colors degrade to their
// palette index there
func (c Color) Params(t ColorTarget) []int {
	ps := make([]int, 0, 5)
	switch {
	case c&basic != 0:
		idx := int(uint8(c))
		if t == Underline {
			return append(ps, t.selector(), 5, idx)
		}
		base := 30
		if t == Background {
			base = 40
		}
		if idx >= 8 {
			base += 60
			idx -= 8
		}
		ps = append(ps, base+idx)
	case c&indexed != 0:
		ps = append(ps, t.selector(), 5, int(uint8(c)))
	case c&rgb != 0:
		r := int(uint8(c >> 16))
		g := int(uint8(c >> 8))
		b := int(uint8(c))
		ps = append(ps, t.selector(), 2, r, g, b)
	}
	return ps
}

func (c Color) writeParams(w *seqWriter, t ColorTarget) {
	for _, p := range c.Params(t) {
		w.num(p)
	}
}

// For binds the color to a target plane
func (c Color) For(t ColorTarget) TargetedColor {
	return TargetedColor{Color: c, Target: t}
}

// Fg binds the color to the foreground plane
func (c Color) Fg() TargetedColor {
	return c.For(Foreground)
}

// Bg binds the color to the background plane
func (c Color) Bg() TargetedColor {
	return c.For(Background)
}

// Ul binds the color to the underline plane
func (c Color) Ul() TargetedColor {
	return c.For(Underline)
}

// TargetedColor is a Color bound to the plane it colors. It is a style
// element: it can be combined with others into a [Style] or applied to
// content directly
type TargetedColor struct {
	Color  Color
	Target ColorTarget
}

func (tc TargetedColor) toStyle() Style {
	var s Style
	switch tc.Target {
	case Background:
		s.Background = tc.Color
	case Underline:
		s.UnderlineColor = tc.Color
	default:
		s.Foreground = tc.Color
	}
	return s
}

// Style lifts the targeted color into a Style with only that color set
func (tc TargetedColor) Style() Style {
	return tc.toStyle()
}

// Apply pairs the targeted color with content
func (tc TargetedColor) Apply(content any) Styled {
	return tc.toStyle().Apply(content)
}

// String renders the escape sequence selecting this color alone
func (tc TargetedColor) String() string {
	return tc.toStyle().String()
}
