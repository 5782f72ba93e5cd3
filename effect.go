package sgr

// Effect represents a bitmask of boolean styling attributes. Any subset may
// be active at once
type Effect uint8

const (
	Bold Effect = 1 << iota
	Dim
	Italic
	Blink
	Reverse
	Hidden
	StrikeThrough
)

// effectCodes maps each effect to its SGR parameter, in declaration order.
// The codes are a compatibility contract with terminal emulators and must
// not change
var effectCodes = []struct {
	effect Effect
	code   int
}{
	{Bold, 1},
	{Dim, 2},
	{Italic, 3},
	{Blink, 5},
	{Reverse, 7},
	{Hidden, 8},
	{StrikeThrough, 9},
}

func (e Effect) toStyle() Style {
	return Style{Attribute: e}
}

// Style lifts the effect set into a Style with only those effects set
func (e Effect) Style() Style {
	return e.toStyle()
}

// Apply pairs the effect set with content
func (e Effect) Apply(content any) Styled {
	return e.toStyle().Apply(content)
}

// String renders the escape sequence enabling the effect set alone
func (e Effect) String() string {
	return e.toStyle().String()
}
