package sgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorParams(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		target ColorTarget
		params []int
	}{
		{
			name:   "default foreground",
			color:  0,
			target: Foreground,
			params: []int{},
		},
		{
			name:   "basic foreground",
			color:  Red,
			target: Foreground,
			params: []int{31},
		},
		{
			name:   "basic background",
			color:  Blue,
			target: Background,
			params: []int{44},
		},
		{
			name:   "bright foreground",
			color:  BrightCyan,
			target: Foreground,
			params: []int{96},
		},
		{
			name:   "bright background",
			color:  BrightBlack,
			target: Background,
			params: []int{100},
		},
		{
			name:   "basic underline degrades to indexed",
			color:  Yellow,
			target: Underline,
			params: []int{58, 5, 3},
		},
		{
			name:   "bright underline degrades to indexed",
			color:  BrightYellow,
			target: Underline,
			params: []int{58, 5, 11},
		},
		{
			name:   "indexed foreground",
			color:  IndexColor(142),
			target: Foreground,
			params: []int{38, 5, 142},
		},
		{
			name:   "indexed background",
			color:  IndexColor(0),
			target: Background,
			params: []int{48, 5, 0},
		},
		{
			name:   "rgb foreground",
			color:  RGBColor(1, 2, 3),
			target: Foreground,
			params: []int{38, 2, 1, 2, 3},
		},
		{
			name:   "rgb underline",
			color:  RGBColor(255, 0, 127),
			target: Underline,
			params: []int{58, 2, 255, 0, 127},
		},
		{
			name:   "hex",
			color:  HexColor(0x00AABB),
			target: Background,
			params: []int{48, 2, 0, 0xAA, 0xBB},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.params, test.color.Params(test.target))
		})
	}
}

func TestHexColorEqualsRGBColor(t *testing.T) {
	assert.Equal(t, RGBColor(0x12, 0x34, 0x56), HexColor(0x123456))
}

func TestTargetedColor(t *testing.T) {
	assert.Equal(t, "\x1b[31m", Red.Fg().String())
	assert.Equal(t, "\x1b[41m", Red.Bg().String())
	assert.Equal(t, "\x1b[58;5;1m", Red.Ul().String())
	assert.Equal(t, Red.Bg(), Red.For(Background))
}

func TestBasicColorCodes(t *testing.T) {
	colors := []Color{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
	for i, c := range colors {
		assert.Equal(t, []int{30 + i}, c.Params(Foreground))
		assert.Equal(t, []int{40 + i}, c.Params(Background))
	}
	bright := []Color{
		BrightBlack, BrightRed, BrightGreen, BrightYellow,
		BrightBlue, BrightMagenta, BrightCyan, BrightWhite,
	}
	for i, c := range bright {
		assert.Equal(t, []int{90 + i}, c.Params(Foreground))
		assert.Equal(t, []int{100 + i}, c.Params(Background))
	}
}
