package sgr_test

import (
	"fmt"

	"github.com/fluentansi/sgr"
)

func ExampleStyle() {
	style := sgr.NewStyle(sgr.Red.Fg(), sgr.Bold)
	fmt.Printf("%q\n", style.Apply("Some content"))
	// Output: "\x1b[1;31mSome content\x1b[0m"
}

func ExampleNewStyled() {
	// An empty style renders the content untouched
	fmt.Printf("%q\n", sgr.NewStyled("plain"))
	// Output: "plain"
}

func ExampleStyled() {
	styled := sgr.NewStyled("warning").
		Bold().
		Underline(sgr.UnderlineCurly).
		Fg(sgr.BrightYellow)
	fmt.Printf("%q\n", styled)
	// Output: "\x1b[1;4:3;93mwarning\x1b[0m"
}

func ExampleIndexColor() {
	// Index 1 is usually a red
	fmt.Printf("%q\n", sgr.IndexColor(1).Fg())
	// Output: "\x1b[38;5;1m"
}

func ExampleRGBColor() {
	fmt.Printf("%q\n", sgr.RGBColor(1, 2, 3).Bg())
	// Output: "\x1b[48;2;1;2;3m"
}

func ExampleHexColor() {
	// Creates an RGB color from a hex value
	fmt.Printf("%q\n", sgr.HexColor(0x00AABB).Fg())
	// Output: "\x1b[38;2;0;170;187m"
}
