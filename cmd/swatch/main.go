// swatch prints color, effect and underline samples to exercise a
// terminal's SGR support
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"github.com/fluentansi/sgr"
)

func main() {
	var (
		truecolor bool
		verbose   bool
	)
	flag.BoolVar(&truecolor, "truecolor", false, "include an RGB gradient")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		AddSource:  verbose,
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))

	// The library is capability agnostic and always emits full escape
	// codes; deciding whether the output can display them is our job here
	width := 80
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			log.Debug("could not query terminal size", "error", err)
		} else {
			width = w
		}
	} else {
		log.Warn("stdout is not a terminal, emitting escape sequences anyway")
	}
	log.Debug("rendering swatches", "width", width, "truecolor", truecolor)

	basicColors(false)
	basicColors(true)
	effects()
	underlines()
	palette(width)
	if truecolor {
		gradient(width)
	}
}

func basicColors(bright bool) {
	colors := []sgr.Color{
		sgr.Black, sgr.Red, sgr.Green, sgr.Yellow,
		sgr.Blue, sgr.Magenta, sgr.Cyan, sgr.White,
	}
	if bright {
		colors = []sgr.Color{
			sgr.BrightBlack, sgr.BrightRed, sgr.BrightGreen, sgr.BrightYellow,
			sgr.BrightBlue, sgr.BrightMagenta, sgr.BrightCyan, sgr.BrightWhite,
		}
	}
	for _, c := range colors {
		fmt.Print(c.Fg().Apply(" Aa "))
	}
	fmt.Println()
	for _, c := range colors {
		fmt.Print(c.Bg().Apply("    "))
	}
	fmt.Println()
}

func effects() {
	samples := []struct {
		name   string
		effect sgr.Effect
	}{
		{"bold", sgr.Bold},
		{"dim", sgr.Dim},
		{"italic", sgr.Italic},
		{"blink", sgr.Blink},
		{"reverse", sgr.Reverse},
		{"hidden", sgr.Hidden},
		{"strikethrough", sgr.StrikeThrough},
	}
	for _, s := range samples {
		fmt.Print(s.effect.Apply(s.name), " ")
	}
	fmt.Println()
}

func underlines() {
	samples := []struct {
		name  string
		style sgr.UnderlineStyle
	}{
		{"single", sgr.UnderlineSingle},
		{"double", sgr.UnderlineDouble},
		{"curly", sgr.UnderlineCurly},
		{"dotted", sgr.UnderlineDotted},
		{"dashed", sgr.UnderlineDashed},
	}
	for _, s := range samples {
		fmt.Print(s.style.Apply(s.name).Ul(sgr.BrightRed), " ")
	}
	fmt.Println()
}

func palette(width int) {
	cols := width / 5
	if cols < 1 {
		cols = 1
	}
	for i := 0; i < 256; i++ {
		fmt.Print(sgr.IndexColor(uint8(i)).Bg().Apply(fmt.Sprintf(" %3d ", i)))
		if (i+1)%cols == 0 {
			fmt.Println()
		}
	}
	fmt.Println()
}

func gradient(width int) {
	for i := 0; i < width; i++ {
		r := uint8(255 * i / width)
		b := uint8(255 - 255*i/width)
		fmt.Print(sgr.RGBColor(r, 0, b).Bg().Apply(" "))
	}
	fmt.Println()
}
