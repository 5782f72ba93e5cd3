// vtwidth is a utility to measure the width of a string as it will be
// rendered in the terminal
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fluentansi/sgr"
)

func main() {
	var (
		verbose bool
		method  string
	)
	flag.BoolVar(&verbose, "v", false, "print verbose result")
	flag.BoolVar(&verbose, "verbose", false, "print verbose result")
	flag.StringVar(&method, "method", "unicode", "width algorithm: unicode, nozwj or wcwidth")
	flag.Parse()

	var input string
	switch len(flag.Args()) {
	case 0:
		fmt.Print("Enter text: ")
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Scan()
		input = scanner.Text()
	case 1:
		input = flag.Arg(0)
	default:
		fmt.Println("multiple arguments not supported")
		os.Exit(1)
	}

	var m sgr.WidthMethod
	switch method {
	case "unicode":
		m = sgr.WidthUnicode
	case "nozwj":
		m = sgr.WidthNoZWJ
	case "wcwidth":
		m = sgr.WidthWC
	default:
		fmt.Printf("unknown method %q\n", method)
		os.Exit(1)
	}

	w := sgr.StringWidthMethod(input, m)
	fmt.Println(w)
	if verbose {
		fmt.Println("|" + strings.Repeat("-", w) + "|")
		fmt.Println("|" + input + "|")
	}
}
