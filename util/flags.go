package util

import (
	"flag"
	"fmt"
	"os"
	"path"
)

var (
	FlagVerbose = false
	FlagQuiet   = false
)

var flagAdders = map[string]func(){
	"verbose": func() {
		flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
			"When set, progress information is emitted to stderr.")
	},
	"quiet": func() {
		flag.BoolVar(&FlagQuiet, "quiet", FlagQuiet,
			"When set, warnings are suppressed.")
	},
}

// FlagUse registers one or more of the common flags shared by every tool in
// this suite. It must be called before FlagParse.
func FlagUse(names ...string) {
	for _, name := range names {
		adder, ok := flagAdders[name]
		if !ok {
			Fatalf("BUG: unknown common flag '%s'", name)
		}
		adder()
	}
}

// FlagParse sets a usage message listing the positional arguments expected
// by the tool and parses the command line. `positional` names the arguments
// in order and `desc` may add free-form detail below the usage line.
func FlagParse(positional, desc string) {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] %s\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			fmt.Fprintf(os.Stderr, "%s\n", desc)
		}
		flag.PrintDefaults()
	}
	flag.Parse()
}

func Usage() {
	flag.Usage()
	os.Exit(1)
}

func Arg(i int) string {
	return flag.Arg(i)
}

func NArg() int {
	return flag.NArg()
}

func AssertNArg(n int) {
	if flag.NArg() != n {
		Usage()
	}
}
