package util

import (
	"fmt"
	"os"
)

// Assert exits the program with an error message when err is not nil. Any
// additional arguments are interpreted as a Printf-style prefix giving
// context for the failure.
func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) > 0 {
			format := v[0].(string)
			rest := v[1:]
			Fatalf("%s: %s", fmt.Sprintf(format, rest...), err)
		}
		Fatalf("%s", err)
	}
}

func Fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
	os.Exit(1)
}

func Warnf(format string, v ...interface{}) {
	if !FlagQuiet {
		fmt.Fprintf(os.Stderr, format+"\n", v...)
	}
}

func Verbosef(format string, v ...interface{}) {
	if FlagVerbose {
		fmt.Fprintf(os.Stderr, format, v...)
	}
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
