// Command patmat reads one line from stdin and reports whether it matches
// the pattern given after -E. Exit status 0 means match, 1 means no match,
// 2 means a usage or pattern error.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/patmat/patmat"
)

func main() {
	args := os.Args[1:]

	debug := false
	if len(args) > 0 && args[0] == "-debug" {
		debug = true
		args = args[1:]
	}

	// The invocation contract is positional: -E must come right before the
	// pattern, nothing else is accepted.
	if len(args) != 2 || args[0] != "-E" {
		fmt.Fprintln(os.Stderr, "usage: patmat [-debug] -E <pattern>")
		os.Exit(2)
	}

	pattern, err := patmat.Compile(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if debug {
		fmt.Fprint(os.Stderr, pattern.Dump())
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(2)
	}
	line = strings.TrimRightFunc(line, unicode.IsSpace)

	if pattern.IsMatch(line) {
		fmt.Println("This is a match")
		os.Exit(0)
	}
	fmt.Println("This is not a match")
	os.Exit(1)
}
