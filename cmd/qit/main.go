// Command qit is a minimal, read-compatible reimplementation of a few
// core git plumbing and porcelain commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qit:", err)
		os.Exit(1)
	}

	cmd := newRootCmd(cwd)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qit:", err)
		os.Exit(1)
	}
}
