// Package main implements the entry point for the tours API server, which
// registers and authenticates accounts and serves the public tour catalogue.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
