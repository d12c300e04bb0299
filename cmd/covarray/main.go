// Command covarray builds and verifies t-way covering arrays.
package main

import (
	"fmt"
	"os"

	"github.com/example/covarray/cmd/covarray/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
