// Command capsim runs the universal capital neighborhood simulation.
package main

import (
	"fmt"
	"os"

	"github.com/talgya/capsim/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
