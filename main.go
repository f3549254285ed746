// main holds the entry logic for the clutchvault CLI.
package main

import (
	"fmt"
	"os"

	"github.com/clutchsports/clutchvault/cmd"
	"github.com/clutchsports/clutchvault/internal/iocache"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code. Store cleanup and
// profiling teardown run via defer so every exit path closes connections.
func run() int {
	defer iocache.CloseStores()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: could not stop profiling:", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
