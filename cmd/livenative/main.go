// Command livenative resolves server-driven UI documents from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/livenative/cmd/livenative/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
