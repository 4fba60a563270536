// Command applet hosts the key-echo applet and inspects the dispatch table.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/applet/cmd/applet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
