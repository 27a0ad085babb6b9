// Command slip39 is a thin CLI front-end over pkg/slip39's Generate and
// Combine entry points.
package main

import (
	"fmt"
	"os"

	"github.com/xecrets/slip39/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
