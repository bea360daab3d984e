// ktags extracts a symbol index from Kotlin source trees.
package main

import (
	"os"

	"github.com/corey/ktags/cmd/ktags/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
