// Command knobs binds the values of a YAML panel document and keeps them
// constrained while the document changes.
package main

import (
	"os"

	"github.com/go-knobs/knobs/cmd/knobs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
