// Command lgrender renders liquid-glass displacement and specular maps.
package main

import (
	"os"

	"github.com/glassfx/liquidglass/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
