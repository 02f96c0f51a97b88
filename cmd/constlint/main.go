// Command constlint checks source files against a project constitution.
package main

import (
	"os"

	"github.com/jokarl/constlint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
