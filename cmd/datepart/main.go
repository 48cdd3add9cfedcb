// Command datepart runs golden date_part fixture files against the
// built-in field extractor.
package main

import (
	"os"

	"github.com/leapstack-labs/datepart/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
