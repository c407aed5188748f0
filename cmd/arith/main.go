// Command arith parses and evaluates arithmetic expressions without ever
// handing the input to a general-purpose evaluator, and searches random
// expressions for digit-puzzle solutions.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "arith",
		Short:        "safely parse and evaluate arithmetic expressions",
		SilenceUsage: true,
	}
	root.AddCommand(evalCmd(), solveCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
