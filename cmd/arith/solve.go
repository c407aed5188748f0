package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/calcsafe/arith/puzzle"
)

func solveCmd() *cobra.Command {
	var (
		digits   []int
		goal     float64
		attempts int
		seed     int64
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "search random expressions over a digit list for a goal value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			res, ok := puzzle.Search(digits, goal, attempts, rng)
			if !ok {
				return fmt.Errorf("no expression found for %g in %d attempts", goal, attempts)
			}
			if verbose {
				repr.Println(res)
			}
			fmt.Printf("%s = %g\n", res.Expr, res.Value)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&digits, "digits", []int{5, 5, 5, 5, 5}, "digits available to candidate expressions")
	cmd.Flags().Float64Var(&goal, "goal", 9, "target value")
	cmd.Flags().IntVar(&attempts, "attempts", 1000, "candidate budget")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the current time)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump the full search result")
	return cmd
}
