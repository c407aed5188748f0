package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calcsafe/arith"
)

func evalCmd() *cobra.Command {
	var (
		inname string
		verb   string
		nl     bool
		echo   bool
	)
	cmd := &cobra.Command{
		Use:   "eval [expression ...]",
		Short: "evaluate expressions from arguments, a file, or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(inname, verb, nl, echo, args)
		},
	}
	cmd.Flags().StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	cmd.Flags().StringVar(&verb, "fmt", "%g", "result formatting string")
	cmd.Flags().BoolVarP(&nl, "lines", "n", false, "parse separate input lines as separate expressions")
	cmd.Flags().BoolVar(&echo, "ast", false, "print canonical parse trees")
	return cmd
}

func runEval(inname, verb string, nl, echo bool, args []string) error {
	var ins []io.RuneScanner
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return err
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range args {
		ins = append(ins, strings.NewReader(arg))
	}

	var opts []arith.ParseOption
	if nl {
		opts = append(opts, arith.StopOn('\n'))
	}
	var trees []arith.Operand
	for _, in := range ins {
		for {
			ok, err := more(in)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			a, err := arith.Parse(in, opts...)
			if err != nil {
				return err
			}
			trees = append(trees, a)
		}
	}

	verb += "\n"
	for _, a := range trees {
		if echo {
			fmt.Printf("%s : ", a.Render())
		}
		r, err := a.Eval()
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
	return nil
}

// more reports whether the scanner has input left, leaving the scanner
// positioned where it was.
func more(in io.RuneScanner) (bool, error) {
	if _, _, err := in.ReadRune(); err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	if err := in.UnreadRune(); err != nil {
		return false, err
	}
	return true, nil
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
