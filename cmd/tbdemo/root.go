package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eluv-io/traceback-go"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tbdemo",
		Short:         "Traceback demos",
		Long:          "tbdemo runs small programs that fail on purpose and print the traceback of the failure.",
		Version:       traceback.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("shared", false, "use shared records declared once per kind instead of fresh records")

	rootCmd.AddCommand(newDivisionCommand())
	rootCmd.AddCommand(newChainCommand())
	return rootCmd
}

func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDivisionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "division",
		Short: "Compute (a+b)/c and print the traceback if it fails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _ := cmd.Flags().GetInt("a")
			b, _ := cmd.Flags().GetInt("b")
			c, _ := cmd.Flags().GetInt("c")
			shared, _ := cmd.Flags().GetBool("shared")

			res := 0
			var o traceback.Outcome
			if shared {
				o = sharedComplexOperation(a, b, c, &res)
			} else {
				o = complexOperation(a, b, c, &res)
			}
			if !o.Failed() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "(%d+%d)/%d = %d\n", a, b, c, res)
				return err
			}
			return traceback.Fprint(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().Int("a", 1, "first summand")
	cmd.Flags().Int("b", 2, "second summand")
	cmd.Flags().Int("c", 0, "divisor")
	return cmd
}

func newChainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chain",
		Short: "Fail in function A, wrap the failure in function B and print the traceback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shared, _ := cmd.Flags().GetBool("shared")

			var o traceback.Outcome
			if shared {
				o = sharedFunctionB()
			} else {
				o = functionB()
			}
			return traceback.Fprint(cmd.OutOrStdout(), o)
		},
	}
}
