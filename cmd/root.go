/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vipcxj/clamps/internal/cli"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

const longDesc = `clamps keeps a number inside a closed range [min, max].

Three policies decide what happens to a value outside the range:
reject refuses it, wrap reduces it modulo the range width and
saturate clamps it to the nearest bound. wrap and saturate also
apply arithmetic steps (--op) and re-apply the policy after each one.`

func newRootCmd(cfg cli.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clamps",
		Short:         "Evaluate numbers under rejecting, wrapping or saturating bounds",
		Long:          longDesc,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(
		newEvalCmd(cli.PolicyReject, cfg),
		newEvalCmd(cli.PolicyWrap, cfg),
		newEvalCmd(cli.PolicySaturate, cfg),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the clamps version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clamps %s\n", Version)
		},
	}
}

// Execute runs the command line in os.Args and returns the exit code.
// The command tree is rebuilt on every call so flag values never leak
// between in-process runs.
func Execute() int {
	cfg, err := cli.LoadConfig(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clamps: %v\n", err)
		return 1
	}
	rootCmd := newRootCmd(cfg)
	rootCmd.SetArgs(os.Args[1:])
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "clamps: %v\n", err)
		return 1
	}
	return 0
}
