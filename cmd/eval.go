/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/clamps/internal/cli"
)

var shortDescs = map[cli.Policy]string{
	cli.PolicyReject:   "Check that a value lies inside the range",
	cli.PolicyWrap:     "Wrap a value into the range modulo its width",
	cli.PolicySaturate: "Clamp a value to the nearest bound of the range",
}

// newEvalCmd represents the reject, wrap and saturate commands
func newEvalCmd(policy cli.Policy, cfg cli.Config) *cobra.Command {
	opts := cli.Options{Policy: policy}
	var shell string
	var verbose bool

	evalCmd := &cobra.Command{
		Use:   policy.String() + " --range RANGE [flags] [--] VALUE",
		Short: shortDescs[policy],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shellType, err := cli.ShellTypeString(shell)
			if err != nil {
				return fmt.Errorf("--shell: want one of %s", strings.Join(cli.ShellTypeStrings(), ", "))
			}
			opts.Shell = shellType
			opts.Value = args[0]
			log := cli.NewLogger(cmd.ErrOrStderr(), verbose)
			out, err := cli.Run(opts, log)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	addEvalFlags(evalCmd.Flags(), &opts, cfg, &shell, &verbose)
	_ = evalCmd.MarkFlagRequired("range")
	return evalCmd
}

func addEvalFlags(flags *pflag.FlagSet, opts *cli.Options, cfg cli.Config, shell *string, verbose *bool) {
	flags.StringVarP(&opts.Range, "range", "r", "", "closed range, e.g. [0,9], (0,10), >=5 or =3")
	flags.StringVarP(&opts.Type, "type", "t", cfg.Type, "numeric type: "+strings.Join(cli.Types(), ", "))
	if opts.Policy != cli.PolicyReject {
		flags.StringArrayVarP(&opts.Ops, "op", "o", nil, "arithmetic step +N, -N, *N, /N or %N; repeatable, comma separated")
	}
	flags.StringVar(&opts.Rebind, "rebind", "", "range to rebind to after the arithmetic steps")
	flags.StringVarP(&opts.Export, "export", "e", "", "print the result as a shell assignment to this variable")
	flags.StringVar(shell, "shell", cfg.Shell, "shell of --export: "+strings.Join(cli.ShellTypeStrings(), ", "))
	flags.BoolVarP(verbose, "verbose", "v", cfg.Verbose, "log every step to stderr")
}
