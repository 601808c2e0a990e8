// SPDX-License-Identifier: MIT

// Command uncertainify turns CSV feature vectors into uncertain objects
// and reports their means, drawn samples or sample statistics.
//
//	uncertainify transform --input data.csv --samples 5 --seed 7
//	uncertainify summary --config settings.yaml --samples 1000 < data.csv
package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

const progName = "uncertainify"

var log = logging.MustGetLogger(progName)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	density    string
	seed       uint64
	blur       bool
	input      string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}

	root := &cobra.Command{
		Use:           progName,
		Short:         "Uncertainify feature vectors and sample the resulting objects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return startLogging(cmd, rf.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "YAML settings file (defaults apply when empty)")
	pf.StringVar(&rf.density, "density", "", "density kind: gaussian or uniform (overrides config)")
	pf.Uint64Var(&rf.seed, "seed", 0, "seed for generator and objects (overrides config)")
	pf.BoolVar(&rf.blur, "blur", true, "perturb input coordinates (overrides config)")
	pf.StringVar(&rf.input, "input", "-", "CSV input file, - for stdin")
	pf.StringVar(&rf.logLevel, "log-level", "WARNING", "log level: DEBUG, INFO, NOTICE, WARNING, ERROR")

	root.AddCommand(
		newTransformCmd(rf),
		newSummaryCmd(rf),
	)

	return root
}

func startLogging(cmd *cobra.Command, level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	backend := logging.NewLogBackend(cmd.ErrOrStderr(), progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{shortfunc:-16s} | %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)

	return nil
}
