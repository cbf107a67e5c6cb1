// Package main implements kbproof, a CLI demo over the backward-chaining
// core: a thin collaborator that feeds text clauses and a text goal to
// internal/prover and prints back its verdict, solutions, and trace.
//
// File index:
//   - main.go             - entry point, rootCmd, global flags, logger lifecycle
//   - cmd_parse_check.go  - parse-check subcommand
//   - cmd_prove.go        - prove subcommand
//   - cmd_solve.go        - solve subcommand
//   - cmd_query.go        - query subcommand (retrieval + prove pipeline)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/config"
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/logging"
)

var (
	verbose    bool
	configPath string
	cfg        *config.Config
	consoleLog *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kbproof",
	Short: "kbproof - backward-chaining inference over a small Horn-clause KB",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		if verbose {
			cfg.Logging.Debug = true
		}

		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		built, err := zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initializing console logger: %w", err)
		}
		consoleLog = built

		if err := cfg.InitLogging(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if consoleLog != nil {
			_ = consoleLog.Sync()
		}
		logging.CloseAll()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "kbproof.yaml", "path to a YAML config file")

	rootCmd.AddCommand(parseCheckCmd, proveCmd, solveCmd, queryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// cliLogger returns the categorized file logger for CLI-level
// diagnostics, distinct from the zap console logger built in
// PersistentPreRunE. Human-facing output is printed to stdout with fmt.
func cliLogger() *logging.Logger {
	return logging.Get(logging.CategoryCLI)
}
