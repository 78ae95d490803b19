// Package cli defines Cobra command definitions for the closingportal CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wctsmart/closingportal/internal/tui"
	"github.com/wctsmart/closingportal/internal/tui/app"
)

var (
	projectDir string
	noLog      bool
	version    = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "closingportal",
	Short: "Title and escrow closing portal",
	Long: `closingportal walks a buyer through a real-estate closing, from the
opened file to the recorded deed, and gives the buyer's agent a read-only
view of the same transaction.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Without a terminal, print a walkthrough of the initial state instead.
		if !tui.IsTTY() {
			return runWalkthroughCmd(cmd, nil)
		}

		rt, err := openRuntime(projectDir, noLog)
		if err != nil {
			return err
		}

		if _, err := tui.Run(app.New(rt.cfg, rt.controller)); err != nil {
			_ = rt.close()
			return fmt.Errorf("running portal: %w", err)
		}
		return rt.close()
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", "", "Project directory holding .closingportal/ (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&noLog, "no-log", false, "Do not append session events to the log")

	rootCmd.AddCommand(walkthroughCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(logCmd)
}
