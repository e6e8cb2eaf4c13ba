package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"termctl/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "termctl",
	Short: "termctl – terminal session manager",
	Long:  "termctl is a multi-tab terminal UI that executes commands through a local bridge and syncs sessions when signed in.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
