package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"termctl/internal/auth"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login <principal>",
	Short: "Sign in to enable session sync",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := auth.Login(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s\n", id.Principal)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and stop syncing sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.Logout(); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	},
}
