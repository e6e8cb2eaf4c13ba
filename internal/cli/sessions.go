package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"termctl/internal/auth"
	"termctl/internal/config"
	"termctl/internal/store"
)

func init() {
	sessionsCmd.AddCommand(sessionsLsCmd)
	sessionsCmd.AddCommand(sessionsRmCmd)
	rootCmd.AddCommand(sessionsCmd)
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage synced terminal sessions",
}

func requireIdentity() (string, error) {
	id, ok := auth.Current()
	if !ok {
		return "", fmt.Errorf("not signed in, run `termctl login <principal>` first")
	}
	return id.Principal, nil
}

var sessionsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List synced sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := requireIdentity()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		sessions, err := store.NewRemoteStore(config.SyncURL()).Load(ctx, owner)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("no synced sessions")
			return nil
		}
		for _, s := range sessions {
			fmt.Printf("%-36s  %-24s  %-20s  %s\n", s.ID, s.Name, s.WorkingDirectory, s.LastUsedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var sessionsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a synced session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := requireIdentity()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		if err := store.NewRemoteStore(config.SyncURL()).Delete(ctx, owner, args[0]); err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}
