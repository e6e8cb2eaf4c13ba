package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"termctl/internal/auth"
	"termctl/internal/bridge"
	"termctl/internal/config"
	"termctl/internal/store"
	"termctl/internal/system"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check bridge and sync connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		br := bridge.New(config.BridgeURL())
		if br.Health(cmd.Context()) {
			fmt.Printf("bridge    ok        %s\n", br.BaseURL())
		} else {
			fmt.Printf("bridge    down      %s\n", br.BaseURL())
			system.Logger.Warn("bridge unreachable, commands will not execute", "url", br.BaseURL())
		}

		id, ok := auth.Current()
		if !ok {
			fmt.Println("identity  anonymous (local cache only)")
			return nil
		}
		fmt.Printf("identity  %s\n", id.Principal)

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		sessions, err := store.NewRemoteStore(config.SyncURL()).Load(ctx, id.Principal)
		if err != nil {
			fmt.Printf("sync      down      %s\n", config.SyncURL())
			system.Logger.Warn("session store unreachable", "url", config.SyncURL(), "err", err)
			return nil
		}
		fmt.Printf("sync      ok        %s (%d sessions)\n", config.SyncURL(), len(sessions))
		return nil
	},
}
