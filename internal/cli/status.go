package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			health, err := apiClient.Health(ctx)
			if err != nil {
				return fmt.Errorf("server unreachable: %w", err)
			}

			ready, err := apiClient.Ready(ctx)
			if err != nil {
				fmt.Printf("Server:    %s\n", formatStatus(health.Status))
				fmt.Printf("Database:  %s\n", formatStatus("failed"))
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(map[string]string{
					"server":   health.Status,
					"database": ready.Database,
				})
			}

			fmt.Printf("Server:    %s\n", formatStatus(health.Status))
			fmt.Printf("Database:  %s\n", formatStatus(ready.Database))
			return nil
		},
	}
}
