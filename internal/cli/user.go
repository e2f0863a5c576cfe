package cli

import (
	"context"
	"fmt"

	"github.com/kartiknayak1216/lenso-backend-service/pkg/client"
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(newUserSetupCmd())

	return cmd
}

func newUserSetupCmd() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "setup <user-id>",
		Short: "Provision a user with the free plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Users().Setup(context.Background(), client.SetupUserRequest{
				UserID: args[0],
				Email:  email,
				Name:   name,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			if result.Created {
				fmt.Printf("User %s created and initialized with free plan\n", args[0])
			} else {
				fmt.Printf("User %s already exists\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "user email (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
