package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kartiknayak1216/lenso-backend-service/pkg/client"
	"github.com/spf13/cobra"
)

func newCreditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Check and deduct credits",
	}

	cmd.AddCommand(newCreditStatusCmd())
	cmd.AddCommand(newCreditDeductCmd())

	return cmd
}

func newCreditStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <user-id>",
		Short: "Show remaining credits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := apiClient.Credits().Status(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(status)
			}

			if status.HasCredits {
				fmt.Printf("Credits available: %d\n", status.CreditsLeft)
			} else {
				fmt.Println("No available credits")
			}
			return nil
		},
	}
}

func newCreditDeductCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deduct <user-id> <amount>",
		Short: "Deduct credits from a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			result, err := apiClient.Credits().Deduct(context.Background(), args[0], amount)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && apiErr.IsInsufficientCredits() {
					if left, ok := apiErr.CreditsLeft(); ok {
						return fmt.Errorf("insufficient credits: %d left", left)
					}
				}
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			fmt.Printf("Deducted %d credits, %d left\n", amount, result.CreditsLeft)
			return nil
		},
	}
}
