package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard <user-id>",
		Short: "Show usage dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := apiClient.Reports().Dashboard(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(view)
			}

			fmt.Printf("Plan:                %s (%s)\n", view.Plan, view.Period)
			if view.IsDaily && view.UsedToday != nil && view.RemainingToday != nil {
				fmt.Printf("Used today:          %d\n", *view.UsedToday)
				fmt.Printf("Remaining today:     %d\n", *view.RemainingToday)
			}
			fmt.Printf("Used this month:     %d\n", view.UsedThisMonth)
			fmt.Printf("Remaining:           %d of %d\n", view.RemainingThisMonth, view.TotalCredits)
			fmt.Printf("Average per day:     %.1f\n", view.AvgPerDay)
			fmt.Printf("Percent used:        %.1f%%\n", view.PercentUsed)
			return nil
		},
	}
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <user-id>",
		Short: "Show plan overview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := apiClient.Reports().PlanOverview(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(view)
			}

			fmt.Printf("Plan:           %s\n", view.Name)
			fmt.Printf("Status:         %s\n", formatStatus(view.Status))
			fmt.Printf("Billing cycle:  %s\n", view.BillingCycle)
			fmt.Printf("Price:          %.2f\n", view.Price)
			if view.IsDaily {
				fmt.Printf("Daily credits:  %d\n", view.DailyCredits)
			} else {
				fmt.Printf("Credits:        %d\n", view.Credits)
			}
			fmt.Printf("Period ends:    %s\n", view.CurrentPeriodEnd)
			return nil
		},
	}
}

func newBillingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Billing history and plan catalog",
	}

	cmd.AddCommand(newBillingHistoryCmd())
	cmd.AddCommand(newBillingPlansCmd())

	return cmd
}

func newBillingHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <user-id>",
		Short: "Show billing history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := apiClient.Reports().BillingHistory(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(entries)
			}

			if len(entries) == 0 {
				fmt.Println("No billing history")
				return nil
			}

			table := NewTable("INVOICE", "AMOUNT", "CURRENCY", "PLAN", "CYCLE", "STATUS", "PAID AT")
			for _, e := range entries {
				table.AddRow(
					e.InvoiceID,
					strconv.FormatFloat(e.Amount, 'f', 2, 64),
					e.Currency,
					e.Plan,
					e.Cycle,
					e.Status,
					e.PaidAt,
				)
			}
			table.Render()
			return nil
		},
	}
}

func newBillingPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List available plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := apiClient.Billing().Plans(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(plans)
			}

			table := NewTable("ID", "NAME", "PRICE", "CREDITS", "INTERVAL")
			for _, p := range plans {
				credits := strconv.FormatInt(p.Credits, 10)
				if p.DailyCredits > 0 {
					credits = strconv.FormatInt(p.DailyCredits, 10) + "/day"
				}
				table.AddRow(
					p.ID,
					p.Name,
					strconv.FormatFloat(p.Price, 'f', 2, 64),
					credits,
					p.Interval,
				)
			}
			table.Render()
			return nil
		},
	}
}
