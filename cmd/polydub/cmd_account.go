package main

import (
	"github.com/spf13/cobra"

	polydub "github.com/polydub/polydub-go"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show billing usage for the current period",
	RunE:  runUsage,
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated account profile",
	RunE:  runMe,
}

func init() {
	usageCmd.Flags().Bool("history", false, "Show usage history instead of the current period")
	usageCmd.Flags().Int("limit", 20, "Page size for --history")
	meCmd.Flags().Bool("rate-limit", false, "Show the account's rate-limit budget")
}

func runUsage(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	if history, _ := cmd.Flags().GetBool("history"); history {
		limit, _ := cmd.Flags().GetInt("limit")
		page, err := client.UsageHistory(cmd.Context(), &polydub.UsageHistoryOptions{Limit: limit})
		if err != nil {
			return err
		}
		return printOutput(cmd, page)
	}

	usage, err := client.Usage(cmd.Context())
	if err != nil {
		return err
	}
	return printOutput(cmd, usage)
}

func runMe(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	if rl, _ := cmd.Flags().GetBool("rate-limit"); rl {
		info, err := client.RateLimit(cmd.Context())
		if err != nil {
			return err
		}
		return printOutput(cmd, info)
	}

	user, err := client.Me(cmd.Context())
	if err != nil {
		return err
	}
	return printOutput(cmd, user)
}
