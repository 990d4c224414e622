package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	polydub "github.com/polydub/polydub-go"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect and manage jobs",
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <job-id>",
	Short: "Fetch a single job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsGet,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	RunE:  runJobsList,
}

var jobsWaitCmd = &cobra.Command{
	Use:   "wait <job-id>",
	Short: "Poll a job until it reaches a terminal state",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsWait,
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <job-id> [job-id...]",
	Short: "Delete one or more jobs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJobsDelete,
}

func init() {
	jobsCmd.AddCommand(jobsGetCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsWaitCmd)
	jobsCmd.AddCommand(jobsDeleteCmd)

	jobsListCmd.Flags().Int("offset", 0, "Listing offset")
	jobsListCmd.Flags().Int("limit", 20, "Page size")
	jobsListCmd.Flags().String("type", "", "Filter by job type (dub, clone, synthesize)")

	jobsWaitCmd.Flags().Duration("interval", 2*time.Second, "Poll interval")
	jobsWaitCmd.Flags().Duration("timeout", 15*time.Minute, "Wall-clock budget, 0 for unbounded")
}

func runJobsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	job, err := client.GetJob(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printOutput(cmd, job)
}

func runJobsList(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	offset, _ := cmd.Flags().GetInt("offset")
	limit, _ := cmd.Flags().GetInt("limit")
	jobType, _ := cmd.Flags().GetString("type")

	page, err := client.ListJobs(cmd.Context(), &polydub.ListJobsOptions{
		Offset: offset,
		Limit:  limit,
		Type:   jobType,
	})
	if err != nil {
		return err
	}
	return printOutput(cmd, page)
}

func runJobsWait(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	interval, _ := cmd.Flags().GetDuration("interval")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	job, err := client.WaitForJob(cmd.Context(), args[0], &polydub.WaitOptions{
		PollInterval: interval,
		Timeout:      timeout,
	})
	if err != nil {
		return err
	}
	return printOutput(cmd, job)
}

func runJobsDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	ok, err := client.DeleteJobs(cmd.Context(), args)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server did not acknowledge the deletion")
	}
	fmt.Printf("Deleted %d job(s)\n", len(args))
	return nil
}
