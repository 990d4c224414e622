package main

import (
	"time"

	"github.com/spf13/cobra"

	polydub "github.com/polydub/polydub-go"
)

var dubCmd = &cobra.Command{
	Use:   "dub",
	Short: "Start a dubbing job",
	Long:  `Submit media for dubbing into a target language. With --wait the command polls until the job finishes.`,
	RunE:  runDub,
}

func init() {
	dubCmd.Flags().String("source", "url", "Media source: youtube, url or file")
	dubCmd.Flags().String("url", "", "Media URL to dub")
	dubCmd.Flags().String("language", "", "Target language code, e.g. es-ES")
	dubCmd.Flags().Bool("no-watermark", false, "Disable the output watermark")
	dubCmd.Flags().Bool("wait", false, "Poll until the job reaches a terminal state")
	dubCmd.Flags().Duration("wait-timeout", 15*time.Minute, "Wall-clock budget for --wait")
	_ = dubCmd.MarkFlagRequired("url")
	_ = dubCmd.MarkFlagRequired("language")
}

func runDub(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	source, _ := cmd.Flags().GetString("source")
	mediaURL, _ := cmd.Flags().GetString("url")
	language, _ := cmd.Flags().GetString("language")
	noWatermark, _ := cmd.Flags().GetBool("no-watermark")

	opts := polydub.DubOptions{
		Source:   source,
		URL:      mediaURL,
		Language: language,
	}
	if noWatermark {
		disable := true
		opts.DisableWatermark = &disable
	}

	job, err := client.Dub(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if wait, _ := cmd.Flags().GetBool("wait"); wait {
		budget, _ := cmd.Flags().GetDuration("wait-timeout")
		job, err = client.WaitForJob(cmd.Context(), job.ID, &polydub.WaitOptions{Timeout: budget})
		if err != nil {
			return err
		}
	}
	return printOutput(cmd, job)
}
