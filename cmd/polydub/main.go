package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	polydub "github.com/polydub/polydub-go"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "polydub",
	Short: "Command-line client for the Polydub media-processing API",
	Long: `polydub drives the Polydub API from the terminal: start dubbing
jobs, clone voices, synthesize speech and inspect account usage.

Authentication comes from the POLYDUB_API_KEY environment variable
(POLYDUB_BASE_URL and POLYDUB_TIMEOUT_MS are honored as well).

Examples:
  polydub dub --source youtube --url https://youtube.com/watch?v=... --language es-ES --wait
  polydub jobs list --limit 10
  polydub jobs get <job-id>
  polydub voices list
  polydub usage`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(dubCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(voicesCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(meCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "Output format: json or yaml")
}

// newClient builds an SDK client from the environment, wiring a console
// logger whose level follows --verbose.
func newClient(cmd *cobra.Command) (*polydub.Client, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(level)

	return polydub.NewFromEnv(polydub.WithLogger(logger))
}

// printOutput renders a result in the requested format.
func printOutput(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("output")
	switch strings.ToLower(format) {
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}
