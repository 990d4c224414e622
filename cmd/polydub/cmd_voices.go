package main

import (
	"fmt"

	"github.com/spf13/cobra"

	polydub "github.com/polydub/polydub-go"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "Manage voices and speech synthesis",
}

var voicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available voices",
	RunE:  runVoicesList,
}

var voicesGetCmd = &cobra.Command{
	Use:   "get <voice-id>",
	Short: "Fetch a single voice",
	Args:  cobra.ExactArgs(1),
	RunE:  runVoicesGet,
}

var voicesCloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Start a voice-cloning job",
	RunE:  runVoicesClone,
}

var voicesSayCmd = &cobra.Command{
	Use:   "say <text>",
	Short: "Start a text-to-speech job",
	Args:  cobra.ExactArgs(1),
	RunE:  runVoicesSay,
}

var voicesDeleteCmd = &cobra.Command{
	Use:   "delete <voice-id>",
	Short: "Delete a voice",
	Args:  cobra.ExactArgs(1),
	RunE:  runVoicesDelete,
}

func init() {
	voicesCmd.AddCommand(voicesListCmd)
	voicesCmd.AddCommand(voicesGetCmd)
	voicesCmd.AddCommand(voicesCloneCmd)
	voicesCmd.AddCommand(voicesSayCmd)
	voicesCmd.AddCommand(voicesDeleteCmd)

	voicesCloneCmd.Flags().String("name", "", "Name for the cloned voice")
	voicesCloneCmd.Flags().String("sample-url", "", "URL of the uploaded voice sample")
	voicesCloneCmd.Flags().String("description", "", "Voice description")
	_ = voicesCloneCmd.MarkFlagRequired("name")
	_ = voicesCloneCmd.MarkFlagRequired("sample-url")

	voicesSayCmd.Flags().String("voice", "", "Voice id to synthesize with")
	voicesSayCmd.Flags().String("format", "", "Audio output format (mp3, wav)")
	_ = voicesSayCmd.MarkFlagRequired("voice")
}

func runVoicesList(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	voices, err := client.ListVoices(cmd.Context())
	if err != nil {
		return err
	}
	return printOutput(cmd, voices)
}

func runVoicesGet(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	voice, err := client.GetVoice(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printOutput(cmd, voice)
}

func runVoicesClone(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")
	sampleURL, _ := cmd.Flags().GetString("sample-url")
	description, _ := cmd.Flags().GetString("description")

	job, err := client.CloneVoice(cmd.Context(), polydub.CloneVoiceOptions{
		Name:        name,
		Description: description,
		SourceURL:   sampleURL,
	})
	if err != nil {
		return err
	}
	return printOutput(cmd, job)
}

func runVoicesSay(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	voiceID, _ := cmd.Flags().GetString("voice")
	format, _ := cmd.Flags().GetString("format")

	job, err := client.Synthesize(cmd.Context(), polydub.SynthesizeOptions{
		Text:    args[0],
		VoiceID: voiceID,
		Format:  format,
	})
	if err != nil {
		return err
	}
	return printOutput(cmd, job)
}

func runVoicesDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	ok, err := client.DeleteVoice(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server did not acknowledge the deletion")
	}
	fmt.Println("Voice deleted")
	return nil
}
