package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newMeetingCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "meeting [file|-]",
		Short: "Extract assigned tasks from a meeting transcript",
		Long: `Extract every assigned action item from a meeting transcript.

The transcript is read from the given file, or from stdin when the argument
is "-" or omitted. Tasks are printed in transcript order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, err := readTranscript(cmd, args)
			if err != nil {
				return err
			}

			engine, now, err := opts.engine()
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), engine.ExtractTasks(transcript, now))
		},
	}
}

func readTranscript(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading transcript: %w", err)
	}
	return string(data), nil
}
