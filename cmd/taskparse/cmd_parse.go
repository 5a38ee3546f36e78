package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse a single task description",
		Example: `  taskparse parse "Call client tomorrow 9am P1"
  taskparse parse --now 2024-06-10T09:00:00Z --format yaml Finish landing page Aman by 11pm 20th June`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return errors.New("task text is empty")
			}

			engine, now, err := opts.engine()
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), engine.ParseTask(text, now))
		},
	}
}
