package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"smart-task-manager/internal/parser"
	"smart-task-manager/pkg/datemath"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// options are the flags shared by every parsing command.
type options struct {
	now    string
	tz     string
	format string
	clock  func() time.Time
}

func newRootCommand(clock func() time.Time) *cobra.Command {
	opts := &options{clock: clock}

	cmd := &cobra.Command{
		Use:   "taskparse",
		Short: "Turn natural-language task text into structured tasks",
		Long: `taskparse runs the deterministic task parser from the command line.

It reads a single task description ("Finish landing page Aman by 11pm 20th June")
or a whole meeting transcript and prints the tasks it finds as JSON or YAML.
Relative dates are resolved against --now in the --tz timezone.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.now, "now", "", "Reference time in RFC3339 (default: current time)")
	cmd.PersistentFlags().StringVar(&opts.tz, "tz", "UTC", "IANA timezone used to resolve dates")
	cmd.PersistentFlags().StringVar(&opts.format, "format", formatJSON, "Output format: json or yaml")

	cmd.AddCommand(newParseCommand(opts))
	cmd.AddCommand(newMeetingCommand(opts))
	cmd.AddCommand(newCalendarAuthCommand())

	return cmd
}

// engine builds the parser and captures the reference time once for the command.
func (o *options) engine() (*parser.Engine, time.Time, error) {
	if o.format != formatJSON && o.format != formatYAML {
		return nil, time.Time{}, fmt.Errorf("unsupported --format %q (want %s or %s)", o.format, formatJSON, formatYAML)
	}

	dates, err := datemath.NewParser(o.tz)
	if err != nil {
		return nil, time.Time{}, err
	}

	now := o.clock()
	if o.now != "" {
		now, err = time.Parse(time.RFC3339, o.now)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("invalid --now: %w", err)
		}
	}
	return parser.New(dates), now, nil
}

func (o *options) write(out io.Writer, v any) error {
	switch o.format {
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
