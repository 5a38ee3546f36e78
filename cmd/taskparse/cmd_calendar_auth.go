package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"smart-task-manager/pkg/gcalendar"
)

func newCalendarAuthCommand() *cobra.Command {
	var tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth [credentials.json]",
		Short: "Authorize Google Calendar access and save token.json",
		Long: `Run once to authorize calendar sync with OAuth Desktop App credentials.

It prints an authorization URL; open it, sign in, then paste the code back.
The resulting token is written to --token, where the API server looks for it.
Service Account credentials do not need this step.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("reading credentials file %q: %w", credsPath, err)
			}
			cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
			if err != nil {
				return fmt.Errorf("parsing credentials (expected OAuth Desktop App JSON): %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("reading authorization code: %w", err)
			}

			tok, err := cfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchanging authorization code: %w", err)
			}

			f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("creating %s: %w", tokenPath, err)
			}
			defer f.Close()

			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("writing %s: %w", tokenPath, err)
			}

			fmt.Fprintf(out, "\nToken saved to %s. Restart the API server to enable calendar sync.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenPath, "Where to write the OAuth token (google_calendar.token_path)")
	return cmd
}
