package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scribe/internal/api"
	"scribe/internal/logging"
	"scribe/internal/services"
	"scribe/internal/services/youtube"
	"scribe/internal/transcript"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var languages []string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a transcript once and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			clientCfg := youtube.ConfigFrom(cfg)
			if len(languages) > 0 {
				clientCfg.Languages = languages
			}
			if timeout > 0 {
				clientCfg.Timeout = timeout
			}
			client, err := youtube.New(clientCfg)
			if err != nil {
				return fmt.Errorf("configure youtube client: %w", err)
			}

			service := transcript.NewService(client, logging.NewNop())
			resp, err := service.Handle(cmd.Context(), transcript.Request{URL: args[0]})
			if err != nil {
				return fmt.Errorf("%s: %s", services.Kind(err), services.Detail(err))
			}

			if jsonOut {
				return writeJSON(cmd, api.FromResponse(resp))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderFetchSummary(resp, shouldColorize(out)))
			if len(resp.Segments) > 0 {
				fmt.Fprintln(out, renderTranscriptTable(resp.Segments))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the transcript as JSON")
	cmd.Flags().StringSliceVar(&languages, "language", nil, "Preferred caption languages in priority order")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Upstream request timeout")
	return cmd
}

func renderFetchSummary(resp transcript.Response, colorize bool) string {
	label := "OK"
	if colorize {
		label = ansiGreen + label + ansiReset
	}
	noun := "segments"
	if len(resp.Segments) == 1 {
		noun = "segment"
	}
	return fmt.Sprintf("[%s] video %s: %d %s", label, resp.VideoID, len(resp.Segments), noun)
}
