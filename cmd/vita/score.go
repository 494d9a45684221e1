package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/vita/ats"
)

// scored is one profile's report as printed by the score command
type scored struct {
	Profile string     `json:"profile"`
	Report  ats.Report `json:"report"`
}

func scoreCmd(a *app) *cobra.Command {
	var (
		asJSON     bool
		transcript bool
	)

	cmd := &cobra.Command{
		Use:   "score <profile>...",
		Short: "Score profiles for screener compatibility",
		Long: `Score one or more profiles against the compatibility checklist.

Profiles are scored concurrently; results are printed in argument order.

Examples:
  vita score jane.yaml
  vita score team/*.yaml --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]scored, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					report, err := a.builder(path).Score()
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					results[i] = scored{Profile: path, Report: report}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for i, r := range results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printReport(out, r, transcript)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print reports as JSON")
	cmd.Flags().BoolVar(&transcript, "transcript", false, "include the extracted transcript")
	return cmd
}

func printReport(w io.Writer, s scored, withTranscript bool) {
	r := s.Report
	readable := "not ATS readable"
	if r.ATSReadable {
		readable = "ATS readable"
	}
	fmt.Fprintf(w, "%s: %d/100, %s (%s)\n", s.Profile, r.Score, r.Summary, readable)

	for _, c := range r.Checks {
		mark := "✗"
		if c.Passed {
			mark = "✓"
		}
		fmt.Fprintf(w, "  %s %s: %s\n", mark, c.Label, c.Detail)
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(w, "  Recommendations:")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(w, "    - %s\n", rec)
		}
	}

	if withTranscript && r.Transcript != "" {
		fmt.Fprintln(w, "  Transcript:")
		fmt.Fprintln(w, r.Transcript)
	}
}
