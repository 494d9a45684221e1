package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsawler/vita/canon"
)

func planCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "plan <profile>",
		Short: "Print the section plan shared by rendering and scoring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.builder(args[0]).Plan()
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), plan, all)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include empty sections")
	return cmd
}

func printPlan(w io.Writer, plan canon.Plan, all bool) {
	h := plan.Header
	fmt.Fprintf(w, "%s\n", orNone(h.Name))
	if sub := h.Subtitle(); sub != "" {
		fmt.Fprintf(w, "  %s\n", sub)
	}
	if line := h.ContactLine(); line != "" {
		fmt.Fprintf(w, "  %s\n", line)
	}

	for _, s := range plan.Sections {
		if s.Empty {
			if all {
				fmt.Fprintf(w, "%s (empty)\n", s.Heading())
			}
			continue
		}
		fmt.Fprintf(w, "%s\n", s.Heading())
		for _, e := range s.Entries {
			head := e.Heading()
			if head == "" {
				head = e.BodyText()
			}
			if e.Meta != "" {
				head += " [" + e.Meta + "]"
			}
			fmt.Fprintf(w, "  - %s\n", head)
			if n := len(e.Bullets); n > 0 {
				fmt.Fprintf(w, "    %d bullet(s)\n", n)
			}
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "(no name)"
	}
	return s
}
