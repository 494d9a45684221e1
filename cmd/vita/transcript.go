package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func transcriptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript <profile>",
		Short: "Print the text a screener would extract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.builder(args[0]).Transcript()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
