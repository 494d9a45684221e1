package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func renderCmd(a *app) *cobra.Command {
	var (
		output   string
		format   string
		page     string
		compress bool
		goFont   bool
	)

	cmd := &cobra.Command{
		Use:   "render <profile>",
		Short: "Render a profile as PDF, HTML or plain text",
		Long: `Render a profile as PDF, HTML or plain text.

The output file defaults to the person's name with the format's extension
in the current directory. Use -o - to write to standard output.

Examples:
  vita render jane.yaml
  vita render jane.yaml --format html -o jane.html
  vita render jane.yaml --format txt -o -
  vita render jane.yaml --page letter --compress`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "pdf" && format != "html" && format != "txt" {
				return fmt.Errorf("unknown format %q (want pdf, html or txt)", format)
			}

			b := a.builder(args[0])
			if page != "" {
				b = b.PageSize(page)
			}
			if compress {
				b = b.Compress()
			}
			if goFont {
				b = b.GoFont()
			}
			if err := b.Err(); err != nil {
				return err
			}

			write := b.WritePDF
			switch format {
			case "html":
				write = b.WriteHTML
			case "txt":
				write = b.WriteText
			}

			if output == "-" {
				return write(cmd.OutOrStdout())
			}
			if output == "" {
				output = b.FileName("." + format)
			}
			if err := writeFile(output, write); err != nil {
				return err
			}

			a.logger.Info("rendered profile", "profile", args[0], "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <Name>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: pdf, html or txt")
	cmd.Flags().StringVar(&page, "page", "", "page size: a4 or letter (overrides --config)")
	cmd.Flags().BoolVar(&compress, "compress", false, "compress PDF content streams")
	cmd.Flags().BoolVar(&goFont, "gofont", false, "measure text with the Go fonts")
	return cmd
}

// writeFile creates path and hands it to write, removing the file again if
// rendering fails.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}
