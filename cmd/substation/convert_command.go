package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"substation/internal/scriptio"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var outputEncoding string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode a subtitle file through a parse/dump round trip",
		Long: "Parse a subtitle file and write it back in canonical form.\n" +
			"Unknown sections, line kinds, and fields survive the round trip.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.loadScript(args[0])
			if err != nil {
				return err
			}

			encoding := strings.TrimSpace(outputEncoding)
			if encoding == "" {
				encoding = ctx.outputEncoding()
			}

			if outputPath == "" {
				// Without a target, emit plain text on stdout.
				_, err := doc.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := scriptio.Save(outputPath, doc, encoding); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", outputPath, encoding)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this path instead of stdout")
	cmd.Flags().StringVar(&outputEncoding, "to", "", "Output encoding (default from config)")
	return cmd
}
