package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"substation/internal/tags"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var keepBlank bool

	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Print the plain dialogue text of a subtitle file",
		Long: "Print the dialogue text of a subtitle file with override tags\n" +
			"removed and vector drawing spans dropped entirely.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.loadScript(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range doc.Events().Lines {
				if !strings.EqualFold(line.Tag, "Dialogue") {
					continue
				}
				text := tags.PlainText(line.GetString("Text"))
				text = strings.ReplaceAll(text, `\N`, "\n")
				text = strings.ReplaceAll(text, `\n`, "\n")
				text = strings.ReplaceAll(text, `\h`, " ")
				if !keepBlank && strings.TrimSpace(text) == "" {
					continue
				}
				fmt.Fprintln(out, text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepBlank, "keep-blank", false, "Keep events whose text is empty after stripping")
	return cmd
}
