package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"substation/internal/document"
)

func newStylesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "styles FILE",
		Short: "List the styles defined in a subtitle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.loadScript(args[0])
			if err != nil {
				return err
			}

			var rows [][]string
			appendStyles := func(section *document.RecordSection) {
				if section == nil {
					return
				}
				for _, line := range section.Lines {
					rows = append(rows, []string{
						line.GetString("Name"),
						line.GetString("Fontname"),
						fmt.Sprintf("%g", line.GetFloat("Fontsize")),
						line.GetColor("PrimaryColour").String(),
						boolMark(line.GetBool("Bold")),
						boolMark(line.GetBool("Italic")),
					})
				}
			}
			appendStyles(doc.Styles())
			if section, ok := doc.Section(document.StyleSSAHeader); ok {
				if records, isRecords := section.(*document.RecordSection); isRecords {
					appendStyles(records)
				}
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No styles defined.")
				return nil
			}
			writeRows(cmd.OutOrStdout(),
				[]string{"Name", "Font", "Size", "Primary", "Bold", "Italic"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft})
			return nil
		},
	}
}

func boolMark(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
