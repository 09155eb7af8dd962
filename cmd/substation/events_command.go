package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"substation/internal/document"
	"substation/internal/tags"
)

func newEventsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var kind string

	cmd := &cobra.Command{
		Use:   "events FILE",
		Short: "List the timed events of a subtitle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.loadScript(args[0])
			if err != nil {
				return err
			}

			var rows [][]string
			for _, line := range doc.Events().Lines {
				if kind != "" && !strings.EqualFold(line.Tag, kind) {
					continue
				}
				rows = append(rows, []string{
					line.Tag,
					document.FormatTimecode(line.GetTimecode("Start")),
					document.FormatTimecode(line.GetTimecode("End")),
					line.GetString("Style"),
					tags.PlainText(line.GetString("Text")),
				})
				if limit > 0 && len(rows) >= limit {
					break
				}
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No events.")
				return nil
			}
			writeRows(cmd.OutOrStdout(),
				[]string{"Kind", "Start", "End", "Style", "Text"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft})
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many events (0 = all)")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Only show events of this kind (e.g. Dialogue)")
	return cmd
}
