package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show the script info fields of a subtitle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.loadScript(args[0])
			if err != nil {
				return err
			}

			info := doc.Info()
			rows := make([][]string, 0, info.Len())
			for _, key := range info.Keys() {
				rows = append(rows, []string{key, info.GetString(key)})
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No script info fields.")
				return nil
			}
			writeRows(cmd.OutOrStdout(), []string{"Field", "Value"}, rows, nil)
			return nil
		},
	}
}
