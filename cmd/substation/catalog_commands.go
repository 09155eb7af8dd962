package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"substation/internal/catalog"
	"substation/internal/config"
	"substation/internal/document"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Maintain the local script index",
	}

	catalogCmd.AddCommand(newCatalogScanCommand(ctx))
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))
	catalogCmd.AddCommand(newCatalogRemoveCommand(ctx))
	catalogCmd.AddCommand(newCatalogClearCommand(ctx))

	return catalogCmd
}

func withStore(ctx *commandContext, fn func(*catalog.Store, *config.Config, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}
		store, err := catalog.Open(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		return fn(store, cfg, cmd, args)
	}
}

func newCatalogScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan DIR",
		Short: "Index every subtitle script under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := catalog.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := store.Scan(cmd.Context(), cfg, args[0], ctx.inputEncoding(), ctx.ensureLogger())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d script(s).\n", result.Indexed)
			for _, skipped := range result.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped %s (parse failed)\n", skipped)
			}
			return nil
		},
	}
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List indexed scripts",
		RunE: withStore(ctx, func(store *catalog.Store, _ *config.Config, cmd *cobra.Command, args []string) error {
			items, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty. Run 'substation catalog scan DIR' first.")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				resolution := ""
				if item.PlayResX > 0 || item.PlayResY > 0 {
					resolution = fmt.Sprintf("%dx%d", item.PlayResX, item.PlayResY)
				}
				rows = append(rows, []string{
					item.Title,
					resolution,
					strconv.Itoa(item.StyleCount),
					strconv.Itoa(item.EventCount),
					document.FormatTimecode(item.LastEvent),
					truncate(item.FirstDialogue, 40),
					filepath.Base(item.Path),
				})
			}
			writeRows(cmd.OutOrStdout(),
				[]string{"Title", "Resolution", "Styles", "Events", "Length", "First Line", "File"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft})
			return nil
		}),
	}
}

// truncate shortens long dialogue text for table display.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog totals",
		RunE: withStore(ctx, func(store *catalog.Store, _ *config.Config, cmd *cobra.Command, args []string) error {
			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scripts: %d\n", stats.Scripts)
			fmt.Fprintf(out, "Styles:  %d\n", stats.Styles)
			fmt.Fprintf(out, "Events:  %d\n", stats.Events)
			return nil
		}),
	}
}

func newCatalogRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PATH",
		Short: "Remove one script from the index",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(ctx, func(store *catalog.Store, _ *config.Config, cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			removed, err := store.Remove(cmd.Context(), path)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Not in catalog: %s\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", path)
			return nil
		}),
	}
}

func newCatalogClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry from the index",
		RunE: withStore(ctx, func(store *catalog.Store, _ *config.Config, cmd *cobra.Command, args []string) error {
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog cleared.")
			return nil
		}),
	}
}
