package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipvault/clipvault/internal/engine"
	"github.com/clipvault/clipvault/internal/types"
	"github.com/clipvault/clipvault/pkg/format"
)

// newHistoryCmd creates the history command with all subcommands.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage clipboard history",
		Long: `Inspect and manage clipboard history:
  • List recorded entries with filtering
  • Show a single entry in full
  • Delete entries or clear the whole history`,
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())
	cmd.AddCommand(newHistoryDeleteCmd())
	cmd.AddCommand(newHistoryClearCmd())

	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var (
		limit      int
		kindFilter string
		query      string
		compact    bool
		noIcons    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clipboard history",
		Long: `List clipboard history entries, newest first.

Examples:
  clipvault history list                 # Show the 20 most recent entries
  clipvault history list -n 0            # Show everything
  clipvault history list --type url      # Only URL entries
  clipvault history list --query readme  # Substring search on content`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Load()
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			filter := engine.Filter{
				Kind:  types.Kind(kindFilter),
				Query: query,
			}
			entries = filter.Apply(entries)

			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			opts := format.DefaultOptions()
			if compact {
				opts = format.CompactOptions()
			}
			opts.UseColors = opts.UseColors && !noColors
			opts.UseIcons = opts.UseIcons && !noIcons

			fmt.Println(format.New(opts).FormatEntryList(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to display (0 = all)")
	cmd.Flags().StringVar(&kindFilter, "type", "", "only show entries of this kind (text|url|email|image)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive substring match on content")
	cmd.Flags().BoolVar(&compact, "compact", false, "compact single-line format")
	cmd.Flags().BoolVar(&noIcons, "no-icons", false, "disable icons")

	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show a single history entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Load()
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			entry, err := entryAtIndex(entries, args[0])
			if err != nil {
				return err
			}

			opts := format.DefaultOptions()
			opts.UseColors = !noColors
			opts.MaxWidth = 0
			fmt.Println(format.New(opts).FormatEntry(entry))
			if !entry.IsImage() {
				fmt.Println()
				fmt.Println(entry.Text)
			}
			return nil
		},
	}
}

func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete a history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Load()
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			entry, err := entryAtIndex(entries, args[0])
			if err != nil {
				return err
			}

			kept := entries[:0]
			for _, candidate := range entries {
				if candidate.ID == entry.ID {
					continue
				}
				kept = append(kept, candidate)
			}

			if err := store.Save(kept); err != nil {
				return fmt.Errorf("failed to save history: %w", err)
			}

			fmt.Printf("Deleted entry %s\n", args[0])
			return nil
		},
	}
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(nil); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}

			fmt.Println("History cleared")
			return nil
		},
	}
}
