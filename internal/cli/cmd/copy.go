package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipvault/clipvault/internal/pasteboard"
)

// newCopyCmd creates the copy command, which puts a recorded entry back on
// the clipboard.
func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <index>",
		Short: "Copy a history entry back to the clipboard",
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

			source := pasteboard.New(logger)
			if entry.IsImage() {
				err = source.WriteImage(entry.ImageData)
			} else {
				err = source.WriteText(entry.Text)
			}
			if err != nil {
				return fmt.Errorf("failed to write clipboard: %w", err)
			}

			fmt.Printf("Copied entry %s to clipboard\n", args[0])
			return nil
		},
	}
}
