package main

import (
	"errors"
	"fmt"

	"github.com/quailyquaily/datelog/internal/clifmt"
	"github.com/quailyquaily/datelog/journal"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage the tag vocabulary",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available tags",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, _, err := openStores(ctx)
		if err != nil {
			return err
		}
		labels, err := store.ListTags(ctx)
		if err != nil {
			return err
		}
		for _, l := range labels {
			fmt.Println(l)
		}
		return nil
	},
}

var tagsAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Add a tag to the vocabulary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, _, err := openStores(ctx)
		if err != nil {
			return err
		}
		if err := store.AddTag(ctx, args[0]); err != nil {
			if errors.Is(err, journal.ErrDuplicateTag) {
				// Non-fatal: report and leave the catalog alone.
				fmt.Println(clifmt.Warn("Tag already exists."))
				return nil
			}
			return err
		}
		fmt.Println(clifmt.Success("Tag added."))
		return nil
	},
}

var tagsRmCmd = &cobra.Command{
	Use:   "rm <label>",
	Short: "Remove a tag from the vocabulary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, _, err := openStores(ctx)
		if err != nil {
			return err
		}
		if err := store.DeleteTag(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println(clifmt.Success("Tag removed."))
		return nil
	},
}

func init() {
	tagsCmd.AddCommand(tagsListCmd, tagsAddCmd, tagsRmCmd)
	rootCmd.AddCommand(tagsCmd)
}
