package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/quailyquaily/datelog/internal/clifmt"
	"github.com/quailyquaily/datelog/journal"
	"github.com/spf13/cobra"
)

var (
	logDate    string
	logPartner string
	logSocial  string
	logNotes   string
	logTags    []string
	logMedia   []string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a new date entry",
	RunE:  runLog,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries, newest date first",
	RunE:  runList,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries by keyword",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var showCmd = &cobra.Command{
	Use:   "show <entry-id>",
	Short: "Show one entry with its media",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", time.Now().Format("2006-01-02"), "date of the entry (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logPartner, "partner", "", "partner name (required)")
	logCmd.Flags().StringVar(&logSocial, "social", "", "social media handle")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "free-text notes")
	logCmd.Flags().StringArrayVar(&logTags, "tag", nil, "tag label (repeatable)")
	logCmd.Flags().StringArrayVar(&logMedia, "media", nil, "path to a photo/video/audio file (repeatable)")

	rootCmd.AddCommand(logCmd, listCmd, searchCmd, showCmd)
}

func runLog(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, _, err := openStores(ctx)
	if err != nil {
		return err
	}

	if logPartner == "" {
		return journal.ErrPartnerRequired
	}

	staged, err := journal.StageMediaFiles(logMedia, mediaDirFromViper())
	if err != nil {
		return err
	}

	id, err := store.AddEntry(ctx, journal.NewEntry{
		Date:        logDate,
		PartnerName: logPartner,
		SocialMedia: logSocial,
		Notes:       logNotes,
		Tags:        logTags,
		Media:       staged,
	})
	if err != nil {
		journal.DiscardStaged(staged)
		return err
	}

	fmt.Println(clifmt.Success(fmt.Sprintf("Entry %d saved.", id)))
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, _, err := openStores(ctx)
	if err != nil {
		return err
	}
	entries, err := store.ListEntries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(clifmt.Dim("No entries yet. Use `datelog log` to add one."))
		return nil
	}
	printEntries(entries)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, _, err := openStores(ctx)
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	entries, err := store.SearchEntries(ctx, query)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(clifmt.Dim("No entries matched."))
		return nil
	}
	printEntries(entries)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, _, err := openStores(ctx)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id: %s", args[0])
	}

	entries, err := store.ListEntries(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID != id {
			continue
		}
		fmt.Println(clifmt.Headerf("%s — %s", e.Date, e.PartnerName))
		if e.SocialMedia != "" {
			fmt.Printf("%s %s\n", clifmt.Key("Social:"), e.SocialMedia)
		}
		if e.Tags != "" {
			fmt.Printf("%s %s\n", clifmt.Key("Tags:"), e.Tags)
		}
		if e.Notes != "" {
			fmt.Printf("%s %s\n", clifmt.Key("Notes:"), e.Notes)
		}
		media, err := store.MediaFor(ctx, e.ID)
		if err != nil {
			return err
		}
		for _, m := range media {
			fmt.Printf("%s %s (%s)\n", clifmt.Key("Media:"), m.Path, m.Kind)
		}
		return nil
	}
	return fmt.Errorf("entry %d not found", id)
}

func printEntries(entries []journal.Entry) {
	for _, e := range entries {
		line := fmt.Sprintf("[%d] %s — %s", e.ID, e.Date, e.PartnerName)
		if e.Tags != "" {
			line += " (" + e.Tags + ")"
		}
		fmt.Println(line)
		if e.Notes != "" {
			fmt.Println("    " + clifmt.Dim(e.Notes))
		}
	}
}
