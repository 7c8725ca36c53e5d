package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/quailyquaily/datelog/journal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries as CSV or YAML",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or yaml")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

type exportEntry struct {
	ID          int64    `yaml:"id"`
	Date        string   `yaml:"date"`
	PartnerName string   `yaml:"partner_name"`
	SocialMedia string   `yaml:"social_media,omitempty"`
	Notes       string   `yaml:"notes,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, _, err := openStores(ctx)
	if err != nil {
		return err
	}
	entries, err := store.ListEntries(ctx)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch exportFormat {
	case "csv":
		return writeCSV(w, entries)
	case "yaml", "yml":
		return writeYAML(w, entries)
	default:
		return fmt.Errorf("unsupported format: %s", exportFormat)
	}
}

func writeCSV(w io.Writer, entries []journal.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "partner_name", "social_media", "notes", "tags"}); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date,
			e.PartnerName,
			e.SocialMedia,
			e.Notes,
			e.Tags,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeYAML(w io.Writer, entries []journal.Entry) error {
	out := make([]exportEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, exportEntry{
			ID:          e.ID,
			Date:        e.Date,
			PartnerName: e.PartnerName,
			SocialMedia: e.SocialMedia,
			Notes:       e.Notes,
			Tags:        e.TagList(),
		})
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(out)
}
