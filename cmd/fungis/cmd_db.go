package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/speNillusion/fungis-boosters/internal/dataset"
	"github.com/speNillusion/fungis-boosters/internal/store"

	"github.com/spf13/cobra"
)

var (
	dbDriverFlag  string
	dbDSNFlag     string
	dbDatasetFlag string
	dbExtractOut  string
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Degraders database management — populate, inspect, extract",
}

var dbSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Rebuild the degraders table from the JSON dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		records, err := dataset.Load(dbDatasetFlag)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return fmt.Errorf("dataset %s is empty or missing", dbDatasetFlag)
		}

		s, dbh, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer dbh.Close()

		if err := s.Rebuild(ctx, records); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records into degraders\n", len(records))
		return nil
	},
}

var dbInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the degraders table structure and row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		s, dbh, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer dbh.Close()

		cols, err := s.Schema(ctx)
		if err != nil {
			return err
		}
		total, err := s.Count(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Table: degraders (%d records)\n\n", total)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Column\tType\n")
		fmt.Fprintf(w, "------\t----\n")
		for _, c := range cols {
			fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Type)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		plastics, err := s.PlasticCounts(ctx)
		if err != nil {
			return err
		}
		organisms, err := s.MicroorganismCounts(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nDistinct plastics: %d, distinct microorganisms: %d\n", len(plastics), len(organisms))
		return nil
	},
}

var dbExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Export plastics, microorganisms and all records to JSON/CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		s, dbh, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer dbh.Close()

		if err := os.MkdirAll(dbExtractOut, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		plastics, err := s.DistinctPlastics(ctx)
		if err != nil {
			return err
		}
		plasticCounts, err := s.PlasticCounts(ctx)
		if err != nil {
			return err
		}
		if err := writeJSON(filepath.Join(dbExtractOut, "plastics.json"), map[string]any{
			"total": len(plastics), "types": plastics, "counts": plasticCounts,
		}); err != nil {
			return err
		}

		organisms, err := s.DistinctMicroorganisms(ctx)
		if err != nil {
			return err
		}
		organismCounts, err := s.MicroorganismCounts(ctx)
		if err != nil {
			return err
		}
		if err := writeJSON(filepath.Join(dbExtractOut, "microorganisms.json"), map[string]any{
			"total": len(organisms), "types": organisms, "counts": organismCounts,
		}); err != nil {
			return err
		}

		records, err := s.Records(ctx, store.RecordFilter{}, 0)
		if err != nil {
			return err
		}
		if err := writeJSON(filepath.Join(dbExtractOut, "records.json"), records); err != nil {
			return err
		}

		cols, err := s.Schema(ctx)
		if err != nil {
			return err
		}
		if err := writeCSV(filepath.Join(dbExtractOut, "records.csv"), cols, records); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(),
			"Extracted %d records, %d plastics, %d microorganisms to %s\n",
			len(records), len(plastics), len(organisms), dbExtractOut)
		return nil
	},
}

func openStore(ctx context.Context) (*store.DegraderStore, *sql.DB, error) {
	dbh, err := store.Open(ctx, store.Driver(dbDriverFlag), dbDSNFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	return store.NewDegraderStore(dbh, store.Driver(dbDriverFlag)), dbh, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeCSV(path string, cols []store.ColumnInfo, records []map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = r[c.Name]
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	dbCmd.PersistentFlags().StringVar(&dbDriverFlag, "driver", "sqlite", "database driver (sqlite or postgres)")
	dbCmd.PersistentFlags().StringVar(&dbDSNFlag, "dsn", "", "database DSN (empty = driver default)")
	dbSetupCmd.Flags().StringVar(&dbDatasetFlag, "dataset", "degraders_list_with_images.json", "path to the JSON dataset")
	dbExtractCmd.Flags().StringVar(&dbExtractOut, "out", "extracted", "output directory")

	dbCmd.AddCommand(dbSetupCmd)
	dbCmd.AddCommand(dbInspectCmd)
	dbCmd.AddCommand(dbExtractCmd)
}
