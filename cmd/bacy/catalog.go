package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/udisondev/bacy/internal/catalog"
	"github.com/udisondev/bacy/internal/db"
)

const (
	kindMedia = "media"
	kindTable = "table"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Decode, index and compare catalogs",
	}
	cmd.PersistentFlags().String("kind", kindTable, "Catalog kind: media or table")

	dump := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a catalog as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := cmd.Flags().GetString("base-url")
			cat, err := loadCatalog(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if base != "" {
				for _, line := range cat.urls(base) {
					fmt.Fprintln(out, line)
				}
				return nil
			}
			b, err := cat.toJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		},
	}
	dump.Flags().String("base-url", "", "Print entry URLs under this base instead of JSON")

	index := &cobra.Command{
		Use:   "index <file>",
		Short: "Store a catalog in the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd, args[0])
			if err != nil {
				return err
			}
			return a.withRepo(cmd, func(repo *db.CatalogRepository) error {
				if cat.media != nil {
					return repo.SaveMedia(cmd.Context(), cat.media)
				}
				return repo.SaveTables(cmd.Context(), cat.tables)
			})
		},
	}

	diff := &cobra.Command{
		Use:   "diff <old> [new]",
		Short: "List added, removed and changed entries",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			useDB, _ := cmd.Flags().GetBool("db")
			out := cmd.OutOrStdout()

			if useDB {
				if len(args) != 1 {
					return fmt.Errorf("--db takes a single catalog")
				}
				cat, err := loadCatalog(cmd, args[0])
				if err != nil {
					return err
				}
				return a.withRepo(cmd, func(repo *db.CatalogRepository) error {
					var (
						keys []string
						err  error
					)
					if cat.media != nil {
						keys, err = repo.ChangedMedia(cmd.Context(), cat.media)
					} else {
						keys, err = repo.ChangedTables(cmd.Context(), cat.tables)
					}
					if err != nil {
						return err
					}
					for _, k := range keys {
						fmt.Fprintf(out, "~ %s\n", k)
					}
					return nil
				})
			}

			if len(args) != 2 {
				return fmt.Errorf("diff needs an old and a new catalog")
			}
			oldCat, err := loadCatalog(cmd, args[0])
			if err != nil {
				return err
			}
			newCat, err := loadCatalog(cmd, args[1])
			if err != nil {
				return err
			}
			var d catalog.Diff
			if oldCat.media != nil {
				d = catalog.DiffMedia(oldCat.media, newCat.media)
			} else {
				d = catalog.DiffTables(oldCat.tables, newCat.tables)
			}
			printDiff(out, d)
			return nil
		},
	}
	diff.Flags().Bool("db", false, "Compare against the indexed catalog")

	cmd.AddCommand(dump, index, diff)
	return cmd
}

// decoded holds exactly one of the two catalog kinds.
type decoded struct {
	media  *catalog.MediaCatalog
	tables *catalog.TableCatalog
}

func loadCatalog(cmd *cobra.Command, path string) (decoded, error) {
	kind, _ := cmd.Flags().GetString("kind")
	data, err := os.ReadFile(path)
	if err != nil {
		return decoded{}, fmt.Errorf("reading %s: %w", path, err)
	}
	switch strings.ToLower(kind) {
	case kindMedia:
		c, err := catalog.DecodeMediaCatalog(data)
		return decoded{media: c}, err
	case kindTable:
		c, err := catalog.DecodeTableCatalog(data)
		return decoded{tables: c}, err
	default:
		return decoded{}, fmt.Errorf("unknown catalog kind %q", kind)
	}
}

func (d decoded) toJSON() ([]byte, error) {
	if d.media != nil {
		return d.media.ToJSON()
	}
	return d.tables.ToJSON()
}

func (d decoded) urls(base string) []string {
	var out []string
	if d.media != nil {
		for _, k := range d.media.Keys() {
			out = append(out, d.media.Table[k].URL(base))
		}
		return out
	}
	for _, k := range d.tables.Keys() {
		out = append(out, d.tables.Table[k].URL(base))
	}
	return out
}

func printDiff(w io.Writer, d catalog.Diff) {
	for _, k := range d.Added {
		fmt.Fprintf(w, "+ %s\n", k)
	}
	for _, k := range d.Removed {
		fmt.Fprintf(w, "- %s\n", k)
	}
	for _, k := range d.Changed {
		fmt.Fprintf(w, "~ %s\n", k)
	}
}

func (a *app) withRepo(cmd *cobra.Command, fn func(*db.CatalogRepository) error) error {
	ctx := cmd.Context()
	dsn := a.cfg.Database.DSN()

	database, err := db.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, dsn); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return fn(database.Catalogs())
}
