package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/bacy/internal/tablezip"
)

func newZipCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zip",
		Short: "Inspect password-protected table archives",
	}
	cmd.PersistentFlags().String("password", "", "Archive password (default derived from the file name)")

	list := &cobra.Command{
		Use:   "list <archive>",
		Short: "List archive entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openArchive(cmd, args[0])
			if err != nil {
				return err
			}
			for _, name := range f.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	extract := &cobra.Command{
		Use:   "extract <archive>",
		Short: "Decrypt and extract every entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("output")
			f, err := openArchive(cmd, args[0])
			if err != nil {
				return err
			}
			entries, err := f.ExtractAll()
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Workers)
			for _, e := range entries {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					return writeEntry(dir, e)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			slog.Info("archive extracted", "archive", args[0], "entries", len(entries), "dir", dir)
			return nil
		},
	}
	extract.Flags().StringP("output", "o", ".", "Output directory")

	cmd.AddCommand(list, extract)
	return cmd
}

func openArchive(cmd *cobra.Command, path string) (*tablezip.File, error) {
	var opts []tablezip.Option
	if pw, _ := cmd.Flags().GetString("password"); pw != "" {
		opts = append(opts, tablezip.WithPassword(pw))
	}
	return tablezip.OpenFile(path, opts...)
}

func writeEntry(dir string, e tablezip.Entry) error {
	name := filepath.Clean(filepath.FromSlash(e.Name))
	if filepath.IsAbs(name) || name == ".." || strings.HasPrefix(name, ".."+string(filepath.Separator)) {
		return fmt.Errorf("entry %q escapes the output directory", e.Name)
	}
	dst := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", e.Name, err)
	}
	if err := os.WriteFile(dst, e.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
