package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udisondev/bacy/internal/config"
	"github.com/udisondev/bacy/internal/crypto"
)

const defaultConfigPath = "bacy.yaml"

// app carries state shared by subcommands once PersistentPreRunE has run.
type app struct {
	cfg    config.Config
	toggle *crypto.Toggle
}

func newRootCmd() *cobra.Command {
	a := &app{toggle: crypto.DefaultToggle}

	root := &cobra.Command{
		Use:           "bacy",
		Short:         "Table cipher, CRC forging and catalog tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Config file (default $BACY_CONFIG or "+defaultConfigPath+")")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().Bool("encryption", false, "Enable the table cipher (overrides config)")

	root.AddCommand(
		newCRCCmd(a),
		newMD5Cmd(),
		newXXHashCmd(),
		newForgeCmd(a),
		newKeyCmd(),
		newPasswordCmd(a),
		newXorRowCmd(),
		newStringCmd(a),
		newZipCmd(a),
		newCatalogCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = defaultConfigPath
		if p := os.Getenv("BACY_CONFIG"); p != "" {
			path = p
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("encryption") {
		cfg.UseEncryption, _ = cmd.Flags().GetBool("encryption")
	}
	a.cfg = cfg
	a.toggle.Set(cfg.UseEncryption)

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))

	slog.Debug("config loaded", "path", path, "encryption", cfg.UseEncryption, "workers", cfg.Workers)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bacy version %s\n", Version)
		},
	}
}
