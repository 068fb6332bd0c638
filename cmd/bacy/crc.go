package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/udisondev/bacy/internal/config"
	"github.com/udisondev/bacy/internal/crc"
	"github.com/udisondev/bacy/internal/hash"
)

func newCRCCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "crc <file>...",
		Short: "Print the CRC-32 of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := hash.BatchCRC(cmd.Context(), args, a.cfg.Workers)
			if err != nil {
				return err
			}
			for _, r := range res {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", r.CRC.Hex(), r.Path)
			}
			return nil
		},
	}
}

func newMD5Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "md5 <file>...",
		Short: "Print the MD5 of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				sum, err := hash.MD5File(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, p)
			}
			return nil
		},
	}
}

func newXXHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xxhash <text>",
		Short: "Print the xxHash of a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wide, _ := cmd.Flags().GetBool("64")
			be, _ := cmd.Flags().GetBool("be")
			out := cmd.OutOrStdout()
			if wide {
				fmt.Fprintln(out, strconv.FormatUint(hash.XXHash64([]byte(args[0]), be), 10))
				return nil
			}
			fmt.Fprintln(out, strconv.FormatUint(uint64(hash.XXHash32([]byte(args[0]))), 10))
			return nil
		},
	}
	cmd.Flags().Bool("64", false, "Use the 64-bit variant")
	cmd.Flags().Bool("be", false, "Byte-swap the 64-bit digest")
	return cmd
}

func newForgeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forge <file>",
		Short: "Append 4 bytes so a file has a chosen CRC-32",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetHex, _ := cmd.Flags().GetString("target")
			match, _ := cmd.Flags().GetString("match")
			generic, _ := cmd.Flags().GetBool("generic")
			rewrite, _ := cmd.Flags().GetBool("rewrite")

			if (targetHex == "") == (match == "") {
				return errors.New("exactly one of --target or --match is required")
			}

			if generic && match != "" {
				ok, err := crc.ManipulateCRC(match, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s: patched checksum did not match %s", args[0], match)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s now matches %s\n", args[0], match)
				return nil
			}

			f := a.forger(generic)
			var (
				res crc.Result
				err error
			)
			switch {
			case match != "":
				res, err = f.MatchFile(args[0], match)
			default:
				target, perr := crc.ParseValue(targetHex)
				if perr != nil {
					return perr
				}
				if rewrite {
					res, err = f.RewriteFile(args[0], target)
				} else {
					res, err = f.ForgeFile(args[0], target)
				}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Changed() {
				fmt.Fprintf(out, "%s already has CRC %s\n", args[0], res.After.Hex())
				return nil
			}
			fmt.Fprintf(out, "%s: %s -> %s (patch %s)\n", args[0], res.Before.Hex(), res.After.Hex(), formatHex(out, res.Patch))
			return nil
		},
	}
	cmd.Flags().String("target", "", "Target CRC-32 in hex")
	cmd.Flags().String("match", "", "Reference file whose CRC-32 to copy")
	cmd.Flags().Bool("generic", false, "Use the general GF(2) solver")
	cmd.Flags().Bool("rewrite", false, "Rewrite the file instead of appending")
	return cmd
}

func (a *app) forger(generic bool) *crc.Forger {
	var solver crc.Solver = crc.FastSolver{}
	if generic || a.cfg.CRC.Solver == config.SolverGeneric {
		solver = crc.NewGenericSolver()
	}
	slog.Debug("forger", "generic", generic || a.cfg.CRC.Solver == config.SolverGeneric, "buffer", a.cfg.CRC.BufferSize)
	return crc.NewForger(crc.WithSolver(solver), crc.WithBufferSize(a.cfg.CRC.BufferSize))
}
