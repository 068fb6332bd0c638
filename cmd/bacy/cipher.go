package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/bacy/internal/crypto"
)

func newKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key <table>",
		Short: "Print the 8-byte key of a table",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatHex(out, crypto.CreateKeyString(args[0])))
		},
	}
}

func newPasswordCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password <seed>",
		Short: "Derive a base64 password from a seed string",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n, _ := cmd.Flags().GetInt("length")
			if n <= 0 {
				n = a.cfg.Zip.PasswordLength
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.CreatePassword(args[0], n))
		},
	}
	cmd.Flags().IntP("length", "l", 0, "Password length (default from config)")
	return cmd
}

func newXorRowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xor-row <name> <hex>",
		Short: "XOR a row with the keystream of name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("decoding row: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(crypto.EncodeRow(args[0], raw)))
			return nil
		},
	}
}

func newStringCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "string",
		Short: "Encrypt or decrypt table strings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode <table> <text>",
			Short: "Encrypt a string with a table key",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				c := crypto.NewTableCodec(args[0], a.toggle)
				fmt.Fprintln(cmd.OutOrStdout(), c.EncryptString(args[1]))
			},
		},
		&cobra.Command{
			Use:   "decode <table> <base64>",
			Short: "Decrypt a string with a table key",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c := crypto.NewTableCodec(args[0], a.toggle)
				s, err := c.DecryptString(args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			},
		},
	)
	return cmd
}
