// Part of the strongid CLI - this file implements the 'strongid decode' subcommand.
package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/arthur-debert/strongid/strongid"
	"github.com/spf13/cobra"
)

var decodeLevel string

var decodeCmd = &cobra.Command{
	Use:   "decode <hex-bytes>",
	Short: "Build an identifier from big-endian bytes",
	Long:  "Interpret hex-encoded big-endian bytes as the canonical integer of an identifier at the given level.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := effectiveConfig()
		if err != nil {
			return err
		}

		level, err := strongid.ParseLevel(decodeLevel)
		if err != nil {
			return err
		}

		data, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			return fmt.Errorf("not hex bytes: %q: %w", args[0], err)
		}

		id, err := strongid.FromBytes(data, level, config)
		if err != nil {
			return err
		}

		printIdentifier(cmd, id)
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeLevel, "level", "l", "top", "level tag: top, team, stronghold, or researcher")
}
