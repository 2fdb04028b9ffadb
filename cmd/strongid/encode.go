// Part of the strongid CLI - this file implements the 'strongid encode' subcommand.
package main

import (
	"fmt"
	"math/big"

	"github.com/arthur-debert/strongid/strongid"
	"github.com/spf13/cobra"
)

var encodeLevel string

var encodeCmd = &cobra.Command{
	Use:   "encode <integer>",
	Short: "Build an identifier from its canonical integer",
	Long:  "Interpret a decimal integer as the canonical value of an identifier at the given level.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := effectiveConfig()
		if err != nil {
			return err
		}

		level, err := strongid.ParseLevel(encodeLevel)
		if err != nil {
			return err
		}

		n, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			return fmt.Errorf("not a decimal integer: %q", args[0])
		}

		id, err := strongid.FromInteger(n, level, config)
		if err != nil {
			return err
		}

		printIdentifier(cmd, id)
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeLevel, "level", "l", "top", "level tag: top, team, stronghold, or researcher")
}
