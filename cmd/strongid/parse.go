// Part of the strongid CLI - this file implements the 'strongid parse' subcommand.
package main

import (
	"github.com/arthur-debert/strongid/strongid"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <identifier>",
	Short: "Parse canonical identifier text",
	Long:  "Parse an identifier like LFN2018-00121376 and print its level, canonical form, integer, and bytes.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := effectiveConfig()
		if err != nil {
			return err
		}

		id, err := strongid.Parse(args[0], config)
		if err != nil {
			return err
		}

		printIdentifier(cmd, id)
		return nil
	},
}
