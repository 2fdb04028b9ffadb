// Part of the strongid CLI - this file implements the 'strongid size' subcommand.
package main

import (
	"fmt"

	"github.com/arthur-debert/strongid/strongid"
	"github.com/spf13/cobra"
)

var sizeLevel string

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Show minimum storage sizes",
	Long:  "Show the minimum bits and bytes that hold any identifier at each level under the effective config.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := effectiveConfig()
		if err != nil {
			return err
		}

		levels := strongid.Levels()
		if sizeLevel != "" {
			level, err := strongid.ParseLevel(sizeLevel)
			if err != nil {
				return err
			}
			levels = []strongid.Level{level}
		}

		out := cmd.OutOrStdout()
		for _, level := range levels {
			bits, bytes, err := strongid.MinStorageSize(level, config)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-11s %4d bits  %3d bytes\n", level, bits, bytes)
		}
		return nil
	},
}

func init() {
	sizeCmd.Flags().StringVarP(&sizeLevel, "level", "l", "", "limit output to one level tag")
}
