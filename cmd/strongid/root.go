// Part of the strongid CLI - this file wires the root command and the
// configuration flags shared by every subcommand.
package main

import (
	"fmt"

	"github.com/arthur-debert/strongid/strongid"
	"github.com/spf13/cobra"
)

var (
	configPath       string
	teamDigits       int
	strongholdDigits int
	researcherDigits int
	codenameMaxLen   int
)

var rootCmd = &cobra.Command{
	Use:   "strongid",
	Short: "Hierarchical identifier codec",
	Long: "Strongid converts hierarchical identifiers between their canonical text,\n" +
		"integer, and big-endian byte representations.",
	SilenceUsage: true,
}

func init() {
	defaults := strongid.DefaultConfig()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().IntVar(&teamDigits, "team-digits", defaults.TeamDigits, "decimal width of the team segment")
	rootCmd.PersistentFlags().IntVar(&strongholdDigits, "stronghold-digits", defaults.StrongholdDigits, "decimal width of the stronghold segment")
	rootCmd.PersistentFlags().IntVar(&researcherDigits, "researcher-digits", defaults.ResearcherDigits, "decimal width of the researcher segment")
	rootCmd.PersistentFlags().IntVar(&codenameMaxLen, "codename-max-len", defaults.CodenameMaxLen, "codename length budget used for storage sizing")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(sizeCmd)
}

// effectiveConfig assembles the config for a run: defaults, then the
// config file if one was given, then any explicitly set flags on top.
func effectiveConfig() (strongid.Config, error) {
	config := strongid.DefaultConfig()
	if configPath != "" {
		loaded, err := strongid.LoadConfig(configPath)
		if err != nil {
			return strongid.Config{}, err
		}
		config = loaded
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("team-digits") {
		config.TeamDigits = teamDigits
	}
	if flags.Changed("stronghold-digits") {
		config.StrongholdDigits = strongholdDigits
	}
	if flags.Changed("researcher-digits") {
		config.ResearcherDigits = researcherDigits
	}
	if flags.Changed("codename-max-len") {
		config.CodenameMaxLen = codenameMaxLen
	}

	if err := config.Validate(); err != nil {
		return strongid.Config{}, err
	}
	return config, nil
}

// printIdentifier reports every representation of an identifier.
func printIdentifier(cmd *cobra.Command, id strongid.Identifier) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "canonical: %s\n", id.String())
	fmt.Fprintf(out, "level:     %s\n", id.Level())
	fmt.Fprintf(out, "integer:   %s\n", id.Integer())
	fmt.Fprintf(out, "bytes:     %x\n", id.Bytes())
}
