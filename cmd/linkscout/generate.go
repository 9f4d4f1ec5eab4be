package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/linkscout/internal/orgs"
	"github.com/pdiddy/linkscout/internal/pipeline"
	"github.com/pdiddy/linkscout/pkg/types"
)

const (
	defaultInput    = "emails.txt"
	defaultOutput   = "linkedin_searches.csv"
	defaultProfiles = "orgs.yaml"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build search links for each email in the input file",
	Long: `Generate reads one email per line from the input file, drops malformed and
duplicate addresses, and writes a CSV with Google, Bing and Yandex search
links per address. Organization keywords narrow the query; pick them with
--org, --org-profile, or the config file.

With --history-db, generated rows are also recorded in a SQLite database,
and --skip-known excludes addresses recorded by earlier runs.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("input", "i", "", "input file with one email per line (default: emails.txt)")
	generateCmd.Flags().StringP("output", "o", "", "output CSV file (default: linkedin_searches.csv)")
	generateCmd.Flags().String("xlsx", "", "also write an XLSX spreadsheet to this path")
	generateCmd.Flags().String("org", "", "organization keywords separated by ';' (overrides profiles)")
	generateCmd.Flags().String("org-profile", "", "named organization profile from the profiles file")
	generateCmd.Flags().String("profiles", "", "organization profiles YAML file (default: orgs.yaml)")
	generateCmd.Flags().String("history-db", "", "SQLite history database (empty: history disabled)")
	generateCmd.Flags().Bool("skip-known", false, "skip emails already recorded in the history database")

	rootCmd.AddCommand(generateCmd)
}

// setting resolves one string option: explicit flag first, then the config
// file / environment, then the built-in default.
func setting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := types.GenerateConfig{
		InputPath: setting(cmd, "input", "input", defaultInput),
		CSVPath:   setting(cmd, "output", "output", defaultOutput),
		XLSXPath:  setting(cmd, "xlsx", "xlsx", ""),
		HistoryDB: setting(cmd, "history-db", "history_db", ""),
	}

	skipKnown, _ := cmd.Flags().GetBool("skip-known")
	cfg.SkipKnown = skipKnown || viper.GetBool("skip_known")
	if cfg.SkipKnown && cfg.HistoryDB == "" {
		return fmt.Errorf("--skip-known requires --history-db (or history_db in the config file)")
	}

	keywords, err := resolveKeywords(cmd)
	if err != nil {
		return err
	}
	cfg.OrgKeywords = keywords

	summary, err := pipeline.Run(context.Background(), cfg, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("Processed addresses: %d\n", summary.Accepted)
	if summary.SkippedKnown > 0 {
		fmt.Printf("Skipped (already in history): %d\n", summary.SkippedKnown)
	}
	fmt.Printf("CSV: %s\n", summary.CSVPath)
	if summary.XLSXPath != "" {
		fmt.Printf("XLSX: %s\n", summary.XLSXPath)
	}
	return nil
}

// resolveKeywords picks the organization keyword list. A semicolon override
// beats a named profile; a named profile beats the built-in default.
func resolveKeywords(cmd *cobra.Command) ([]string, error) {
	if override := setting(cmd, "org", "org", ""); strings.TrimSpace(override) != "" {
		return orgs.ParseOverride(override), nil
	}

	profileName := setting(cmd, "org-profile", "org_profile", "")
	if profileName == "" {
		return orgs.Default(), nil
	}

	profilesPath := setting(cmd, "profiles", "profiles", defaultProfiles)
	profiles, err := orgs.LoadProfiles(profilesPath)
	if err != nil {
		return nil, err
	}
	profile, err := orgs.Lookup(profiles, profileName)
	if err != nil {
		return nil, err
	}
	return profile.Keywords, nil
}
