package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/linkscout/internal/orgs"
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List organization keyword profiles",
	Long: `Orgs lists the named organization profiles available to generate: the
built-in default plus any profiles defined in the profiles YAML file.`,
	RunE: runOrgs,
}

func init() {
	orgsCmd.Flags().String("profiles", "", "organization profiles YAML file (default: orgs.yaml)")

	rootCmd.AddCommand(orgsCmd)
}

func runOrgs(cmd *cobra.Command, args []string) error {
	profilesPath := setting(cmd, "profiles", "profiles", defaultProfiles)
	profiles, err := orgs.LoadProfiles(profilesPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%-20s  %s\n", "Profile", "Keywords")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 60))
	for _, p := range profiles {
		fmt.Fprintf(os.Stdout, "%-20s  %s\n", p.Name, strings.Join(p.Keywords, "; "))
	}
	return nil
}
