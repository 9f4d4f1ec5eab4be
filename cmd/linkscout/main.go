// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the linkscout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the linkscout CLI.
var rootCmd = &cobra.Command{
	Use:   "linkscout",
	Short: "Generate search-engine links for finding people by email",
	Long: `linkscout turns a list of email addresses into candidate search URLs for
locating each person's professional networking profile. It derives a surname
hint from every address, builds an organization-scoped query, and renders one
Google, Bing and Yandex link per email into a CSV (and optionally an XLSX).

The tool never contacts a search engine; it only emits URLs for a human to
follow.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./linkscout.yaml or ~/.config/linkscout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("linkscout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "linkscout"))
		}
	}

	viper.SetEnvPrefix("LINKSCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
