// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/linkscout/internal/orgs"
)

func newTestCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	c.Flags().String("input", "", "")
	c.Flags().String("org", "", "")
	c.Flags().String("org-profile", "", "")
	c.Flags().String("profiles", "", "")
	return c
}

func TestSettingPrecedence(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("flag beats config", func(t *testing.T) {
		cmd := newTestCmd()
		require.NoError(t, cmd.Flags().Set("input", "from-flag.txt"))
		viper.Set("input", "from-config.txt")
		assert.Equal(t, "from-flag.txt", setting(cmd, "input", "input", defaultInput))
	})

	t.Run("config beats default", func(t *testing.T) {
		cmd := newTestCmd()
		viper.Set("input", "from-config.txt")
		assert.Equal(t, "from-config.txt", setting(cmd, "input", "input", defaultInput))
	})

	t.Run("default when nothing set", func(t *testing.T) {
		viper.Reset()
		cmd := newTestCmd()
		assert.Equal(t, defaultInput, setting(cmd, "input", "input", defaultInput))
	})
}

func TestResolveKeywords(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("override beats profile", func(t *testing.T) {
		viper.Reset()
		cmd := newTestCmd()
		require.NoError(t, cmd.Flags().Set("org", "acme.io; Acme Corp"))
		require.NoError(t, cmd.Flags().Set("org-profile", "ignored"))

		keywords, err := resolveKeywords(cmd)
		require.NoError(t, err)
		assert.Equal(t, []string{"acme.io", "Acme Corp"}, keywords)
	})

	t.Run("named profile from file", func(t *testing.T) {
		viper.Reset()
		path := filepath.Join(t.TempDir(), "orgs.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
profiles:
  - name: globex
    keywords: [globex.com]
`), 0o644))

		cmd := newTestCmd()
		require.NoError(t, cmd.Flags().Set("org-profile", "globex"))
		require.NoError(t, cmd.Flags().Set("profiles", path))

		keywords, err := resolveKeywords(cmd)
		require.NoError(t, err)
		assert.Equal(t, []string{"globex.com"}, keywords)
	})

	t.Run("unknown profile is an error", func(t *testing.T) {
		viper.Reset()
		cmd := newTestCmd()
		require.NoError(t, cmd.Flags().Set("org-profile", "nope"))
		require.NoError(t, cmd.Flags().Set("profiles", filepath.Join(t.TempDir(), "absent.yaml")))

		_, err := resolveKeywords(cmd)
		assert.Error(t, err)
	})

	t.Run("defaults when nothing selected", func(t *testing.T) {
		viper.Reset()
		keywords, err := resolveKeywords(newTestCmd())
		require.NoError(t, err)
		assert.Equal(t, orgs.Default(), keywords)
	})
}
