// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orgs manages organization keyword sets: the built-in default,
// semicolon-delimited overrides, and named profiles loaded from YAML.
package orgs

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// DefaultProfileName identifies the built-in keyword set.
const DefaultProfileName = "samruk-kazyna"

// defaultKeywords is the built-in organization: Samruk-Kazyna in Latin and
// Cyrillic plus its web domain.
var defaultKeywords = []string{"sk.kz", "Samruk-Kazyna", "Самрук-Казына"}

// Default returns a copy of the built-in keyword list. Callers may append
// or reorder without affecting later runs.
func Default() []string {
	out := make([]string, len(defaultKeywords))
	copy(out, defaultKeywords)
	return out
}

// ParseOverride splits a semicolon-delimited keyword override, trimming
// whitespace and dropping empty entries. An override that yields nothing
// ("", ";;", "  ;  ") falls back to the built-in defaults rather than
// producing an empty OR block.
func ParseOverride(override string) []string {
	var keywords []string
	for _, kw := range strings.Split(override, ";") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return Default()
	}
	return keywords
}

// Profile is a named organization keyword set.
type Profile struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// profilesFile is the YAML document shape of a profiles file.
type profilesFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles reads named profiles from a YAML file. A missing file is
// not an error; it returns only the built-in profile so callers do not
// need to special-case the no-file setup.
func LoadProfiles(path string) ([]Profile, error) {
	builtin := Profile{Name: DefaultProfileName, Keywords: Default()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Profile{builtin}, nil
		}
		return nil, fmt.Errorf("reading profiles %s: %w", path, err)
	}

	var pf profilesFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing profiles %s: %w", path, err)
	}

	profiles := []Profile{builtin}
	for _, p := range pf.Profiles {
		if p.Name == "" || len(p.Keywords) == 0 {
			return nil, fmt.Errorf("profiles %s: every profile needs a name and at least one keyword", path)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Lookup finds a profile by name.
func Lookup(profiles []Profile, name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return Profile{}, fmt.Errorf("unknown organization profile %q (have: %s)", name, strings.Join(names, ", "))
}
