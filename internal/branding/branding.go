// Package branding provides the identity values for the CLI and the app it
// bootstraps.
//
// The values are read from the embedded branding.yaml so a fork can rename
// the product without touching Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName                string `yaml:"cli_name"`
	DisplayName            string `yaml:"display_name"`
	Description            string `yaml:"description"`
	PackageName            string `yaml:"package_name"`
	PlaceholderPackageName string `yaml:"placeholder_package_name"`
	EnvPrefix              string `yaml:"env_prefix"`
	ConfigName             string `yaml:"config_name"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:                "seblak",
			DisplayName:            "Seblak Bujangan",
			Description:            "Aplikasi Manajemen Keuangan Seblak Bujangan",
			PackageName:            "seblak-bujangan",
			PlaceholderPackageName: "workspace",
			EnvPrefix:              "SEBLAK",
			ConfigName:             "seblak",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "seblak").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the product description written into package.json.
func Description() string { load(); return defaults.Description }

// PackageName returns the npm package name the manifest is renamed to.
func PackageName() string { load(); return defaults.PackageName }

// PlaceholderPackageName returns the generated package name that gets replaced
// (e.g., "workspace").
func PlaceholderPackageName() string { load(); return defaults.PlaceholderPackageName }

// EnvPrefix returns the environment variable prefix (e.g., "SEBLAK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigName returns the config file base name without extension.
func ConfigName() string { load(); return defaults.ConfigName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("port") → "SEBLAK_PORT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
