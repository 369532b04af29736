package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/seblak-bujangan/seblak/internal/branding"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Config keys.
const (
	KeyPort           = "port"
	KeyAppCommand     = "app.command"
	KeyAppEntry       = "app.entry"
	KeyPackageManager = "package_manager"
	KeyDependencies   = "dependencies"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
)

// Defaults mirror the fixed values the app has always been launched with.
const (
	DefaultPort           = 5000
	DefaultAppCommand     = "streamlit"
	DefaultAppEntry       = "app.py"
	DefaultPackageManager = "pip"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
)

// DefaultDependencies is the Python package list installed by setup.
var DefaultDependencies = []string{"streamlit", "pandas", "numpy", "plotly", "python-dateutil"}

// Settings holds the resolved configuration.
type Settings struct {
	Port           int
	AppCommand     string
	AppEntry       string
	PackageManager string
	Dependencies   []string
	LogLevel       string
	LogFormat      string

	// ConfigFile is the config file that was read, empty if none.
	ConfigFile string
}

// FilePath returns the default config file location for a project root.
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigName()+"."+fileType)
}

// Load resolves settings for the project at root. An explicit configFile must
// exist; the default seblak.yaml is optional.
func Load(root, configFile string) (*Settings, error) {
	if err := loadDotEnv(root); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyAppCommand, DefaultAppCommand)
	v.SetDefault(KeyAppEntry, DefaultAppEntry)
	v.SetDefault(KeyPackageManager, DefaultPackageManager)
	v.SetDefault(KeyDependencies, DefaultDependencies)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigFile(FilePath(root))
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", FilePath(root), err)
		}
	}

	s := &Settings{
		Port:           v.GetInt(KeyPort),
		AppCommand:     v.GetString(KeyAppCommand),
		AppEntry:       v.GetString(KeyAppEntry),
		PackageManager: v.GetString(KeyPackageManager),
		Dependencies:   v.GetStringSlice(KeyDependencies),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
	}
	if _, err := os.Stat(v.ConfigFileUsed()); err == nil {
		s.ConfigFile = v.ConfigFileUsed()
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects settings the commands cannot run with.
func (s *Settings) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("invalid %s %d: must be between 1 and 65535", KeyPort, s.Port)
	}
	if strings.TrimSpace(s.AppCommand) == "" {
		return fmt.Errorf("%s must not be empty", KeyAppCommand)
	}
	if strings.TrimSpace(s.PackageManager) == "" {
		return fmt.Errorf("%s must not be empty", KeyPackageManager)
	}
	if len(s.Dependencies) == 0 {
		return fmt.Errorf("%s must list at least one package", KeyDependencies)
	}
	return nil
}

// loadDotEnv loads <root>/.env if present. Variables already set in the
// environment win.
func loadDotEnv(root string) error {
	path := filepath.Join(root, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
