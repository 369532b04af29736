package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Keys lists every configurable key.
var Keys = []string{
	KeyPort,
	KeyAppCommand,
	KeyAppEntry,
	KeyPackageManager,
	KeyDependencies,
	KeyLogLevel,
	KeyLogFormat,
}

// Get returns the resolved value of key as text. Lists are comma-separated.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case KeyPort:
		return strconv.Itoa(s.Port), nil
	case KeyAppCommand:
		return s.AppCommand, nil
	case KeyAppEntry:
		return s.AppEntry, nil
	case KeyPackageManager:
		return s.PackageManager, nil
	case KeyDependencies:
		return strings.Join(s.Dependencies, ","), nil
	case KeyLogLevel:
		return s.LogLevel, nil
	case KeyLogFormat:
		return s.LogFormat, nil
	default:
		return "", unknownKey(key)
	}
}

// Set writes key to the config file at path, creating the file if needed.
// Other keys in the file are kept. Dependencies take a comma-separated list.
func Set(path, key, value string) error {
	if !slices.Contains(Keys, key) {
		return unknownKey(key)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	switch key {
	case KeyPort:
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("invalid %s %q: must be a number between 1 and 65535", KeyPort, value)
		}
		v.Set(key, port)
	case KeyDependencies:
		deps := splitList(value)
		if len(deps) == 0 {
			return fmt.Errorf("%s must list at least one package", KeyDependencies)
		}
		v.Set(key, deps)
	default:
		v.Set(key, value)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys, ", "))
}
