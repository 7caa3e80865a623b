package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config is the content of the configuration file.
type config struct {
	// Prompt is the interactive prompt.
	Prompt string `yaml:"prompt"`
	// History is the history file, overridden by the flag.
	History string `yaml:"history"`
	// Given is a list of bindings evaluated before any input.
	Given []string `yaml:"given"`
}

const defaultPrompt = ">>> "

// loadConfig reads the configuration file at path. If required is false, a
// missing file gives the defaults.
func loadConfig(path string, required bool) (*config, error) {
	cfg := config{Prompt: defaultPrompt}
	if path == "" {
		return &cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, errors.Wrap(err, "reading config")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return &cfg, nil
}

// configPath is the default configuration file, or empty if there is no user
// config directory.
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "qalqulator", "config.yaml")
}

// historyPath picks the history file from the flag, then the config, then
// the user data directory. The result is empty if none is available.
func historyPath(flag, cfg string) string {
	switch {
	case flag != "":
		return flag
	case cfg != "":
		return cfg
	}
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "qalqulator", "history.txt")
}
