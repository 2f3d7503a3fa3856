// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/barbgs/redux-todo/internal/todo"
)

const (
	fileName = "config.yaml"
	appDir   = "redux-todo"

	EnvPath  = "REDUX_TODO_CONFIG"
	EnvTheme = "REDUX_TODO_THEME"
	EnvDebug = "REDUX_TODO_DEBUG"
)

// Config is the on-disk settings. Every field is optional.
type Config struct {
	Theme   string `yaml:"theme"`
	Filter  string `yaml:"filter"`
	LogFile string `yaml:"log_file"`
}

// Path returns the config file location: $REDUX_TODO_CONFIG, else
// $XDG_CONFIG_HOME/redux-todo/config.yaml, else ~/.config/redux-todo/config.yaml.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDir, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".config", appDir, fileName), nil
}

// Load reads the config at path and applies environment overrides. A
// missing file yields the zero Config; an empty path means Path().
func Load(path string) (Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	var c Config
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
		}
	}

	if t := strings.TrimSpace(os.Getenv(EnvTheme)); t != "" {
		c.Theme = t
	}
	if l := strings.TrimSpace(os.Getenv(EnvDebug)); l != "" {
		c.LogFile = l
	}
	if _, err := c.InitialFilter(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// InitialFilter is the filter the todo view starts with.
func (c Config) InitialFilter() (todo.Filter, error) {
	if strings.TrimSpace(c.Filter) == "" {
		return todo.ShowAll, nil
	}
	return todo.ParseFilter(c.Filter)
}
