/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in
// the user scope. Environment variables are treated as read-only overrides
// at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type FontsConfig struct {
	// Dirs are extra font directories searched in addition to the
	// platform defaults.
	Dirs []string `yaml:"dirs"`
	// CacheDir holds the font index database. Empty selects a per-user
	// cache directory.
	CacheDir string `yaml:"cache_dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Fonts         FontsConfig   `yaml:"fonts"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Fonts:         FontsConfig{Dirs: nil, CacheDir: ""},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvFontDirs = "TIMG_FONT_DIRS" // os.PathListSeparator separated
	EnvCacheDir = "TIMG_CACHE_DIR"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "TIMG_LOG_LEVEL"
	EnvLogFormat = "TIMG_LOG_FORMAT"
	EnvLogSource = "TIMG_LOG_SOURCE"
	EnvLogFile   = "TIMG_LOG_FILE"
)

// Path returns the per-user config file path.
func Path() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "textimg")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "textimg")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "textimg")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// CachePath returns the effective font cache directory for cfg.
func (c AppConfig) CachePath() string {
	if strings.TrimSpace(c.Fonts.CacheDir) != "" {
		return c.Fonts.CacheDir
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "textimg")
	}
	return filepath.Join(os.TempDir(), "textimg")
}

// Load reads the user config file (if present), applies defaults, and
// merges environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if len(src.Fonts.Dirs) > 0 {
		dst.Fonts.Dirs = append([]string(nil), src.Fonts.Dirs...)
	}
	if strings.TrimSpace(src.Fonts.CacheDir) != "" {
		dst.Fonts.CacheDir = strings.TrimSpace(src.Fonts.CacheDir)
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvFontDirs)); v != "" {
		var dirs []string
		for _, d := range filepath.SplitList(v) {
			if d = strings.TrimSpace(d); d != "" {
				dirs = append(dirs, d)
			}
		}
		cfg.Fonts.Dirs = dirs
	}
	if v := strings.TrimSpace(os.Getenv(EnvCacheDir)); v != "" {
		cfg.Fonts.CacheDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}
