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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnvOverridesFontDirs(t *testing.T) {
	dirs := strings.Join([]string{"/tmp/fonts-a", "/tmp/fonts-b"}, string(os.PathListSeparator))
	t.Setenv(EnvFontDirs, dirs)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Fonts.Dirs) != 2 || cfg.Fonts.Dirs[0] != "/tmp/fonts-a" || cfg.Fonts.Dirs[1] != "/tmp/fonts-b" {
		t.Fatalf("Fonts.Dirs = %v, want the two env dirs", cfg.Fonts.Dirs)
	}
}

func TestEnvOverridesCacheDir(t *testing.T) {
	t.Setenv(EnvCacheDir, "/tmp/timg-cache")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Fonts.CacheDir != "/tmp/timg-cache" {
		t.Fatalf("Fonts.CacheDir = %q, want env override", cfg.Fonts.CacheDir)
	}
	if cfg.CachePath() != "/tmp/timg-cache" {
		t.Fatalf("CachePath() = %q, want env override", cfg.CachePath())
	}
}

func TestCachePathDefaultNonEmpty(t *testing.T) {
	cfg := Defaults()
	p := cfg.CachePath()
	if p == "" {
		t.Fatalf("CachePath() is empty")
	}
	if filepath.Base(p) != "textimg" {
		t.Fatalf("CachePath() = %q, want a textimg cache dir", p)
	}
}

func TestMergeIncludesFonts(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Fonts.Dirs = []string{"/opt/fonts"}
	src.Fonts.CacheDir = "/var/cache/timg"
	mergeInto(&dst, &src)
	if len(dst.Fonts.Dirs) != 1 || dst.Fonts.Dirs[0] != "/opt/fonts" {
		t.Fatalf("font dirs not merged: %v", dst.Fonts.Dirs)
	}
	if dst.Fonts.CacheDir != "/var/cache/timg" {
		t.Fatalf("cache dir not merged: %q", dst.Fonts.CacheDir)
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "debug"
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "/tmp/timg.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "/tmp/timg.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogSource, "1")
	t.Setenv(EnvLogFile, "/tmp/timg-env.log")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "/tmp/timg-env.log" {
		t.Fatalf("env overrides not applied to logging: %#v", cfg.Logging)
	}
}
