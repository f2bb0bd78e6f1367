//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads the editor settings from a TOML file.
//
//	slack = 32768              # minimum growth of a text buffer, in bytes
//	log = "/home/me/.gtedlog"  # log file
//	color = true               # colored screen theme
//	system_clipboard = false   # mirror the clipboard to the system clipboard
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/timburks/gted/pkg/buffer"
)

// FileName is the name of the settings file in the home directory.
const FileName = ".gted.toml"

// Config holds the editor settings.
type Config struct {
	Slack           int    `toml:"slack"`
	Log             string `toml:"log"`
	Color           bool   `toml:"color"`
	SystemClipboard bool   `toml:"system_clipboard"`
}

// A ParseError reports a malformed settings file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	c := Config{Slack: buffer.DefaultSlack, Color: true, Log: ".gtedlog"}
	if home, err := os.UserHomeDir(); err == nil {
		c.Log = filepath.Join(home, ".gtedlog")
	}
	return c
}

// DefaultPath returns the path of the settings file in the home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads settings from the file at path over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}
	return c, nil
}

// Parse reads settings from r over the defaults. Unknown keys are errors.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(&c); err != nil {
		return Default(), err
	}
	if c.Slack <= 0 {
		return Default(), fmt.Errorf("slack must be positive, got %d", c.Slack)
	}
	return c, nil
}
