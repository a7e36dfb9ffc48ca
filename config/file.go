/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dirpx.dev/mid/apis"
)

// ErrUnsupportedFormat is returned by Load for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("mid(config): unsupported config file format")

// File is the on-disk configuration of a process embedding mid.
//
//	[kinds]
//	max_indirect = 2
//	derive = true
//	strict = true
//
//	[logging]
//	level = "info"
//	format = "console"
type File struct {
	Kinds   Kinds   `toml:"kinds" yaml:"kinds"`
	Logging Logging `toml:"logging" yaml:"logging"`
}

// Kinds mirrors apis.Config.
type Kinds struct {
	MaxIndirect int  `toml:"max_indirect" yaml:"max_indirect"`
	Derive      bool `toml:"derive" yaml:"derive"`
	Strict      bool `toml:"strict" yaml:"strict"`
}

// Logging selects the zap logger built by the logging package.
type Logging struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// DefaultFile returns the values used for keys missing from a config file.
func DefaultFile() *File {
	return &File{
		Kinds: Kinds{
			MaxIndirect: DefaultMaxIndirect,
			Derive:      DefaultDeriveKinds,
			Strict:      DefaultStrictKinds,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) config file on top of DefaultFile.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultFile()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Config converts the [kinds] section into an apis.Config.
func (f *File) Config() apis.Config {
	return NewConfig(
		WithMaxIndirect(f.Kinds.MaxIndirect),
		WithDeriveKinds(f.Kinds.Derive),
		WithStrictKinds(f.Kinds.Strict),
	)
}
