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
	"dirpx.dev/mid/apis"
)

const (
	// DefaultMaxIndirect is the default for MaxIndirect.
	DefaultMaxIndirect = 2
	// DefaultDeriveKinds is the default for DeriveKinds.
	DefaultDeriveKinds = true
	// DefaultStrictKinds is the default for StrictKinds.
	// When true, bound containers refuse entities of a different kind.
	DefaultStrictKinds = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxIndirect: DefaultMaxIndirect,
		DeriveKinds: DefaultDeriveKinds,
		StrictKinds: DefaultStrictKinds,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxIndirect sets the MaxIndirect option.
// Zero means only the named type itself is accepted; a negative value
// resets to the default.
func WithMaxIndirect(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			n = DefaultMaxIndirect
		}
		c.MaxIndirect = n
	}
}

// WithDeriveKinds sets the DeriveKinds option.
func WithDeriveKinds(derive bool) Option {
	return func(c *apis.Config) {
		c.DeriveKinds = derive
	}
}

// WithStrictKinds sets the StrictKinds option.
func WithStrictKinds(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictKinds = strict
	}
}
