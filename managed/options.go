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

package managed

import (
	"go.uber.org/zap"

	"dirpx.dev/mid/apis"
	"dirpx.dev/mid/config"
	"dirpx.dev/mid/logging"
)

// Option configures containers and factories.
type Option func(*options)

type options struct {
	cfg apis.Config
	log *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{cfg: config.DefaultConfig(), log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithConfig sets the configuration used for kind checks and kind resolution.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithLogger sets the logger for re-numbering, reset and overwrite events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = logging.OrNop(l)
	}
}
