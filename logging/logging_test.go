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

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/mid/config"
	"dirpx.dev/mid/logging"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Logging
		want zapcore.Level
	}{
		{"debug console", config.Logging{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"warn json", config.Logging{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{"unknown falls back to info", config.Logging{Level: "chatty"}, zapcore.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := logging.New(tc.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tc.want))
			if tc.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tc.want-1))
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logging.OrNop(nil))
	l, err := logging.New(config.Logging{Level: "info"})
	require.NoError(t, err)
	assert.Same(t, l, logging.OrNop(l))
}
