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

package resolver

import (
	"reflect"

	"dirpx.dev/mid/apis"
)

// New returns a Resolver that asks sources in order. Nil sources are
// skipped. It is safe for concurrent use when the sources are.
func New(sources ...apis.KindSource) apis.Resolver {
	out := make([]apis.KindSource, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{sources: out}
}

type chain struct {
	sources []apis.KindSource
}

// KindOf returns v's own tag when v is apis.Kinded, otherwise the tag of
// its dynamic type.
func (c chain) KindOf(v any) (apis.KindTag, bool) {
	if v == nil {
		return "", false
	}
	if k, ok := v.(apis.Kinded); ok {
		if tag := k.KindTag(); tag != "" {
			return tag, true
		}
	}
	return c.KindOfType(reflect.TypeOf(v))
}

// KindOfType returns the first tag a source reports for t.
func (c chain) KindOfType(t reflect.Type) (apis.KindTag, bool) {
	if t == nil {
		return "", false
	}
	for _, s := range c.sources {
		if tag, ok := s.KindFor(t); ok {
			return tag, true
		}
	}
	return "", false
}
