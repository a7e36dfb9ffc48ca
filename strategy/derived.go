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

package strategy

import (
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/mid/apis"
	uref "dirpx.dev/mid/utils/reflect"
)

// NewDerivedSource returns the fallback source: the tag of a named type is
// its package name and type name, "pkg.Type", with generic type arguments
// removed. Up to cfg.MaxIndirect pointer levels are stripped first.
// Predeclared types (int, string) and unnamed types get no tag.
//
// Derived tags follow the Go identifier, so renaming a type renumbers it
// under a new kind. Entities should implement apis.Kinded instead.
func NewDerivedSource(cfg apis.Config) apis.KindSource {
	return &derivedSource{maxIndirect: cfg.MaxIndirect}
}

type derivedSource struct {
	maxIndirect int
	tags        sync.Map // reflect.Type -> apis.KindTag ("" when none)
}

// KindFor derives the tag for t. Results are memoized per type.
func (s *derivedSource) KindFor(t reflect.Type) (apis.KindTag, bool) {
	if t == nil {
		return "", false
	}
	if v, ok := s.tags.Load(t); ok {
		tag := v.(apis.KindTag)
		return tag, tag != ""
	}
	tag := s.derive(t)
	s.tags.Store(t, tag)
	return tag, tag != ""
}

func (s *derivedSource) derive(t reflect.Type) apis.KindTag {
	named, err := uref.Indirect(t, s.maxIndirect)
	if err != nil || named.PkgPath() == "" {
		return ""
	}
	name := named.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return apis.KindTag(path.Base(named.PkgPath()) + "." + name)
}
