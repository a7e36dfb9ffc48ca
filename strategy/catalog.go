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
	"reflect"

	"dirpx.dev/mid/apis"
)

// NewCatalogSource returns a source backed by cat. A nil catalog knows no types.
func NewCatalogSource(cat apis.Catalog) apis.KindSource {
	return catalogSource{cat: cat}
}

type catalogSource struct {
	cat apis.Catalog
}

// KindFor looks t up in the catalog.
func (s catalogSource) KindFor(t reflect.Type) (apis.KindTag, bool) {
	if t == nil || s.cat == nil {
		return "", false
	}
	return s.cat.Lookup(t)
}
