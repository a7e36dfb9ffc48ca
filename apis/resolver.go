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

package apis

import "reflect"

// KindSource maps a Go type to a kind tag. A Resolver asks its sources in
// order and stops at the first one that knows the type.
type KindSource interface {
	KindFor(t reflect.Type) (tag KindTag, ok bool)
}

// Resolver derives kind tags for entities and entity types.
// Its configuration is fixed when it is built.
type Resolver interface {
	// KindOf returns the tag of v. A Kinded value reports its own tag.
	KindOf(v any) (tag KindTag, ok bool)

	// KindOfType returns the tag that values of type t carry.
	KindOfType(t reflect.Type) (tag KindTag, ok bool)
}
