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
	uref "dirpx.dev/mid/utils/reflect"
)

// NewKindedSource returns the source that asks the type itself: types
// implementing apis.Kinded (directly or through their pointer) report
// their tag from a zero value.
func NewKindedSource() apis.KindSource {
	return kindedSource{}
}

type kindedSource struct{}

// KindFor returns the tag reported by a zero value of t. An empty tag
// falls through.
func (kindedSource) KindFor(t reflect.Type) (apis.KindTag, bool) {
	k, ok := uref.ZeroKinded(t)
	if !ok {
		return "", false
	}
	tag := k.KindTag()
	return tag, tag != ""
}
