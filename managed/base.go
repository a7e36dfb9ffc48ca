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
	"dirpx.dev/mid/apis"
	"dirpx.dev/mid/scope"
)

// Base holds the id of a managed entity. Embed it and implement KindTag
// and RecreateID on the outer type:
//
//	type Node struct {
//		managed.Base
//	}
//
//	func (*Node) KindTag() apis.KindTag { return NodeKind }
//
//	func (n *Node) RecreateID(c apis.Counters, s *scope.Token) uint64 {
//		return n.Recreate(c, s, NodeKind)
//	}
type Base struct {
	id uint64
}

// NewBase draws the first id of an entity of the given kind.
func NewBase(counters apis.Counters, s *scope.Token, kind apis.KindTag) Base {
	return Base{id: counters.Next(s, kind)}
}

// ID returns the current id.
func (b *Base) ID() uint64 {
	return b.id
}

// Recreate draws a new id for kind under s, stores and returns it.
func (b *Base) Recreate(counters apis.Counters, s *scope.Token, kind apis.KindTag) uint64 {
	b.id = counters.Next(s, kind)
	return b.id
}
