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

import "dirpx.dev/mid/scope"

// ManagedID is the contract of an entity whose id is assigned, and can be
// regenerated, by a Counters instance rather than chosen by the entity.
type ManagedID interface {
	Kinded

	// ID returns the current id.
	ID() uint64

	// RecreateID draws counters.Next(s, KindTag()), stores it as the new id
	// and returns it.
	RecreateID(counters Counters, s *scope.Token) uint64
}

// ChildResetter is implemented by composite entities that own nested
// managed containers. ResetChildren resets each of those containers.
type ChildResetter interface {
	ResetChildren()
}

// Copier produces typed duplicates of an entity. Copies keep the source id;
// callers that need a fresh id recreate it afterwards.
type Copier[E any] interface {
	// ShallowCopy duplicates the entity's own fields and shares owned
	// sub-structures with the source.
	ShallowCopy() E
	// DeepCopy duplicates the entity and every sub-structure it owns.
	DeepCopy() E
}
