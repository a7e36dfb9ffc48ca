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

// Counters hands out ids per (scope, kind) pair.
//
// For a given pair, successive Next calls return 0, 1, 2, ... with no
// repeats and no gaps until the pair is reset or rewound. Pairs are
// independent of each other, including pairs that share a kind but
// live in different scopes.
//
// Implementations MUST be safe for concurrent use.
type Counters interface {
	// Next returns the current value for the pair and advances it by one.
	// The first call for a fresh pair returns 0.
	Next(s *scope.Token, kind KindTag) uint64
	// Latest returns the most recently issued value for the pair. ok is
	// false when nothing was issued since the pair was created, reset or rewound.
	Latest(s *scope.Token, kind KindTag) (id uint64, ok bool)
	// Reset forgets every counter of the scope.
	Reset(s *scope.Token)
	// ResetKind forgets a single pair; its next Next call returns 0.
	ResetKind(s *scope.Token, kind KindTag)
	// RewindTo sets the pair so that its next Next call returns offset.
	RewindTo(s *scope.Token, kind KindTag, offset uint64)
	// Entries returns a snapshot of all live counters (order is unspecified).
	Entries() []CounterEntry
	// Count returns the number of live counters.
	Count() int
}

// CounterEntry describes one live counter in a Counters snapshot.
type CounterEntry struct {
	Scope *scope.Token
	Kind  KindTag
	// Next is the value the following Next call will return.
	Next uint64
	// Latest is the most recently issued value, valid when Issued is true.
	Latest uint64
	Issued bool
}
