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

// Config holds the knobs of kind resolution and container checks.
// It is a comparable value; nothing mutates it after construction.
type Config struct {
	// MaxIndirect is how many pointer levels are stripped from a type
	// before it is looked up (*Node and **Node both map to Node with 2).
	MaxIndirect int

	// DeriveKinds lets the resolver fall back to a "pkg.Type" tag for
	// types that are neither Kinded nor catalogued.
	DeriveKinds bool

	// StrictKinds makes bound containers refuse entities whose KindTag
	// differs from the container's binding.
	StrictKinds bool
}
