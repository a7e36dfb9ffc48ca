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

// Package strategy provides the kind sources a resolver consults, in the
// order the default builder chains them:
//
//   - Kinded: the tag an entity type reports about itself.
//   - Catalog: an explicit tag registered for a type.
//   - Derived: a "pkg.Type" tag computed from the type name, for values
//     that are neither. Containers never rely on it since their entity
//     types are always Kinded.
package strategy
