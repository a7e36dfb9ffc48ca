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

import "go.uber.org/zap"

// Builder composes Counters, Catalog and Resolver from a Config.
// prev holds the instance being replaced, if any.
type Builder interface {
	// BuildCounters constructs the counter registry. Counters hold no
	// configuration-dependent state, so implementations may return prev.
	BuildCounters(cfg Config, prev Counters, log *zap.Logger) Counters
	// BuildCatalog constructs a Catalog for cfg, carrying over the entries of prev.
	BuildCatalog(cfg Config, prev Catalog, log *zap.Logger) Catalog
	// BuildResolver constructs a Resolver for cfg over cat.
	BuildResolver(cfg Config, cat Catalog) Resolver
}
