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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/mid/apis"
	"dirpx.dev/mid/catalog"
	"dirpx.dev/mid/logging"
	"dirpx.dev/mid/registry"
	"dirpx.dev/mid/resolver"
	"dirpx.dev/mid/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildCounters returns prev when it is set, so issued ids survive
// reconfiguration. Otherwise it creates a fresh registry logging to log.
func (b *builder) BuildCounters(_ apis.Config, prev apis.Counters, log *zap.Logger) apis.Counters {
	if prev != nil {
		return prev
	}
	return registry.New(registry.WithLogger(log))
}

// BuildCatalog builds a new apis.Catalog for cfg. Entries of prev, if
// any, are copied into it; an entry the new catalog rejects is logged and
// dropped.
func (b *builder) BuildCatalog(cfg apis.Config, prev apis.Catalog, log *zap.Logger) apis.Catalog {
	ncat := catalog.New(cfg)
	if prev == nil {
		return ncat
	}
	log = logging.OrNop(log)
	for _, e := range prev.Entries() {
		if err := ncat.Register(e.Type, e.Tag); err != nil {
			log.Debug("catalog entry dropped",
				zap.Stringer("type", e.Type),
				zap.Stringer("kind", e.Tag),
				zap.Error(err),
			)
		}
	}
	return ncat
}

// BuildResolver builds the default chain: Kinded -> Catalog -> Derived.
// The derived fallback is left out when cfg.DeriveKinds is off.
func (b *builder) BuildResolver(cfg apis.Config, cat apis.Catalog) apis.Resolver {
	sources := []apis.KindSource{
		strategy.NewKindedSource(),
		strategy.NewCatalogSource(cat),
	}
	if cfg.DeriveKinds {
		sources = append(sources, strategy.NewDerivedSource(cfg))
	}
	return resolver.New(sources...)
}
