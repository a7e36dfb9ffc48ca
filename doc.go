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

// Package mid provides managed ids: scoped, monotonic, per-kind numbering
// for the entities of a modelling toolkit, and containers that keep every
// entity stored under its own id.
//
// # Model
//
// An id is drawn from a counter keyed by a scope and a kind tag. A scope
// (scope.Token) is an opaque numbering namespace, typically one per model
// instance; scope.Global() is the shared one. A kind tag (apis.KindTag)
// names an entity kind, e.g. "network.node". The first id of a fresh
// (scope, kind) pair is 0, every further one is +1.
//
// Entities implement apis.ManagedID: they report their id and kind and can
// draw a new id from a counter (RecreateID). Composite entities owning
// nested containers also implement apis.ChildResetter.
//
// # Packages
//
//   - registry: the scoped counter registry (apis.Counters).
//   - keyed: an ordered map with ascending iteration.
//   - managed: Base for embedding, Container for id-keyed storage with
//     re-numbering and reset, Factory for uniquely numbered copies.
//   - catalog, strategy, resolver: derive kind tags for values and types
//     (Kinded, then explicit catalog, then "pkg.Type" reflection).
//   - config, logging: configuration values, TOML/YAML files and zap loggers.
//   - builder: builds counters, catalog and resolver from a config.
//
// # Shared instance
//
// This package holds one process-wide snapshot of config, logger, counters,
// catalog, resolver and builder for callers that do not inject their own.
// Readers load the snapshot atomically and never lock:
//
//	id := mid.Next(s, "network.node")
//	kind, ok := mid.KindOf(v)
//	nodes, err := mid.NewContainer[*Node](s, "network.node")
//
// Writers (SetConfig, SetLogger, SetBuilder, SetCounters, SetCatalog,
// SetResolver, SetAll) serialize on a mutex, build a new snapshot and
// publish it. Layers installed explicitly are pinned and survive later
// rebuilds until unpinned. The default builder hands the existing counters
// through every rebuild, so reconfiguration never re-issues an id.
//
// LoadConfig reads a TOML or YAML file with [kinds] and [logging] sections
// and applies both.
package mid
