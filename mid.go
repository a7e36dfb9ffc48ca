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

package mid

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/mid/apis"
	"dirpx.dev/mid/builder"
	"dirpx.dev/mid/config"
	"dirpx.dev/mid/logging"
	"dirpx.dev/mid/managed"
	"dirpx.dev/mid/scope"
)

// init publishes the default state.
func init() {
	s := &state{cfg: config.DefaultConfig(), log: zap.NewNop()}
	b := builder.New()
	s.cnt = b.BuildCounters(s.cfg, nil, s.log)
	s.cat = b.BuildCatalog(s.cfg, nil, s.log)
	s.res = b.BuildResolver(s.cfg, s.cat)
	s.bld = b
	st.Store(s)
}

var (
	// ErrNilCounters is the panic value when a builder returns nil counters.
	ErrNilCounters = errors.New("mid: builder returned nil counters")
	// ErrNilCatalog is the panic value when a builder returns a nil catalog.
	ErrNilCatalog = errors.New("mid: builder returned nil catalog")
	// ErrNilResolver is the panic value when a builder returns a nil resolver.
	ErrNilResolver = errors.New("mid: builder returned nil resolver")
)

// Next draws the next id for (s, kind) from the shared counters.
func Next(s *scope.Token, kind apis.KindTag) uint64 {
	return st.Load().cnt.Next(s, kind)
}

// Latest returns the most recently issued id for (s, kind) from the shared counters.
func Latest(s *scope.Token, kind apis.KindTag) (uint64, bool) {
	return st.Load().cnt.Latest(s, kind)
}

// KindOf resolves the kind tag of v using the shared resolver.
func KindOf(v any) (apis.KindTag, bool) {
	return st.Load().res.KindOf(v)
}

// KindFor resolves the kind tag of T using the shared resolver.
func KindFor[T any]() (apis.KindTag, bool) {
	return st.Load().res.KindOfType(reflect.TypeFor[T]())
}

// RegisterKind records tag as the kind of T in the shared catalog.
func RegisterKind[T any](tag apis.KindTag) error {
	return st.Load().cat.Register(reflect.TypeFor[T](), tag)
}

// NewContainer creates a container bound to (s, kind) on the shared
// counters, configured with the shared config and logger. opts are
// applied last.
func NewContainer[E apis.ManagedID](s *scope.Token, kind apis.KindTag, opts ...managed.Option) (*managed.Container[E], error) {
	cur := st.Load()
	return managed.NewContainer[E](cur.cnt, s, kind, cur.options(opts)...)
}

// NewContainerFor creates a container on the shared counters bound to the
// kind the shared resolver finds for E, which is E's own KindTag with the
// default builder.
func NewContainerFor[E apis.ManagedID](s *scope.Token, opts ...managed.Option) (*managed.Container[E], error) {
	cur := st.Load()
	return managed.NewContainerFor[E](cur.cnt, s, cur.res, cur.options(opts)...)
}

// NewFactory creates a factory numbering under s on the shared counters.
func NewFactory[E managed.Duplicable[E]](s *scope.Token, opts ...managed.Option) (*managed.Factory[E], error) {
	cur := st.Load()
	return managed.NewFactory[E](cur.cnt, s, cur.options(opts)...)
}

// LoadConfig reads a TOML or YAML config file and applies it with Configure.
func LoadConfig(path string) error {
	f, err := config.Load(path)
	if err != nil {
		return err
	}
	return Configure(f)
}

// Configure builds a logger from f.Logging, then applies f's kind settings
// and the logger to the shared state.
func Configure(f *config.File) error {
	log, err := logging.New(f.Logging)
	if err != nil {
		return fmt.Errorf("mid: build logger: %w", err)
	}
	SetLogger(log)
	SetConfig(f.Config())
	return nil
}

// Config returns the shared configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the shared configuration and rebuilds the layers that
// are not pinned. Counters are handed to the builder as prev, so the default
// builder keeps every issued id.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	b := old.bld

	ncnt := old.cnt
	if !old.pcnt {
		ncnt = b.BuildCounters(cfg, old.cnt, old.log)
	}
	ncat := old.cat
	if !old.pcat {
		ncat = b.BuildCatalog(cfg, old.cat, old.log)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, ncat)
	}

	publish(old.with(func(s *state) {
		s.cfg, s.cnt, s.cat, s.res = cfg, ncnt, ncat, nres
	}))
}

// Logger returns the shared logger.
func Logger() *zap.Logger {
	return st.Load().log
}

// SetLogger replaces the shared logger. It is used by counters built
// afterwards and by containers and factories created through this package.
func SetLogger(l *zap.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(old.with(func(s *state) { s.log = logging.OrNop(l) }))
}

// Counters returns the shared counters.
func Counters() apis.Counters {
	return st.Load().cnt
}

// SetCounters replaces and pins the shared counters.
func SetCounters(c apis.Counters) {
	if c == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(old.with(func(s *state) { s.cnt, s.pcnt = c, true }))
}

// Catalog returns the shared catalog.
func Catalog() apis.Catalog {
	return st.Load().cat
}

// SetCatalog replaces and pins the shared catalog. The resolver is rebuilt
// unless pinned.
func SetCatalog(c apis.Catalog) {
	if c == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nres := old.res
	if !old.pres {
		nres = old.bld.BuildResolver(old.cfg, c)
	}
	publish(old.with(func(s *state) { s.cat, s.pcat, s.res = c, true, nres }))
}

// Resolver returns the shared resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver replaces and pins the shared resolver.
func SetResolver(r apis.Resolver) {
	if r == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(old.with(func(s *state) { s.res, s.pres = r, true }))
}

// Builder returns the shared builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the builder and rebuilds the layers that are not pinned.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	ncnt := old.cnt
	if !old.pcnt {
		ncnt = b.BuildCounters(old.cfg, old.cnt, old.log)
	}
	ncat := old.cat
	if !old.pcat {
		ncat = b.BuildCatalog(old.cfg, old.cat, old.log)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, ncat)
	}
	publish(old.with(func(s *state) {
		s.bld, s.cnt, s.cat, s.res = b, ncnt, ncat, nres
	}))
}

// SetAll is the hard reset: it replaces every layer at once. Nil cfg, log
// and bld keep the current value. Nil counters, catalog or resolver are
// built from scratch (no migration) and left unpinned; non-nil ones are pinned.
// Mainly used by tests to get a clean deterministic state.
func SetAll(cfg *apis.Config, log *zap.Logger, cnt apis.Counters, cat apis.Catalog, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nlog := old.log
	if log != nil {
		nlog = log
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	ncnt, pcnt := cnt, cnt != nil
	if ncnt == nil {
		ncnt = nbld.BuildCounters(ncfg, nil, nlog)
	}
	ncat, pcat := cat, cat != nil
	if ncat == nil {
		ncat = nbld.BuildCatalog(ncfg, nil, nlog)
	}
	nres, pres := res, res != nil
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, ncat)
	}

	publish(&state{
		cfg: ncfg, log: nlog, bld: nbld,
		cnt: ncnt, cat: ncat, res: nres,
		pcnt: pcnt, pcat: pcat, pres: pres,
	})
}

// IsCountersPinned reports whether the shared counters are pinned.
func IsCountersPinned() bool { return st.Load().pcnt }

// IsCatalogPinned reports whether the shared catalog is pinned.
func IsCatalogPinned() bool { return st.Load().pcat }

// IsResolverPinned reports whether the shared resolver is pinned.
func IsResolverPinned() bool { return st.Load().pres }

// UnpinCounters lets the builder manage the shared counters again.
func UnpinCounters() { setPins(func(s *state) { s.pcnt = false }) }

// UnpinCatalog lets the builder rebuild the shared catalog again.
func UnpinCatalog() { setPins(func(s *state) { s.pcat = false }) }

// UnpinResolver lets the builder rebuild the shared resolver again.
func UnpinResolver() { setPins(func(s *state) { s.pres = false }) }

func setPins(mut func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()
	publish(st.Load().with(mut))
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the shared state.
var st atomic.Pointer[state]

// state is the shared snapshot.
// Immutable once published via st.Store; writers create a new state and
// swap it atomically.
type state struct {
	cfg apis.Config
	log *zap.Logger
	cnt apis.Counters
	cat apis.Catalog
	res apis.Resolver
	bld apis.Builder
	// pinned layers are never rebuilt by SetConfig/SetBuilder.
	pcnt, pcat, pres bool
}

// with returns a copy of s modified by mut.
func (s *state) with(mut func(*state)) *state {
	n := *s
	mut(&n)
	return &n
}

// options prepends the shared config and logger to opts.
func (s *state) options(opts []managed.Option) []managed.Option {
	out := make([]managed.Option, 0, len(opts)+2)
	out = append(out, managed.WithConfig(s.cfg), managed.WithLogger(s.log))
	return append(out, opts...)
}

// publish checks the snapshot and stores it.
func publish(s *state) {
	if s.cnt == nil {
		panic(ErrNilCounters)
	}
	if s.cat == nil {
		panic(ErrNilCatalog)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
}
