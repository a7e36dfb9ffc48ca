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

package registry

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/mid/apis"
	"dirpx.dev/mid/logging"
	"dirpx.dev/mid/scope"
)

var (
	// ErrNilScope is the panic value for a nil *scope.Token.
	ErrNilScope = errors.New("mid(registry): nil scope provided")
	// ErrEmptyKind is the panic value for an empty kind tag.
	ErrEmptyKind = errors.New("mid(registry): empty kind tag provided")
)

// Option configures a Counters instance.
type Option func(*Counters)

// WithLogger sets the logger used for reset and rewind events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Counters) {
		c.log = logging.OrNop(l)
	}
}

// New constructs an empty counter registry.
func New(opts ...Option) *Counters {
	c := &Counters{log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Counters is the default apis.Counters implementation.
//
// Each scope owns its own lock, so callers numbering unrelated scopes do
// not contend. Scopes are never dropped once seen; Reset only empties them.
type Counters struct {
	// scopes maps *scope.Token to *scoped.
	scopes sync.Map
	log    *zap.Logger
}

// Ensure Counters implements apis.Counters.
var _ apis.Counters = (*Counters)(nil)

// scoped holds the counters of one scope.
type scoped struct {
	mu    sync.Mutex
	kinds map[apis.KindTag]*counter
}

type counter struct {
	next   uint64
	latest uint64
	issued bool
}

// forScope returns the counters of s, creating them on first use.
func (c *Counters) forScope(s *scope.Token) *scoped {
	if s == nil {
		panic(ErrNilScope)
	}
	if v, ok := c.scopes.Load(s); ok {
		return v.(*scoped)
	}
	v, _ := c.scopes.LoadOrStore(s, &scoped{kinds: make(map[apis.KindTag]*counter)})
	return v.(*scoped)
}

func checkKind(kind apis.KindTag) {
	if kind == "" {
		panic(ErrEmptyKind)
	}
}

// Next returns the current value for (s, kind) and advances it by one.
// Panics with ErrNilScope or ErrEmptyKind on invalid arguments.
func (c *Counters) Next(s *scope.Token, kind apis.KindTag) uint64 {
	checkKind(kind)
	sc := c.forScope(s)

	sc.mu.Lock()
	defer sc.mu.Unlock()

	ctr, ok := sc.kinds[kind]
	if !ok {
		ctr = &counter{}
		sc.kinds[kind] = ctr
	}
	id := ctr.next
	ctr.next++
	ctr.latest, ctr.issued = id, true
	return id
}

// Latest returns the most recently issued value for (s, kind).
func (c *Counters) Latest(s *scope.Token, kind apis.KindTag) (uint64, bool) {
	checkKind(kind)
	sc := c.forScope(s)

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if ctr, ok := sc.kinds[kind]; ok && ctr.issued {
		return ctr.latest, true
	}
	return 0, false
}

// Reset forgets every counter of s.
func (c *Counters) Reset(s *scope.Token) {
	sc := c.forScope(s)

	sc.mu.Lock()
	n := len(sc.kinds)
	clear(sc.kinds)
	sc.mu.Unlock()

	c.log.Debug("counters reset", zap.Stringer("scope", s), zap.Int("kinds", n))
}

// ResetKind forgets the counter of (s, kind).
func (c *Counters) ResetKind(s *scope.Token, kind apis.KindTag) {
	checkKind(kind)
	sc := c.forScope(s)

	sc.mu.Lock()
	delete(sc.kinds, kind)
	sc.mu.Unlock()

	c.log.Debug("counter reset", zap.Stringer("scope", s), zap.Stringer("kind", kind))
}

// RewindTo makes the next Next call for (s, kind) return offset.
func (c *Counters) RewindTo(s *scope.Token, kind apis.KindTag, offset uint64) {
	checkKind(kind)
	sc := c.forScope(s)

	sc.mu.Lock()
	sc.kinds[kind] = &counter{next: offset}
	sc.mu.Unlock()

	c.log.Debug("counter rewound",
		zap.Stringer("scope", s),
		zap.Stringer("kind", kind),
		zap.Uint64("offset", offset),
	)
}

// Entries returns a snapshot of all live counters (order is unspecified).
func (c *Counters) Entries() []apis.CounterEntry {
	var out []apis.CounterEntry
	c.scopes.Range(func(key, value any) bool {
		s, sc := key.(*scope.Token), value.(*scoped)
		sc.mu.Lock()
		for kind, ctr := range sc.kinds {
			out = append(out, apis.CounterEntry{
				Scope:  s,
				Kind:   kind,
				Next:   ctr.next,
				Latest: ctr.latest,
				Issued: ctr.issued,
			})
		}
		sc.mu.Unlock()
		return true
	})
	return out
}

// Count returns the number of live counters.
func (c *Counters) Count() int {
	n := 0
	c.scopes.Range(func(_, value any) bool {
		sc := value.(*scoped)
		sc.mu.Lock()
		n += len(sc.kinds)
		sc.mu.Unlock()
		return true
	})
	return n
}

// String summarizes the registry for debugging.
func (c *Counters) String() string {
	return fmt.Sprintf("Counters(%d)", c.Count())
}
