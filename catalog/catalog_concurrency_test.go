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

package catalog_test

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/mid/apis"
	"dirpx.dev/mid/catalog"
	"dirpx.dev/mid/config"
)

type K0 struct{}
type K1 struct{}
type K2 struct{}
type K3 struct{}
type K4 struct{}
type K5 struct{}

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	types := []reflect.Type{
		reflect.TypeOf(K0{}), reflect.TypeOf(K1{}), reflect.TypeOf(K2{}),
		reflect.TypeOf(K3{}), reflect.TypeOf(K4{}), reflect.TypeOf(K5{}),
	}
	tags := make([]apis.KindTag, len(types))
	for i := range types {
		tags[i] = apis.KindTag(fmt.Sprintf("kind.k%d", i))
		if err := cat.Register(types[i], tags[i]); err != nil {
			t.Fatalf("register %s: %v", types[i], err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				tt := types[i%len(types)]
				if got, ok := cat.Lookup(tt); !ok || got == "" {
					t.Errorf("lookup failed for %v: ok=%v got=%q", tt, ok, got)
					return
				}
				_ = cat.Count()
				_ = cat.Entries()
			}
		}()
	}

	// Writers (idempotent re-register)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(types)
				_ = cat.Register(types[j], tags[j])
			}
		}(w)
	}

	wg.Wait()

	if cat.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", cat.Count(), len(types))
	}
	got := map[reflect.Type]apis.KindTag{}
	for _, e := range cat.Entries() {
		got[e.Type] = e.Tag
	}
	for i, tt := range types {
		if got[tt] != tags[i] {
			t.Fatalf("entry mismatch for %v: got %q want %q", tt, got[tt], tags[i])
		}
	}
}

var _ apis.Catalog = catalog.New(config.DefaultConfig())
