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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/mid/apis"
	uref "dirpx.dev/mid/utils/reflect"
)

type station struct{}

type G[T any] struct{}

// track reports its kind through a pointer receiver.
type track struct{ gauge int }

func (t *track) KindTag() apis.KindTag {
	if t.gauge != 0 {
		return "rail.track.custom"
	}
	return "rail.track"
}

// signal reports its kind through a value receiver.
type signal struct{}

func (signal) KindTag() apis.KindTag { return "rail.signal" }

type tagger interface{ KindTag() apis.KindTag }

func TestIndirect(t *testing.T) {
	want := reflect.TypeFor[station]()
	cases := []struct {
		name string
		typ  reflect.Type
		max  int
	}{
		{"named", reflect.TypeFor[station](), 0},
		{"pointer", reflect.TypeFor[*station](), 1},
		{"double pointer", reflect.TypeFor[**station](), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Indirect(tc.typ, tc.max)
			if err != nil {
				t.Fatalf("Indirect(%v, %d): %v", tc.typ, tc.max, err)
			}
			if got != want {
				t.Fatalf("Indirect(%v, %d) = %v, want %v", tc.typ, tc.max, got, want)
			}
		})
	}

	if got, err := uref.Indirect(reflect.TypeFor[*G[int]](), 1); err != nil || got.Name() == "" {
		t.Fatalf("Indirect(*G[int]) = (%v,%v)", got, err)
	}
}

func TestIndirect_Errors(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		max  int
		want error
	}{
		{"nil", nil, 2, uref.ErrNilType},
		{"slice", reflect.TypeFor[[]station](), 2, uref.ErrUnnamedType},
		{"map", reflect.TypeFor[map[string]station](), 2, uref.ErrUnnamedType},
		{"anonymous struct", reflect.TypeFor[*struct{}](), 2, uref.ErrUnnamedType},
		{"pointer with zero max", reflect.TypeFor[*station](), 0, uref.ErrTooIndirect},
		{"too deep", reflect.TypeFor[***station](), 2, uref.ErrTooIndirect},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uref.Indirect(tc.typ, tc.max); !errors.Is(err, tc.want) {
				t.Fatalf("Indirect(%v, %d) error = %v, want %v", tc.typ, tc.max, err, tc.want)
			}
		})
	}
}

func TestZeroKinded(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want apis.KindTag
		ok   bool
	}{
		{"pointer receiver via pointer", reflect.TypeFor[*track](), "rail.track", true},
		{"pointer receiver via value", reflect.TypeFor[track](), "rail.track", true},
		{"value receiver", reflect.TypeFor[signal](), "rail.signal", true},
		{"value receiver via pointer", reflect.TypeFor[*signal](), "rail.signal", true},
		{"not kinded", reflect.TypeFor[station](), "", false},
		{"double pointer", reflect.TypeFor[**track](), "", false},
		{"interface", reflect.TypeFor[tagger](), "", false},
		{"nil", nil, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, ok := uref.ZeroKinded(tc.typ)
			if ok != tc.ok {
				t.Fatalf("ZeroKinded(%v) ok = %v, want %v", tc.typ, ok, tc.ok)
			}
			if ok && k.KindTag() != tc.want {
				t.Fatalf("ZeroKinded(%v).KindTag() = %q, want %q", tc.typ, k.KindTag(), tc.want)
			}
		})
	}
}
