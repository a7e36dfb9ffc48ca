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

// Package reflect holds the type inspection shared by the catalog and the
// kind sources.
package reflect

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/mid/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("mid(reflect): nil reflect.Type provided")
	// ErrUnnamedType is returned for types with no name under their
	// pointers (anonymous structs, slices, maps, funcs).
	ErrUnnamedType = errors.New("mid(reflect): type has no name")
	// ErrTooIndirect is returned when a type has more pointer levels than allowed.
	ErrTooIndirect = errors.New("mid(reflect): too many pointer levels")
)

// Indirect strips at most max pointer levels from t and returns the named
// type underneath. Containers are not entity kinds and are never unwrapped.
func Indirect(t reflect.Type, max int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	orig := t
	for depth := 0; t.Kind() == reflect.Pointer; depth++ {
		if depth == max {
			return nil, fmt.Errorf("%w: %v (max %d)", ErrTooIndirect, orig, max)
		}
		t = t.Elem()
	}
	if t.Name() == "" {
		return nil, fmt.Errorf("%w: %v", ErrUnnamedType, orig)
	}
	return t, nil
}

var kindedType = reflect.TypeFor[apis.Kinded]()

// ZeroKinded returns a fresh zero value of t as apis.Kinded, so the kind
// tag of a type can be read without an instance. A pointer type yields a
// pointer to a new zero element; a value type whose pointer implements
// Kinded is addressed the same way. ok is false for interfaces and for
// types that do not implement Kinded.
func ZeroKinded(t reflect.Type) (k apis.Kinded, ok bool) {
	if t == nil || t.Kind() == reflect.Interface {
		return nil, false
	}
	switch {
	case t.Kind() == reflect.Pointer && t.Implements(kindedType):
		k, ok = reflect.New(t.Elem()).Interface().(apis.Kinded)
	case t.Implements(kindedType):
		k, ok = reflect.Zero(t).Interface().(apis.Kinded)
	case reflect.PointerTo(t).Implements(kindedType):
		k, ok = reflect.New(t).Interface().(apis.Kinded)
	}
	return k, ok
}
