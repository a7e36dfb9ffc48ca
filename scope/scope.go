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

package scope

import (
	"github.com/google/uuid"
)

// GlobalDescription is the description carried by the Global scope.
const GlobalDescription = "global"

// Token partitions the id space into independent numbering groups.
//
// Tokens are compared by pointer: two tokens built from the same
// description are different scopes. A Token is immutable once created.
type Token struct {
	description string
	id          uuid.UUID
}

var global = New(GlobalDescription)

// New creates a fresh scope. The description is informational and may be empty.
func New(description string) *Token {
	return &Token{description: description, id: uuid.New()}
}

// Global returns the process-wide scope for ids that are not owned by
// any specific container.
func Global() *Token {
	return global
}

// Description returns the human-readable description given at creation.
func (t *Token) Description() string {
	return t.description
}

// ID returns the unique discriminator of the scope.
func (t *Token) ID() uuid.UUID {
	return t.id
}

// IsGlobal reports whether t is the Global scope.
func (t *Token) IsGlobal() bool {
	return t == global
}

// String renders the scope for logs, e.g. "network-a/6f1c...".
func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.description == "" {
		return t.id.String()
	}
	return t.description + "/" + t.id.String()
}
