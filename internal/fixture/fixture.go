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

// Package fixture is a small network domain used by tests: nodes, links
// and the segments each link owns.
package fixture

import (
	"slices"

	"dirpx.dev/mid/apis"
	"dirpx.dev/mid/managed"
	"dirpx.dev/mid/scope"
)

const (
	NodeKind    apis.KindTag = "fixture.node"
	LinkKind    apis.KindTag = "fixture.link"
	SegmentKind apis.KindTag = "fixture.segment"
)

// Node is a plain managed entity.
type Node struct {
	managed.Base
	Name string
	Tags []string
}

// NewNode creates a node numbered under s.
func NewNode(c apis.Counters, s *scope.Token, name string) *Node {
	return &Node{Base: managed.NewBase(c, s, NodeKind), Name: name}
}

func (*Node) KindTag() apis.KindTag { return NodeKind }

func (n *Node) RecreateID(c apis.Counters, s *scope.Token) uint64 {
	return n.Recreate(c, s, NodeKind)
}

func (n *Node) ShallowCopy() *Node {
	cp := *n
	return &cp
}

func (n *Node) DeepCopy() *Node {
	cp := *n
	cp.Tags = slices.Clone(n.Tags)
	return &cp
}

// Segment is a piece of a link.
type Segment struct {
	managed.Base
	Length float64
}

// NewSegment creates a segment numbered under s.
func NewSegment(c apis.Counters, s *scope.Token, length float64) *Segment {
	return &Segment{Base: managed.NewBase(c, s, SegmentKind), Length: length}
}

func (*Segment) KindTag() apis.KindTag { return SegmentKind }

func (g *Segment) RecreateID(c apis.Counters, s *scope.Token) uint64 {
	return g.Recreate(c, s, SegmentKind)
}

func (g *Segment) ShallowCopy() *Segment {
	cp := *g
	return &cp
}

func (g *Segment) DeepCopy() *Segment {
	return g.ShallowCopy()
}

// Link connects two nodes and owns its segments.
type Link struct {
	managed.Base
	From, To *Node
	Segments *managed.Container[*Segment]
}

// NewLink creates a link numbered under s with an empty segment container
// bound to the same scope.
func NewLink(c apis.Counters, s *scope.Token, from, to *Node) *Link {
	segments, err := managed.NewContainer[*Segment](c, s, SegmentKind)
	if err != nil {
		panic(err)
	}
	return &Link{Base: managed.NewBase(c, s, LinkKind), From: from, To: to, Segments: segments}
}

// AddSegment creates a segment of the given length and registers it.
func (l *Link) AddSegment(length float64) *Segment {
	g := NewSegment(l.Segments.Counters(), l.Segments.Scope(), length)
	l.Segments.Register(g)
	return g
}

func (*Link) KindTag() apis.KindTag { return LinkKind }

func (l *Link) RecreateID(c apis.Counters, s *scope.Token) uint64 {
	return l.Recreate(c, s, LinkKind)
}

// ResetChildren resets the segment container.
func (l *Link) ResetChildren() {
	l.Segments.Reset()
}

// ShallowCopy shares the segment container with l.
func (l *Link) ShallowCopy() *Link {
	cp := *l
	return &cp
}

// DeepCopy duplicates the segment container. Node references are kept.
func (l *Link) DeepCopy() *Link {
	cp := *l
	cp.Segments = managed.DeepClone(l.Segments)
	return &cp
}

var (
	_ managed.Duplicable[*Node]    = (*Node)(nil)
	_ managed.Duplicable[*Segment] = (*Segment)(nil)
	_ managed.Duplicable[*Link]    = (*Link)(nil)
	_ apis.ChildResetter           = (*Link)(nil)
)
