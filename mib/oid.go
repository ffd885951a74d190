/*
 * mibdoc OID tree
 *
 * Copyright (c) 2022 Telenor Norge AS
 *
 * This library is free software; you can redistribute it and/or
 * modify it under the terms of the GNU Lesser General Public
 * License as published by the Free Software Foundation; either
 * version 2.1 of the License, or (at your option) any later version.
 *
 * This library is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public
 * License along with this library; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
 * 02110-1301  USA
 */

package mib

import (
	"fmt"
	"strconv"
	"strings"
)

// OID is a numeric object identifier.
type OID []uint32

func (o OID) String() string {
	var b strings.Builder
	for i, arc := range o {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(uint64(arc), 10))
	}
	return b.String()
}

// ParseOID parses the dotted form, a leading dot is accepted.
func ParseOID(s string) (OID, error) {
	s = strings.TrimPrefix(s, ".")
	if s == "" {
		return nil, fmt.Errorf("empty oid")
	}
	parts := strings.Split(s, ".")
	o := make(OID, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid oid %q: %w", s, err)
		}
		o = append(o, uint32(v))
	}
	return o, nil
}

// Node is a single arc in the OID tree. Values holds every definition
// registered at this position, across all modules, in registration order.
type Node struct {
	Parent   *Node
	Arc      uint32
	OID      OID
	Values   []*Object
	children map[uint32]*Node
}

func newRoot() *Node {
	return &Node{children: make(map[uint32]*Node)}
}

// child returns the child for arc, creating it if needed.
func (n *Node) child(arc uint32) *Node {
	if c, ok := n.children[arc]; ok {
		return c
	}
	oid := make(OID, len(n.OID)+1)
	copy(oid, n.OID)
	oid[len(n.OID)] = arc
	c := &Node{Parent: n, Arc: arc, OID: oid, children: make(map[uint32]*Node)}
	n.children[arc] = c
	return c
}

// Child returns the existing child for arc, or nil.
func (n *Node) Child(arc uint32) *Node {
	return n.children[arc]
}

// SingleValue returns the only definition at this node. It reports false
// when there are none, or when several definitions share the OID.
func (n *Node) SingleValue() (*Object, bool) {
	if n == nil || len(n.Values) != 1 {
		return nil, false
	}
	return n.Values[0], true
}

func (n *Node) String() string {
	return n.OID.String()
}
