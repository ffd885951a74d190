/*
 * mibdoc model
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

/*
Package mib is the in-memory model of a compiled set of MIB modules: the
modules, their definitions and the OID tree tying them together.

A Mib is assembled once, usually by smierte, and is read-only from then on.
Nothing in it is locked, so it can be shared between goroutines as long as
nobody calls the Add-methods after handing it out.
*/
package mib

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when a module or definition id is already taken.
var ErrDuplicate = errors.New("duplicate id")

// Mib holds an ordered set of modules and the shared OID tree.
type Mib struct {
	Modules []*Module
	Root    *Node
	byID    map[string]*Module
}

// Counts is the number of definitions of each kind that gets its own
// column in the overview.
type Counts struct {
	Types   int
	Scalars int
	Tables  int
	Columns int
}

func (c *Counts) add(o Counts) {
	c.Types += o.Types
	c.Scalars += o.Scalars
	c.Tables += o.Tables
	c.Columns += o.Columns
}

func New() *Mib {
	return &Mib{
		Root: newRoot(),
		byID: make(map[string]*Module),
	}
}

// AddModule appends a new, empty module.
func (m *Mib) AddModule(id string) (*Module, error) {
	if id == "" {
		return nil, fmt.Errorf("module without id")
	}
	if _, ok := m.byID[id]; ok {
		return nil, fmt.Errorf("module %s: %w", id, ErrDuplicate)
	}
	mod := &Module{
		ID:      id,
		mib:     m,
		symbols: make(map[string]bool),
	}
	m.Modules = append(m.Modules, mod)
	m.byID[id] = mod
	return mod, nil
}

// Module returns the module with the given id, or nil.
func (m *Mib) Module(id string) *Module {
	return m.byID[id]
}

// Counts sums the counts of every module.
func (m *Mib) Counts() Counts {
	var c Counts
	for _, mod := range m.Modules {
		c.add(mod.Counts())
	}
	return c
}

// Node returns the tree node for oid, or nil if nothing is registered
// there or below.
func (m *Mib) Node(oid OID) *Node {
	n := m.Root
	for _, arc := range oid {
		n = n.Child(arc)
		if n == nil {
			return nil
		}
	}
	return n
}

// ObjectAt returns the first definition of the given kind at oid.
func (m *Mib) ObjectAt(oid OID, kind Kind) *Object {
	n := m.Node(oid)
	if n == nil {
		return nil
	}
	for _, v := range n.Values {
		if v.Kind == kind {
			return v
		}
	}
	return nil
}

// FindType resolves a type by name. The preferred module wins, otherwise
// the first module in Mib order defining it.
func (m *Mib) FindType(name string, prefer *Module) *Type {
	if prefer != nil {
		if t := prefer.types[name]; t != nil {
			return t
		}
	}
	for _, mod := range m.Modules {
		if t := mod.types[name]; t != nil {
			return t
		}
	}
	return nil
}

// Module is one compiled MIB module. The definition lists are kept in
// declaration order.
type Module struct {
	ID           string
	Organization string
	ContactInfo  string
	Description  string

	Types         []*Type
	Scalars       []*Object
	Tables        []*Object
	Columns       []*Object
	Notifications []*Object
	Nodes         []*Object

	mib     *Mib
	symbols map[string]bool
	types   map[string]*Type
}

func (mod *Module) Mib() *Mib {
	return mod.mib
}

// Counts returns this module's overview counts.
func (mod *Module) Counts() Counts {
	return Counts{
		Types:   len(mod.Types),
		Scalars: len(mod.Scalars),
		Tables:  len(mod.Tables),
		Columns: len(mod.Columns),
	}
}

func (mod *Module) claim(name string) error {
	if name == "" {
		return fmt.Errorf("%s: definition without name", mod.ID)
	}
	if mod.symbols[name] {
		return fmt.Errorf("%s::%s: %w", mod.ID, name, ErrDuplicate)
	}
	mod.symbols[name] = true
	return nil
}

// Add registers obj at oid and files it under its kind. Rows are tied to
// the table at the parent OID and columns to the row at theirs, as long as
// those are defined in this module; tables must therefore be added before
// their rows, and rows before their columns.
func (mod *Module) Add(obj *Object, oid OID) error {
	if err := mod.claim(obj.Name); err != nil {
		return err
	}
	n := mod.mib.Root
	for _, arc := range oid {
		n = n.child(arc)
	}
	obj.Module = mod
	obj.Node = n
	n.Values = append(n.Values, obj)

	switch obj.Kind {
	case KindScalar:
		mod.Scalars = append(mod.Scalars, obj)
	case KindTable:
		mod.Tables = append(mod.Tables, obj)
	case KindRow:
		if t := mod.parentOf(n, KindTable); t != nil {
			t.Row = obj
			obj.Table = t
		}
	case KindColumn:
		mod.Columns = append(mod.Columns, obj)
		if r := mod.parentOf(n, KindRow); r != nil {
			r.Columns = append(r.Columns, obj)
			obj.Row = r
		}
	case KindNotification:
		mod.Notifications = append(mod.Notifications, obj)
	default:
		mod.Nodes = append(mod.Nodes, obj)
	}
	return nil
}

func (mod *Module) parentOf(n *Node, kind Kind) *Object {
	if n.Parent == nil {
		return nil
	}
	for _, v := range n.Parent.Values {
		if v.Kind == kind && v.Module == mod {
			return v
		}
	}
	return nil
}

// AddType registers a type definition.
func (mod *Module) AddType(t *Type) error {
	if err := mod.claim(t.Name); err != nil {
		return err
	}
	if mod.types == nil {
		mod.types = make(map[string]*Type)
	}
	t.Module = mod
	mod.Types = append(mod.Types, t)
	mod.types[t.Name] = t
	return nil
}

// Type returns the type defined in this module under name, or nil.
func (mod *Module) Type(name string) *Type {
	return mod.types[name]
}
