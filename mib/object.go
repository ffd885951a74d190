/*
 * mibdoc model objects
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

// Kind tells what an Object is. Rendering dispatches on it.
type Kind int

const (
	KindNode Kind = iota // OBJECT IDENTIFIER, OBJECT-IDENTITY, MODULE-IDENTITY and friends
	KindScalar
	KindTable
	KindRow
	KindColumn
	KindNotification
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindScalar:
		return "scalar"
	case KindTable:
		return "table"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindNotification:
		return "notification"
	default:
		return "unknown"
	}
}

// Access is the MAX-ACCESS (or v1 ACCESS) of an object.
type Access int

const (
	AccessUnknown Access = iota
	AccessNotAccessible
	AccessNotify
	AccessReadOnly
	AccessReadWrite
	AccessReadCreate
	AccessWriteOnly
)

func (a Access) String() string {
	switch a {
	case AccessNotAccessible:
		return "not-accessible"
	case AccessNotify:
		return "accessible-for-notify"
	case AccessReadOnly:
		return "read-only"
	case AccessReadWrite:
		return "read-write"
	case AccessReadCreate:
		return "read-create"
	case AccessWriteOnly:
		return "write-only"
	default:
		return ""
	}
}

// Status is the lifecycle status of a definition.
type Status int

const (
	StatusUnknown Status = iota
	StatusCurrent
	StatusDeprecated
	StatusObsolete
	StatusMandatory
	StatusOptional
)

func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	case StatusMandatory:
		return "mandatory"
	case StatusOptional:
		return "optional"
	default:
		return ""
	}
}

// Index is one entry of a row's INDEX clause.
type Index struct {
	Column  *Object
	Implied bool
}

// Object is a named definition with an OID. Which of the table fields are
// in use depends on Kind: tables have Row, rows have Table, Columns,
// Indexes or Augments, columns have Row.
type Object struct {
	Name        string
	Kind        Kind
	Module      *Module
	Node        *Node
	Syntax      string // declared type, as written
	Type        *Type  // nil when the type isn't defined in the Mib
	Access      Access
	Status      Status
	Description string
	Units       string

	Table    *Object
	Row      *Object
	Columns  []*Object
	Indexes  []Index
	Augments *Object
}

// OID returns the object's position, nil for an unregistered object.
func (o *Object) OID() OID {
	if o.Node == nil {
		return nil
	}
	return o.Node.OID
}

// LastArc is the last component of the object's OID.
func (o *Object) LastArc() uint32 {
	if o.Node == nil {
		return 0
	}
	return o.Node.Arc
}

// Type is a named type assignment or textual convention.
type Type struct {
	Name        string
	Module      *Module
	Base        string // base type name, e.g. OCTET STRING
	Format      string // DISPLAY-HINT
	Status      Status
	Description string
	IsTC        bool
}
