/*
 * mibdoc symbol addresses
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

package site

import (
	"github.com/telenornms/mibdoc/mib"
)

// Address is where a symbol is documented: a page in the output
// directory and an anchor on it.
type Address struct {
	Page   string
	Anchor string
}

// Href is Page#Anchor, or just Page without an anchor.
func (a Address) Href() string {
	return Href(a.Page, a.Anchor)
}

func Href(page, anchor string) string {
	if anchor == "" {
		return page
	}
	return page + "#" + anchor
}

// PageFile is the file name of a module's page.
func PageFile(moduleID string) string {
	return moduleID + ".html"
}

// AddressOf returns the address of an object. Objects outside any module
// have no page, and get a zero Address.
func AddressOf(o *mib.Object) Address {
	if o == nil || o.Module == nil {
		return Address{}
	}
	return Address{Page: PageFile(o.Module.ID), Anchor: SymbolAnchor(o.Name)}
}

// SymbolAnchor is the anchor of a named definition on its module page.
// Names taken by the section anchors get a trailing underscore, which no
// SMI identifier can have.
func SymbolAnchor(name string) string {
	switch name {
	case AnchorTypes, AnchorScalars, AnchorTables:
		return name + "_"
	}
	return name
}

// TypeAddress is AddressOf for type definitions.
func TypeAddress(t *mib.Type) Address {
	if t == nil || t.Module == nil {
		return Address{}
	}
	return Address{Page: PageFile(t.Module.ID), Anchor: SymbolAnchor(t.Name)}
}

// SymbolHref links to an object, or to anchor on the object's module page
// when anchor is set.
func SymbolHref(o *mib.Object, anchor string) string {
	a := AddressOf(o)
	if anchor != "" {
		a.Anchor = anchor
	}
	return a.Href()
}

// ModuleHref links to a module page, optionally to one of its sections.
func ModuleHref(moduleID string, anchor string) string {
	return Href(PageFile(moduleID), anchor)
}
