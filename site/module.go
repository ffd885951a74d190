/*
 * mibdoc module pages
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
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/telenornms/mibdoc/mib"
)

// Section anchors on a module page. The overview links straight into
// them.
const (
	AnchorTypes   = "types"
	AnchorScalars = "scalars"
	AnchorTables  = "tables"
)

const introPlaceholder = "TODO: module description and revisions"

// modulePage is the content of <module>.html: top, types, scalars and
// tables, in that order.
func modulePage(mod *mib.Module) []*html.Node {
	var out []*html.Node
	out = append(out, moduleTop(mod)...)
	out = append(out, moduleTypes(mod)...)
	out = append(out, moduleScalars(mod)...)
	out = append(out, moduleTables(mod)...)
	return out
}

func moduleTop(mod *mib.Module) []*html.Node {
	jump := func(anchor, label string, n int) *html.Node {
		return el(atom.Li, nil, link("#"+anchor, fmt.Sprintf("%s (%d)", label, n), ""))
	}
	return []*html.Node{
		heading(1, "", text(mod.ID)),
		el(atom.P, nil, text(introPlaceholder)),
		el(atom.Ul, nil,
			jump(AnchorTypes, "Types", len(mod.Types)),
			jump(AnchorScalars, "Scalars", len(mod.Scalars)),
			jump(AnchorTables, "Tables", len(mod.Tables))),
	}
}

func moduleTypes(mod *mib.Module) []*html.Node {
	out := []*html.Node{heading(1, AnchorTypes, text("Types"))}
	if len(mod.Types) == 0 {
		return out
	}
	out = append(out, typeSummaryTable(mod.Types))
	for _, t := range mod.Types {
		out = append(out, typeDefinition(2, t)...)
	}
	return out
}

func moduleScalars(mod *mib.Module) []*html.Node {
	out := []*html.Node{
		heading(1, AnchorScalars, text("Scalars")),
		summaryTable(mod.Scalars),
	}
	for _, s := range mod.Scalars {
		out = append(out, definition(2, s)...)
	}
	return out
}

func moduleTables(mod *mib.Module) []*html.Node {
	master := table(headerRow("Name", "OID", "Augments", "Index(es)", "#Columns"))
	for _, t := range mod.Tables {
		add(master, tableRow(t))
	}
	out := []*html.Node{heading(1, AnchorTables, text("Tables")), master}

	for _, t := range mod.Tables {
		out = append(out, definition(2, t)...)
		if t.Row == nil {
			continue
		}
		out = append(out, summaryTable(t.Row.Columns))
		out = append(out, definition(3, t.Row)...)
		for _, c := range t.Row.Columns {
			out = append(out, definition(4, c)...)
		}
	}
	return out
}

// tableRow is one line of the tables overview on a module page.
func tableRow(t *mib.Object) *html.Node {
	augments := td()
	indexes := td()
	var columns []*mib.Object
	if t.Row != nil {
		if t.Row.Augments != nil {
			add(augments, symbolLink(t.Row.Augments, "", "", ""))
		}
		for _, idx := range ResolveIndexes(t.Row) {
			p := elem(atom.P)
			if idx.Implied {
				add(p, text("IMPLIED "))
			}
			add(indexes, add(p, symbolLink(idx.Column, "", "", "")))
		}
		columns = t.Row.Columns
	}
	names := make([]string, 0, len(columns))
	for _, c := range columns {
		names = append(names, c.Name)
	}
	return tr(
		td(symbolLink(t, "", "", "")),
		td(text(t.OID().String())),
		augments,
		indexes,
		td(symbolLink(t, strconv.Itoa(len(columns)), "", joinLines(names))))
}
