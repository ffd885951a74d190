/*
 * mibdoc overview pages
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
	"sort"
	"strconv"

	"golang.org/x/net/html"

	"github.com/telenornms/mibdoc/mib"
)

const notImplemented = "Not yet implemented"

// overview is the content of index.html and modules.html: totals first,
// then one row per module, sorted by id.
func overview(m *mib.Mib) []*html.Node {
	total := m.Counts()
	t := table(
		tr(th(),
			th(text(strconv.Itoa(total.Types))),
			th(text(strconv.Itoa(total.Scalars))),
			th(text(strconv.Itoa(total.Tables))),
			th(text(strconv.Itoa(total.Columns)))),
		headerRow("Name", "#Types", "#Scalars", "#Tables", "#Columns"))

	modules := make([]*mib.Module, len(m.Modules))
	copy(modules, m.Modules)
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].ID < modules[j].ID
	})
	for _, mod := range modules {
		c := mod.Counts()
		count := func(n int, anchor string) *html.Node {
			return td(link(ModuleHref(mod.ID, anchor), strconv.Itoa(n), ""))
		}
		add(t, tr(
			td(link(ModuleHref(mod.ID, ""), mod.ID, "")),
			count(c.Types, AnchorTypes),
			count(c.Scalars, AnchorScalars),
			count(c.Tables, AnchorTables),
			// columns are listed per table, so that's where this goes
			count(c.Columns, AnchorTables)))
	}
	return []*html.Node{t}
}

func placeholder() []*html.Node {
	return []*html.Node{text(notImplemented)}
}
