/*
 * mibdoc page catalog
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
	"strings"
)

// Page is one of the fixed navigation categories.
type Page struct {
	ID       string
	Title    string
	FileName string
}

// Link is what the navigation bar points at.
func (p *Page) Link() string {
	return p.FileName
}

// Active reports whether p is the page being rendered. A nil current page
// (module pages, the overview) matches nothing.
func (p *Page) Active(current *Page) bool {
	return current != nil && p.ID == current.ID
}

func newPage(id string) *Page {
	lower := strings.ToLower(id)
	return &Page{
		ID:       id,
		Title:    strings.ToUpper(lower[:1]) + lower[1:],
		FileName: lower + ".html",
	}
}

var (
	PageModules       = newPage("MODULES")
	PageTables        = newPage("TABLES")
	PageColumns       = newPage("COLUMNS")
	PageScalars       = newPage("SCALARS")
	PageVariables     = newPage("VARIABLES")
	PageTraps         = newPage("TRAPS")
	PageNotifications = newPage("NOTIFICATIONS")
	PageTypes         = newPage("TYPES")
	PageOIDs          = newPage("OIDS")
)

// Pages is the navigation bar, in order.
var Pages = []*Page{
	PageModules,
	PageTables,
	PageColumns,
	PageScalars,
	PageVariables,
	PageTraps,
	PageNotifications,
	PageTypes,
	PageOIDs,
}

// IndexFile is the root overview.
const IndexFile = "index.html"
