/*
 * mibdoc table index resolution
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
	"github.com/telenornms/mibdoc"
	"github.com/telenornms/mibdoc/mib"
)

// ResolveIndexes returns the effective INDEX of a row. A row with its own
// index list gets it back as-is. A row that AUGMENTS another gets the
// augmented row's index list. Only one step is taken: if the augmented
// row itself only augments, the result is empty.
//
// Rows with neither are tolerated and yield an empty list.
func ResolveIndexes(row *mib.Object) []mib.Index {
	if row == nil {
		return nil
	}
	if len(row.Indexes) > 0 {
		return row.Indexes
	}
	if row.Augments != nil {
		if len(row.Augments.Indexes) == 0 {
			mibdoc.Debugf("%s::%s augments %s, which has no index of its own",
				moduleID(row), row.Name, row.Augments.Name)
		}
		return row.Augments.Indexes
	}
	mibdoc.Debugf("%s::%s has neither index nor augments, rendering it without index",
		moduleID(row), row.Name)
	return nil
}

func moduleID(o *mib.Object) string {
	if o.Module == nil {
		return ""
	}
	return o.Module.ID
}
