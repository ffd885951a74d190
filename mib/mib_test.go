/*
 * mibdoc model tests
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

package mib_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telenornms/mibdoc/mib"
)

func TestOIDString(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"1.3.6.1.2.1.1.3", "1.3.6.1.2.1.1.3", false},
		{".1.3.6", "1.3.6", false},
		{"", "", true},
		{"1.x.3", "", true},
		{"1..3", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			o, err := mib.ParseOID(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.String())
		})
	}
}

func TestTableWiring(t *testing.T) {
	m := mib.New()
	mod, err := m.AddModule("IF-MIB")
	require.NoError(t, err)

	table := &mib.Object{Name: "ifTable", Kind: mib.KindTable}
	row := &mib.Object{Name: "ifEntry", Kind: mib.KindRow}
	c1 := &mib.Object{Name: "ifIndex", Kind: mib.KindColumn}
	c2 := &mib.Object{Name: "ifDescr", Kind: mib.KindColumn}
	require.NoError(t, mod.Add(table, mib.OID{1, 3, 6, 1, 2, 1, 2, 2}))
	require.NoError(t, mod.Add(row, mib.OID{1, 3, 6, 1, 2, 1, 2, 2, 1}))
	require.NoError(t, mod.Add(c1, mib.OID{1, 3, 6, 1, 2, 1, 2, 2, 1, 1}))
	require.NoError(t, mod.Add(c2, mib.OID{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}))

	assert.Same(t, row, table.Row)
	assert.Same(t, table, row.Table)
	assert.Equal(t, []*mib.Object{c1, c2}, row.Columns)
	assert.Same(t, row, c1.Row)
	assert.Equal(t, uint32(2), c2.LastArc())
	assert.Equal(t, "1.3.6.1.2.1.2.2.1.2", c2.OID().String())
	assert.Same(t, c1, m.ObjectAt(mib.OID{1, 3, 6, 1, 2, 1, 2, 2, 1, 1}, mib.KindColumn))
	assert.Nil(t, m.ObjectAt(mib.OID{1, 3, 6, 1, 2, 1, 2, 2, 1, 1}, mib.KindScalar))
	assert.Nil(t, m.Node(mib.OID{1, 3, 6, 1, 9}))

	got := mod.Counts()
	assert.Equal(t, mib.Counts{Tables: 1, Columns: 2}, got)
}

func TestColumnsFromOtherModuleStayDetached(t *testing.T) {
	m := mib.New()
	a, _ := m.AddModule("A-MIB")
	b, _ := m.AddModule("B-MIB")
	require.NoError(t, a.Add(&mib.Object{Name: "aTable", Kind: mib.KindTable}, mib.OID{1, 9, 1}))
	row := &mib.Object{Name: "aEntry", Kind: mib.KindRow}
	require.NoError(t, a.Add(row, mib.OID{1, 9, 1, 1}))
	ext := &mib.Object{Name: "bExtra", Kind: mib.KindColumn}
	require.NoError(t, b.Add(ext, mib.OID{1, 9, 1, 1, 7}))

	assert.Empty(t, row.Columns)
	assert.Nil(t, ext.Row)
	assert.Equal(t, []*mib.Object{ext}, b.Columns)
}

func TestDuplicates(t *testing.T) {
	m := mib.New()
	mod, err := m.AddModule("M1")
	require.NoError(t, err)
	_, err = m.AddModule("M1")
	assert.True(t, errors.Is(err, mib.ErrDuplicate))

	require.NoError(t, mod.Add(&mib.Object{Name: "x", Kind: mib.KindScalar}, mib.OID{1, 1}))
	err = mod.Add(&mib.Object{Name: "x", Kind: mib.KindScalar}, mib.OID{1, 2})
	assert.ErrorIs(t, err, mib.ErrDuplicate)
	err = mod.AddType(&mib.Type{Name: "x"})
	assert.ErrorIs(t, err, mib.ErrDuplicate)
}

func TestSingleValueAndCounts(t *testing.T) {
	m := mib.New()
	a, _ := m.AddModule("A")
	b, _ := m.AddModule("B")
	require.NoError(t, a.Add(&mib.Object{Name: "system", Kind: mib.KindNode}, mib.OID{1, 3, 6, 1, 2, 1, 1}))
	require.NoError(t, a.Add(&mib.Object{Name: "shared", Kind: mib.KindNode}, mib.OID{1, 5}))
	require.NoError(t, b.Add(&mib.Object{Name: "sharedToo", Kind: mib.KindNode}, mib.OID{1, 5}))
	require.NoError(t, a.Add(&mib.Object{Name: "sysUpTime", Kind: mib.KindScalar}, mib.OID{1, 3, 6, 1, 2, 1, 1, 3}))
	require.NoError(t, b.Add(&mib.Object{Name: "other", Kind: mib.KindScalar}, mib.OID{1, 5, 1}))
	require.NoError(t, b.AddType(&mib.Type{Name: "DisplayString"}))

	v, ok := m.Node(mib.OID{1, 3, 6, 1, 2, 1, 1}).SingleValue()
	require.True(t, ok)
	assert.Equal(t, "system", v.Name)
	_, ok = m.Node(mib.OID{1, 5}).SingleValue()
	assert.False(t, ok)
	_, ok = m.Node(mib.OID{1, 3}).SingleValue()
	assert.False(t, ok)

	assert.Equal(t, mib.Counts{Types: 1, Scalars: 2}, m.Counts())
	assert.Same(t, b.Type("DisplayString"), m.FindType("DisplayString", a))
	assert.Nil(t, m.FindType("Nope", nil))
}
