/*
 * mibdoc site test fixtures
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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/telenornms/mibdoc/mib"
)

func mustOID(t *testing.T, s string) mib.OID {
	t.Helper()
	o, err := mib.ParseOID(s)
	require.NoError(t, err)
	return o
}

func addObj(t *testing.T, mod *mib.Module, o *mib.Object, oid string) *mib.Object {
	t.Helper()
	require.NoError(t, mod.Add(o, mustOID(t, oid)))
	return o
}

// testMib is a small, but complete, two-module MIB: IF-MIB carries
// ifXTable with its own index, IF-EXT-MIB carries ifTable, whose row
// augments ifXEntry.
func testMib(t *testing.T) *mib.Mib {
	t.Helper()
	m := mib.New()
	smi, err := m.AddModule("SNMPv2-SMI")
	require.NoError(t, err)
	addObj(t, smi, &mib.Object{Name: "mib-2", Kind: mib.KindNode}, "1.3.6.1.2.1")
	addObj(t, smi, &mib.Object{Name: "system", Kind: mib.KindNode}, "1.3.6.1.2.1.1")
	addObj(t, smi, &mib.Object{Name: "ifMIBObjects", Kind: mib.KindNode}, "1.3.6.1.2.1.31.1")

	ifmib, err := m.AddModule("IF-MIB")
	require.NoError(t, err)
	displayString := &mib.Type{Name: "DisplayString", Base: "OCTET STRING", Format: "255a",
		Status: mib.StatusCurrent, Description: "Textual information.", IsTC: true}
	require.NoError(t, ifmib.AddType(displayString))
	addObj(t, ifmib, &mib.Object{Name: "sysUpTime", Kind: mib.KindScalar, Syntax: "TimeTicks",
		Access: mib.AccessReadOnly, Status: mib.StatusCurrent,
		Description: "The time since the network management portion\n    of the system was last re-initialized."},
		"1.3.6.1.2.1.1.3")
	addObj(t, ifmib, &mib.Object{Name: "ifXTable", Kind: mib.KindTable, Syntax: "SEQUENCE OF IfXEntry",
		Access: mib.AccessNotAccessible, Status: mib.StatusCurrent}, "1.3.6.1.2.1.31.1.1")
	xrow := addObj(t, ifmib, &mib.Object{Name: "ifXEntry", Kind: mib.KindRow, Syntax: "IfXEntry",
		Access: mib.AccessNotAccessible, Status: mib.StatusCurrent}, "1.3.6.1.2.1.31.1.1.1")
	ifIndex := addObj(t, ifmib, &mib.Object{Name: "ifIndex", Kind: mib.KindColumn, Syntax: "InterfaceIndex",
		Access: mib.AccessReadOnly, Status: mib.StatusCurrent}, "1.3.6.1.2.1.31.1.1.1.1")
	addObj(t, ifmib, &mib.Object{Name: "ifName", Kind: mib.KindColumn, Syntax: "DisplayString",
		Type: displayString, Access: mib.AccessReadOnly, Status: mib.StatusCurrent}, "1.3.6.1.2.1.31.1.1.1.2")
	xrow.Indexes = []mib.Index{{Column: ifIndex}}

	ext, err := m.AddModule("IF-EXT-MIB")
	require.NoError(t, err)
	addObj(t, ext, &mib.Object{Name: "ifTable", Kind: mib.KindTable, Syntax: "SEQUENCE OF IfEntry",
		Access: mib.AccessNotAccessible, Status: mib.StatusCurrent}, "1.3.6.1.2.1.2.2")
	row := addObj(t, ext, &mib.Object{Name: "ifEntry", Kind: mib.KindRow, Syntax: "IfEntry",
		Access: mib.AccessNotAccessible, Status: mib.StatusCurrent}, "1.3.6.1.2.1.2.2.1")
	addObj(t, ext, &mib.Object{Name: "ifDescr", Kind: mib.KindColumn, Syntax: "DisplayString",
		Type: displayString, Access: mib.AccessReadOnly, Status: mib.StatusCurrent}, "1.3.6.1.2.1.2.2.1.2")
	addObj(t, ext, &mib.Object{Name: "ifMtu", Kind: mib.KindColumn, Syntax: "Integer32",
		Units: "octets", Access: mib.AccessReadOnly, Status: mib.StatusDeprecated}, "1.3.6.1.2.1.2.2.1.4")
	row.Augments = xrow
	return m
}

func parseFile(t *testing.T, path string) *html.Node {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	doc, err := html.Parse(f)
	require.NoError(t, err)
	return doc
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attrOf(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func findAll(doc *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
		}
	})
	return out
}

// ids returns every id on a page, with how often it occurs.
func ids(doc *html.Node) map[string]int {
	out := make(map[string]int)
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if id, ok := attrOf(n, "id"); ok {
			out[id]++
		}
	})
	return out
}

// tableRowFor finds the <tr> whose first cell's text is name and that has
// the given number of cells.
func tableRowFor(doc *html.Node, name string, cells int) *html.Node {
	for _, row := range findAll(doc, atom.Tr) {
		tds := findAll(row, atom.Td)
		if len(tds) == cells && textOf(tds[0]) == name {
			return row
		}
	}
	return nil
}

func buildTestSite(t *testing.T, m *mib.Mib) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "html")
	b := &Builder{}
	_, err := b.Build(context.Background(), m, dir)
	require.NoError(t, err)
	return dir
}
