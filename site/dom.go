/*
 * mibdoc page tree helpers
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
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Pages are assembled as html.Node trees and serialized by html.Render,
// which owns all escaping. Nothing in this package writes markup by hand.

type attr = html.Attribute

func elem(a atom.Atom, attrs ...attr) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func textf(format string, v ...any) *html.Node {
	return text(fmt.Sprintf(format, v...))
}

// add appends children to n and returns n, so trees can be built inline.
func add(n *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// el is elem plus children.
func el(a atom.Atom, attrs []attr, children ...*html.Node) *html.Node {
	return add(elem(a, attrs...), children...)
}

func attrs(kv ...string) []attr {
	if len(kv)%2 != 0 {
		panic("attrs: odd number of arguments")
	}
	out := make([]attr, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, attr{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

func class(c string) []attr {
	return attrs("class", c)
}

// setAttr replaces or adds an attribute.
func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, attr{Key: key, Val: val})
}

func link(href string, label string, title string) *html.Node {
	a := elem(atom.A, attr{Key: "href", Val: href})
	if title != "" {
		setAttr(a, "title", title)
	}
	return add(a, text(label))
}

// heading builds <hN> for level 1-6.
func heading(level int, id string, children ...*html.Node) *html.Node {
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	a := [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}[level-1]
	h := elem(a)
	if id != "" {
		setAttr(h, "id", id)
	}
	return add(h, children...)
}

func td(children ...*html.Node) *html.Node {
	return el(atom.Td, nil, children...)
}

func th(children ...*html.Node) *html.Node {
	return el(atom.Th, nil, children...)
}

func tr(cells ...*html.Node) *html.Node {
	return el(atom.Tr, nil, cells...)
}

// headerRow is a <tr> of <th> with plain labels.
func headerRow(labels ...string) *html.Node {
	row := elem(atom.Tr)
	for _, l := range labels {
		add(row, th(text(l)))
	}
	return row
}

const tableClass = "table table-striped table-bordered"

func table(rows ...*html.Node) *html.Node {
	return el(atom.Table, class(tableClass), rows...)
}

// render serializes a complete document.
func render(doc *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// joinLines is used for multi-line title attributes.
func joinLines(s []string) string {
	return strings.Join(s, "\n")
}
