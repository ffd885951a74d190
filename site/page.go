/*
 * mibdoc page frame
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
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// frame is what every page shares: head, navigation bar and a body that
// holds the page specific content.
type frame struct {
	title      string
	current    *Page
	stylesheet string
}

func (f frame) document(content ...*html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	add(doc, &html.Node{Type: html.DoctypeNode, Data: "html"})
	add(doc, el(atom.Html, nil,
		f.head(),
		add(el(atom.Body, nil, f.nav()), content...)))
	return doc
}

func (f frame) head() *html.Node {
	head := el(atom.Head, nil,
		elem(atom.Meta, attr{Key: "charset", Val: "utf-8"}),
		el(atom.Title, nil, text(f.title)))
	if f.stylesheet != "" {
		add(head, elem(atom.Link, attrs("rel", "stylesheet", "href", f.stylesheet)...))
	}
	return head
}

func (f frame) nav() *html.Node {
	items := el(atom.Ul, class("navbar-nav mr-auto"))
	for _, p := range Pages {
		c := "nav-item"
		if p.Active(f.current) {
			c += " active"
		}
		a := elem(atom.A, attrs("class", "nav-link", "href", p.Link())...)
		add(items, el(atom.Li, class(c), add(a, text(p.Title))))
	}
	brand := elem(atom.A, attrs("class", "navbar-brand", "href", IndexFile)...)
	return el(atom.Nav, class("navbar navbar-expand-lg navbar-light bg-light"),
		add(brand, text("Overview")),
		el(atom.Div, attrs("class", "collapse navbar-collapse", "id", "navbarSupportedContent"), items))
}
