/*
 * mibdoc symbol rendering
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
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/telenornms/mibdoc/mib"
)

const descriptionWidth = 64

// symbolLink links to an object. An empty label means the object's name,
// an empty anchor its own anchor and an empty title its description.
func symbolLink(o *mib.Object, label string, anchor string, title string) *html.Node {
	if label == "" {
		label = o.Name
	}
	if title == "" {
		title = o.Description
	}
	return link(SymbolHref(o, anchor), label, title)
}

// typeCell shows the declared type, linked when its definition is part of
// the site.
func typeCell(o *mib.Object) *html.Node {
	if o.Type != nil && o.Type.Module != nil {
		label := o.Syntax
		if label == "" {
			label = o.Type.Name
		}
		return td(link(TypeAddress(o.Type).Href(), label, ""))
	}
	return td(text(o.Syntax))
}

func summaryRow(o *mib.Object) *html.Node {
	return tr(
		td(symbolLink(o, "", "", "")),
		td(text(o.OID().String())),
		typeCell(o),
		td(text(o.Access.String())))
}

// summaryTable lists objects as Name, OID, Type and Access.
func summaryTable(objs []*mib.Object) *html.Node {
	t := table(headerRow("Name", "OID", "Type", "Access"))
	for _, o := range objs {
		add(t, summaryRow(o))
	}
	return t
}

// definition is the heading and declaration block of one object.
func definition(level int, o *mib.Object) []*html.Node {
	return []*html.Node{
		heading(level, SymbolAnchor(o.Name), textf("%s (%s)", o.Name, o.OID())),
		el(atom.Pre, nil, text(declaration(o))),
	}
}

func declaration(o *mib.Object) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s OBJECT-TYPE\n", o.Name)
	fmt.Fprintf(&b, "    SYNTAX      %s\n", o.Syntax)
	if o.Units != "" {
		fmt.Fprintf(&b, "    UNITS       %q\n", o.Units)
	}
	fmt.Fprintf(&b, "    MAX-ACCESS  %s\n", o.Access)
	fmt.Fprintf(&b, "    STATUS      %s\n", o.Status)
	fmt.Fprintf(&b, "    DESCRIPTION \"%s\"\n", formatDescription(o.Description, 17))
	fmt.Fprintf(&b, "::= { %s %d }", parentRef(o), o.LastArc())
	return b.String()
}

// parentRef names the parent in the OID assignment. The parent's name is
// only unambiguous when exactly one definition lives at that OID, for
// anything else the numeric OID is used.
func parentRef(o *mib.Object) string {
	if o.Node == nil || o.Node.Parent == nil {
		return ""
	}
	if v, ok := o.Node.Parent.SingleValue(); ok {
		return v.Name
	}
	return o.Node.Parent.OID.String()
}

// formatDescription drops the indentation descriptions carry over from
// the MIB source and wraps long lines. Continuation lines are indented by
// indent columns, which callers set to line up with the opening quote.
func formatDescription(desc string, indent int) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	var lines []string
	for _, l := range strings.Split(desc, "\n") {
		l = strings.TrimSpace(l)
		lines = append(lines, strings.Split(wordwrap.WrapString(l, descriptionWidth), "\n")...)
	}
	return strings.Join(lines, "\n"+strings.Repeat(" ", indent))
}

func typeSummaryTable(types []*mib.Type) *html.Node {
	t := table(headerRow("Name", "Syntax", "Display hint", "Status"))
	for _, ty := range types {
		add(t, tr(
			td(link(TypeAddress(ty).Href(), ty.Name, ty.Description)),
			td(text(ty.Base)),
			td(text(ty.Format)),
			td(text(ty.Status.String()))))
	}
	return t
}

func typeDefinition(level int, t *mib.Type) []*html.Node {
	return []*html.Node{
		heading(level, SymbolAnchor(t.Name), text(t.Name)),
		el(atom.Pre, nil, text(typeDeclaration(t))),
	}
}

func typeDeclaration(t *mib.Type) string {
	if !t.IsTC {
		return fmt.Sprintf("%s ::= %s", t.Name, t.Base)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s ::= TEXTUAL-CONVENTION\n", t.Name)
	if t.Format != "" {
		fmt.Fprintf(&b, "    DISPLAY-HINT %q\n", t.Format)
	}
	fmt.Fprintf(&b, "    STATUS       %s\n", t.Status)
	fmt.Fprintf(&b, "    DESCRIPTION  \"%s\"\n", formatDescription(t.Description, 18))
	fmt.Fprintf(&b, "    SYNTAX       %s", t.Base)
	return b.String()
}
