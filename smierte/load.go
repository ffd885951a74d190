/*
 * mibdoc SMI to model conversion
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

package smierte

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sleepinggenius2/gosmi"
	"github.com/sleepinggenius2/gosmi/models"
	"github.com/sleepinggenius2/gosmi/smi"
	"github.com/sleepinggenius2/gosmi/types"

	"github.com/telenornms/mibdoc"
	"github.com/telenornms/mibdoc/mib"
)

// Load runs Init and converts every loaded module, imports included, into
// a mib.Mib. Modules keep gosmi's load order.
func (c *Config) Load() (*mib.Mib, error) {
	lock.Lock()
	defer lock.Unlock()
	if err := c.init(); err != nil {
		return nil, err
	}
	return convert(gosmi.GetLoadedModules())
}

// pending rows get their INDEX/AUGMENTS once every module is in, since
// index columns and augmented rows are often imported.
type pending struct {
	row *mib.Object
	raw *types.SmiNode
}

func convert(modules []gosmi.SmiModule) (*mib.Mib, error) {
	m := mib.New()
	var rows []pending
	var objects []*mib.Object
	for _, sm := range modules {
		if pseudoModule(sm.Name) {
			continue
		}
		mod, err := m.AddModule(sm.Name)
		if errors.Is(err, mib.ErrDuplicate) {
			mibdoc.Logf("module %s loaded twice, keeping the first", sm.Name)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("module %s: %w", sm.Name, err)
		}
		mod.Organization = sm.Organization
		mod.ContactInfo = sm.ContactInfo
		mod.Description = sm.Description

		for _, st := range sm.GetTypes() {
			if err := mod.AddType(convertType(st.Type)); err != nil {
				mibdoc.Debugf("skipping type: %s", err)
			}
		}
		for _, sn := range sm.GetNodes() {
			o := convertNode(sn)
			if err := mod.Add(o, convertOID(sn.Oid)); err != nil {
				mibdoc.Debugf("skipping node: %s", err)
				continue
			}
			objects = append(objects, o)
			if o.Kind == mib.KindRow {
				rows = append(rows, pending{row: o, raw: sn.GetRaw()})
			}
		}
		mibdoc.Debugf("%s: %d types, %d scalars, %d tables, %d columns",
			mod.ID, len(mod.Types), len(mod.Scalars), len(mod.Tables), len(mod.Columns))
	}

	fillSyntax(objects)
	for _, o := range objects {
		if o.Kind == mib.KindNode || o.Kind == mib.KindNotification {
			continue
		}
		o.Type = m.FindType(o.Syntax, o.Module)
	}
	for _, p := range rows {
		resolveRow(m, p)
	}
	return m, nil
}

// pseudoModule is true for libsmi's internal modules, like <well-known>,
// which hold the OID roots and are always loaded.
func pseudoModule(name string) bool {
	return strings.HasPrefix(name, "<")
}

// fillSyntax names the SEQUENCE types gosmi leaves off tables and rows.
// A row gets its name with the first letter upper-cased, the way smidump
// does it, and its table SEQUENCE OF that.
func fillSyntax(objects []*mib.Object) {
	for _, o := range objects {
		if o.Kind == mib.KindRow && o.Syntax == "" {
			o.Syntax = entryType(o.Name)
		}
	}
	for _, o := range objects {
		if o.Kind != mib.KindTable || o.Syntax != "" {
			continue
		}
		if o.Row != nil {
			o.Syntax = "SEQUENCE OF " + o.Row.Syntax
		}
	}
}

func entryType(row string) string {
	if row == "" {
		return ""
	}
	return strings.ToUpper(row[:1]) + row[1:]
}

func convertType(t models.Type) *mib.Type {
	return &mib.Type{
		Name:        t.Name,
		Base:        t.BaseType.String(),
		Format:      t.Format,
		Status:      convertStatus(t.Status),
		Description: t.Description,
		IsTC:        t.Decl == types.DeclTextualConvention,
	}
}

func convertNode(sn gosmi.SmiNode) *mib.Object {
	o := &mib.Object{
		Name:        sn.Name,
		Kind:        convertKind(sn.Kind),
		Access:      convertAccess(sn.Access),
		Status:      convertStatus(sn.Status),
		Description: sn.Description,
	}
	if sn.Type != nil {
		o.Syntax = sn.Type.Name
		if o.Syntax == "" && sn.Type.BaseType != types.BaseTypeUnknown {
			o.Syntax = sn.Type.BaseType.String()
		}
		o.Units = sn.Type.Units
	}
	if raw := sn.GetRaw(); raw != nil && raw.Units != "" {
		o.Units = raw.Units
	}
	return o
}

// resolveRow fills in the INDEX or AUGMENTS of a row. Anything that
// doesn't resolve is left out; rendering copes with rows lacking both.
func resolveRow(m *mib.Mib, p pending) {
	if p.raw == nil {
		return
	}
	if p.raw.IndexKind == types.IndexAugment {
		rel := smi.GetRelatedNode(p.raw)
		if rel == nil {
			mibdoc.Debugf("%s::%s augments something gosmi can't find", p.row.Module.ID, p.row.Name)
			return
		}
		p.row.Augments = m.ObjectAt(rawOID(rel), mib.KindRow)
		return
	}
	for e := smi.GetFirstElement(p.raw); e != nil; e = smi.GetNextElement(e) {
		en := smi.GetElementNode(e)
		if en == nil {
			continue
		}
		oid := rawOID(en)
		col := m.ObjectAt(oid, mib.KindColumn)
		if col == nil {
			// SMIv1 allows indexing by objects outside the table
			col = m.ObjectAt(oid, mib.KindScalar)
		}
		if col == nil {
			mibdoc.Debugf("%s::%s: index %s not found", p.row.Module.ID, p.row.Name, en.Name)
			continue
		}
		p.row.Indexes = append(p.row.Indexes, mib.Index{Column: col})
	}
	if p.raw.Implied && len(p.row.Indexes) > 0 {
		p.row.Indexes[len(p.row.Indexes)-1].Implied = true
	}
}

func rawOID(n *types.SmiNode) mib.OID {
	oid := n.Oid
	if n.OidLen > 0 && n.OidLen < len(oid) {
		oid = oid[:n.OidLen]
	}
	return convertOID(oid)
}

func convertOID(oid types.Oid) mib.OID {
	out := make(mib.OID, len(oid))
	for i, s := range oid {
		out[i] = uint32(s)
	}
	return out
}

func convertKind(k types.NodeKind) mib.Kind {
	switch k {
	case types.NodeScalar:
		return mib.KindScalar
	case types.NodeTable:
		return mib.KindTable
	case types.NodeRow:
		return mib.KindRow
	case types.NodeColumn:
		return mib.KindColumn
	case types.NodeNotification:
		return mib.KindNotification
	default:
		return mib.KindNode
	}
}

func convertAccess(a types.Access) mib.Access {
	switch a {
	case types.AccessNotAccessible:
		return mib.AccessNotAccessible
	case types.AccessNotify:
		return mib.AccessNotify
	case types.AccessReadOnly:
		return mib.AccessReadOnly
	case types.AccessReadWrite:
		return mib.AccessReadWrite
	default:
		return mib.AccessUnknown
	}
}

func convertStatus(s types.Status) mib.Status {
	switch s {
	case types.StatusCurrent:
		return mib.StatusCurrent
	case types.StatusDeprecated:
		return mib.StatusDeprecated
	case types.StatusObsolete:
		return mib.StatusObsolete
	case types.StatusMandatory:
		return mib.StatusMandatory
	case types.StatusOptional:
		return mib.StatusOptional
	default:
		return mib.StatusUnknown
	}
}
