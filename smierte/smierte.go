/*
 * mibdoc SMI loading
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

/*
Package smierte handles loading MIB files and modules (SMI)-stuff. The name
is a play on SMI and smerte (pain), because this is such a painful process.

While this is based on gosmi, as much of that as possible stays in here:
the rest of mibdoc only sees the mib model and mibdoc.Node.

gosmi keeps its state globally, so everything touching it goes through
one lock. Loading takes it exclusively, lookups share it.
*/

import (
	"fmt"
	"regexp"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sleepinggenius2/gosmi"
	"github.com/sleepinggenius2/gosmi/types"

	"github.com/telenornms/mibdoc"
)

// Config is what to load and where to find it.
type Config struct {
	Modules   []string // SMI modules to load
	Paths     []string // Paths to the modules
	CacheSize int      // Lookup cache entries, 0 means 1024
}

var (
	lock  sync.RWMutex
	cache *lru.Cache[string, mibdoc.Node]
)

var numeric = regexp.MustCompile(`^\.?[0-9.]+$`)

// Init (re)loads MIB files from disk. Anything loaded by an earlier Init is
// dropped, along with the lookup cache.
func (c *Config) Init() error {
	lock.Lock()
	defer lock.Unlock()
	return c.init()
}

func (c *Config) init() error {
	gosmi.Exit()
	gosmi.Init()

	size := c.CacheSize
	if size <= 0 {
		size = 1024
	}
	var err error
	cache, err = lru.New[string, mibdoc.Node](size)
	if err != nil {
		return fmt.Errorf("lookup cache: %w", err)
	}

	for _, path := range c.Paths {
		mibdoc.Debugf("mib path added: %s", path)
		gosmi.AppendPath(path)
	}
	for _, module := range c.Modules {
		moduleName, err := gosmi.LoadModule(module)
		if err != nil {
			return fmt.Errorf("module load failed: %w", err)
		}
		mibdoc.Debugf("Loaded SMI module %s", moduleName)
	}
	return nil
}

// Lookup resolves a symbolic name (e.g.: sysName) or a numeric OID. Init
// must have been called.
func Lookup(item string) (mibdoc.Node, error) {
	lock.RLock()
	defer lock.RUnlock()
	if cache == nil {
		return mibdoc.Node{}, fmt.Errorf("lookup of %s before smierte is initialized", item)
	}
	if hit, ok := cache.Get(item); ok {
		return hit, nil
	}
	ret := mibdoc.Node{Key: item}
	var n gosmi.SmiNode
	var err error
	if numeric.MatchString(item) {
		oid, err := types.OidFromString(item)
		if err != nil {
			return ret, fmt.Errorf("unable to parse OID %s: %w", item, err)
		}
		n, err = gosmi.GetNodeByOID(oid)
		if err != nil {
			return ret, fmt.Errorf("gosmi.GetNodeByOID failed: %w", err)
		}
	} else {
		n, err = gosmi.GetNode(item)
		if err != nil {
			return ret, fmt.Errorf("gosmi.GetNode failed: %w", err)
		}
	}
	ret.Numeric = n.RenderNumeric()
	ret.Name = n.Render(types.RenderName)
	ret.Qualified = n.RenderQualified()
	ret.Module = n.GetModule().Name
	cache.Add(item, ret)
	return ret, nil
}
