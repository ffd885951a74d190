/*
 * mibdoc inventory
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

/*
Package inventory deals with output directory locking.

Two builds writing the same directory at once would leave a mix of both
sites, so every build takes the directory first. Today the locks are
process-local.
*/
package inventory

import (
	"fmt"
	"path/filepath"
	"sync"
)

var dirs sync.Map

// Dir is a locked output directory.
type Dir struct {
	Path string
}

// LockDir acquires the lock for an output directory. Paths are compared
// after cleaning and making them absolute. Must call d.Unlock() when done.
func LockDir(path string) (Dir, error) {
	d := Dir{}
	abs, err := filepath.Abs(path)
	if err != nil {
		return d, fmt.Errorf("unable to resolve %s: %w", path, err)
	}
	_, loaded := dirs.LoadOrStore(abs, 1)
	if loaded {
		return d, fmt.Errorf("output directory %s still locked, refusing to start more builds", abs)
	}
	d.Path = abs
	return d, nil
}

// Unlock releases the directory lock.
func (d *Dir) Unlock() {
	if d.Path != "" {
		dirs.Delete(d.Path)
	}
}
