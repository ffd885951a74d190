/*
 * mibdoc site errors
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
	"errors"
	"fmt"
)

// ErrNotDirectory is wrapped by DirError when the output path exists but
// isn't a directory.
var ErrNotDirectory = errors.New("not a directory")

// DirError means the output directory couldn't be used. It aborts the
// build before anything is written.
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("output directory %s: %v", e.Path, e.Err)
}

func (e *DirError) Unwrap() error {
	return e.Err
}

// WriteError means a page couldn't be rendered or written. Module is
// blank for pages that don't belong to a module.
type WriteError struct {
	Path   string
	Module string
	Err    error
}

func (e *WriteError) Error() string {
	if e.Module != "" {
		return fmt.Sprintf("writing %s (module %s): %v", e.Path, e.Module, e.Err)
	}
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
