/*
 * mibdoc site builder
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
Package site renders a mib.Mib into a static HTML site.

The output is one overview page (index.html), one page per navigation
category and one page per module. Every definition gets an anchor equal to
its name on its module's page, so links are always <module>.html#<name>.
Output is deterministic: building the same Mib twice gives byte-identical
files.
*/
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/net/html"

	"github.com/telenornms/mibdoc"
	"github.com/telenornms/mibdoc/mib"
)

// Builder writes sites. The zero value links the default stylesheet.
type Builder struct {
	// Stylesheet is the href put in every page head.
	Stylesheet string
	// LocalStylesheet, if set, is copied into the output directory and
	// linked by its base name instead of Stylesheet.
	LocalStylesheet string
}

// Stats describes a finished build.
type Stats struct {
	Pages    int
	Modules  int
	Counts   mib.Counts
	Duration time.Duration
}

// Build writes the complete site for m into dir, creating dir if needed.
// Existing files are overwritten. A failure part-way leaves whatever was
// written so far; rerun the build once the cause is fixed.
func (b *Builder) Build(ctx context.Context, m *mib.Mib, dir string) (Stats, error) {
	start := time.Now()
	st := Stats{Modules: len(m.Modules), Counts: m.Counts()}
	if err := ensureDir(dir); err != nil {
		return st, err
	}
	stylesheet, err := b.stylesheet(dir)
	if err != nil {
		return st, err
	}
	w := pageWriter{dir: dir, stylesheet: stylesheet}

	if err := w.write(ctx, IndexFile, "", frame{title: "Overview"}, overview(m)); err != nil {
		return st, err
	}
	st.Pages++
	for _, p := range Pages {
		content := placeholder()
		if p == PageModules {
			content = overview(m)
		}
		if err := w.write(ctx, p.FileName, "", frame{title: p.Title, current: p}, content); err != nil {
			return st, err
		}
		st.Pages++
	}
	for _, mod := range m.Modules {
		if err := w.write(ctx, PageFile(mod.ID), mod.ID, frame{title: mod.ID}, modulePage(mod)); err != nil {
			return st, err
		}
		st.Pages++
	}
	st.Duration = time.Since(start)
	mibdoc.Logf("Wrote %d pages for %d modules to %s (%s)", st.Pages, st.Modules, dir, st.Duration.Round(time.Millisecond))
	return st, nil
}

func ensureDir(dir string) error {
	fi, err := os.Stat(dir)
	if err == nil {
		if !fi.IsDir() {
			return &DirError{Path: dir, Err: ErrNotDirectory}
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &DirError{Path: dir, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DirError{Path: dir, Err: err}
	}
	mibdoc.Debugf("Created output directory %s", dir)
	return nil
}

func (b *Builder) stylesheet(dir string) (string, error) {
	if b.LocalStylesheet == "" {
		if b.Stylesheet == "" {
			return mibdoc.DefaultStylesheet, nil
		}
		return b.Stylesheet, nil
	}
	data, err := os.ReadFile(b.LocalStylesheet)
	if err != nil {
		return "", fmt.Errorf("reading stylesheet: %w", err)
	}
	name := filepath.Base(b.LocalStylesheet)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return name, nil
}

type pageWriter struct {
	dir        string
	stylesheet string
}

func (w pageWriter) write(ctx context.Context, name string, module string, f frame, content []*html.Node) error {
	path := filepath.Join(w.dir, name)
	if err := ctx.Err(); err != nil {
		return &WriteError{Path: path, Module: module, Err: err}
	}
	mibdoc.Debugf("Rendering page %s", name)
	f.stylesheet = w.stylesheet
	data, err := render(f.document(content...))
	if err != nil {
		return &WriteError{Path: path, Module: module, Err: fmt.Errorf("render: %w", err)}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Module: module, Err: err}
	}
	return nil
}
