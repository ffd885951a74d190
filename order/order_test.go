/*
 * mibdoc build order tests
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

package order

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telenornms/mibdoc"
	"github.com/telenornms/mibdoc/inventory"
	"github.com/telenornms/mibdoc/mib"
	"github.com/telenornms/mibdoc/site"
	"github.com/telenornms/mibdoc/smierte"
)

type reports struct {
	meta []map[string]string
	st   []site.Stats
}

func (r *reports) Send(st site.Stats, meta map[string]string) error {
	r.st = append(r.st, st)
	r.meta = append(r.meta, meta)
	return nil
}

type uploads struct {
	dirs []string
	err  error
}

func (u *uploads) Upload(ctx context.Context, dir string) (int, error) {
	u.dirs = append(u.dirs, dir)
	return 1, u.err
}

type acks struct {
	acked    int
	nacked   int
	requeued int
}

func (a *acks) Ack(multiple bool) error {
	a.acked++
	return nil
}

func (a *acks) Nack(multiple, requeue bool) error {
	a.nacked++
	if requeue {
		a.requeued++
	}
	return nil
}

// loader returns a fixed one-module Mib and records what it was asked
// to load.
func loader(t *testing.T, seen *smierte.Config) func(smierte.Config) (*mib.Mib, error) {
	return func(c smierte.Config) (*mib.Mib, error) {
		*seen = c
		m := mib.New()
		mod, err := m.AddModule("M1")
		require.NoError(t, err)
		require.NoError(t, mod.Add(&mib.Object{Name: "sysUptime", Kind: mib.KindScalar, Syntax: "TimeTicks",
			Access: mib.AccessReadOnly, Status: mib.StatusCurrent}, mib.OID{1, 3, 6, 1, 2, 1, 1, 3}))
		return m, nil
	}
}

func failing(c smierte.Config) (*mib.Mib, error) {
	return nil, errors.New("no such module")
}

func TestParse(t *testing.T) {
	o, err := Parse([]byte(`{"ID":"nightly","Modules":["IF-MIB"],"Output":"/srv/html","Publish":true}`))
	require.NoError(t, err)
	assert.Equal(t, Order{ID: "nightly", Modules: []string{"IF-MIB"}, Output: "/srv/html", Publish: true}, o)
	assert.Equal(t, "nightly", o.String())
	assert.Equal(t, "/srv/html", Order{Output: "/srv/html"}.String())

	_, err = Parse([]byte(`{"Moduels":["IF-MIB"]}`))
	assert.Error(t, err)
	_, err = Parse([]byte(`{`))
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	o := Order{}.withDefaults()
	assert.Equal(t, mibdoc.Config.MibModules, o.Modules)
	assert.Equal(t, mibdoc.Config.MibPaths, o.Paths)
	assert.Equal(t, mibdoc.Config.OutputDir, o.Output)

	o = Order{Modules: []string{"X"}, Output: "out"}.withDefaults()
	assert.Equal(t, []string{"X"}, o.Modules)
	assert.Equal(t, "out", o.Output)

	assert.Equal(t, map[string]string{"output": "out"}, o.Meta())
	o.ID = "a"
	assert.Equal(t, "a", o.Meta()["id"])
}

func TestRun(t *testing.T) {
	var seen smierte.Config
	r := &reports{}
	u := &uploads{}
	e := &Engine{Reporter: r, Publisher: u, Load: loader(t, &seen)}
	out := filepath.Join(t.TempDir(), "html")

	st, err := e.Run(context.Background(), Order{ID: "one", Modules: []string{"M1"}, Paths: []string{"/mibs"},
		Output: out, Report: true, Publish: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"M1"}, seen.Modules)
	assert.Equal(t, []string{"/mibs"}, seen.Paths)
	assert.Equal(t, 1, st.Modules)
	assert.FileExists(t, filepath.Join(out, site.IndexFile))
	assert.FileExists(t, filepath.Join(out, "M1.html"))

	require.Len(t, r.meta, 1)
	assert.Equal(t, "one", r.meta[0]["id"])
	assert.Equal(t, st, r.st[0])
	require.Len(t, u.dirs, 1)
	assert.True(t, filepath.IsAbs(u.dirs[0]))

	// the lock is released afterwards
	d, err := inventory.LockDir(out)
	require.NoError(t, err)
	d.Unlock()
}

func TestRunFailures(t *testing.T) {
	var seen smierte.Config
	out := filepath.Join(t.TempDir(), "html")

	_, err := (&Engine{Load: loader(t, &seen)}).Run(context.Background(), Order{Output: out, Report: true})
	assert.Error(t, err)
	_, err = (&Engine{Load: loader(t, &seen)}).Run(context.Background(), Order{Output: out, Publish: true})
	assert.Error(t, err)

	_, err = (&Engine{Load: failing}).Run(context.Background(), Order{Output: out})
	assert.ErrorContains(t, err, "no such module")

	u := &uploads{err: errors.New("bucket gone")}
	_, err = (&Engine{Load: loader(t, &seen), Publisher: u}).Run(context.Background(), Order{Output: out, Publish: true})
	assert.ErrorIs(t, err, u.err)

	d, err := inventory.LockDir(out)
	require.NoError(t, err)
	defer d.Unlock()
	_, err = (&Engine{Load: loader(t, &seen)}).Run(context.Background(), Order{Output: out})
	assert.ErrorContains(t, err, "lock")
}

func TestListener(t *testing.T) {
	var seen smierte.Config
	base := t.TempDir()
	ok := &acks{}
	retry := &acks{}
	dropped := &acks{}

	c := make(chan Job, 3)
	c <- Job{Order: Order{Output: filepath.Join(base, "ok")}, Delivery: ok}
	c <- Job{Order: Order{Output: filepath.Join(base, "retry"), Report: true}, Delivery: retry}
	c <- Job{Order: Order{Output: filepath.Join(base, "dropped"), Report: true}, Delivery: dropped, Redelivered: true}
	close(c)

	e := &Engine{Load: loader(t, &seen)}
	e.Listener(context.Background(), c, "0")

	assert.Equal(t, acks{acked: 1}, *ok)
	assert.Equal(t, acks{nacked: 1, requeued: 1}, *retry)
	assert.Equal(t, acks{nacked: 1}, *dropped)
}
