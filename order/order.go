/*
 * mibdoc build orders
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
Package order runs site builds on request.

An Order names the modules to document and where to put the result. The
Engine loads the modules, builds the site and, if asked to, reports the
build and mirrors the output. Orders normally arrive over AMQP and are fed
to a pool of Listener goroutines.
*/
package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/telenornms/mibdoc"
)

// Order is a single build request. Everything but ID falls back to the
// global configuration when left out.
//
// Modules and Paths are SMI modules and the directories to find them in.
// Output is the directory the site is written to; two orders for the
// same Output never run at the same time.
//
// ID is not used by mibdoc at all, but included in logs and reports to
// allow a caller to match the order to the result.
//
// Publish mirrors the finished site to the configured bucket, Report sends
// build stats through skogul.
type Order struct {
	ID      string   `json:",omitempty"`
	Modules []string `json:",omitempty"`
	Paths   []string `json:",omitempty"`
	Output  string   `json:",omitempty"`
	Publish bool     `json:",omitempty"`
	Report  bool     `json:",omitempty"`
}

func (o Order) String() string {
	if o.ID != "" {
		return o.ID
	}
	return o.Output
}

// Parse decodes a JSON order. Unknown fields are refused, since a typo
// would otherwise silently build the default site.
func Parse(b []byte) (Order, error) {
	o := Order{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&o); err != nil {
		return o, fmt.Errorf("order json unmarshal: %w", err)
	}
	return o, nil
}

// withDefaults fills in what the order left out from mibdoc.Config.
func (o Order) withDefaults() Order {
	if len(o.Modules) == 0 {
		o.Modules = mibdoc.Config.MibModules
	}
	if len(o.Paths) == 0 {
		o.Paths = mibdoc.Config.MibPaths
	}
	if o.Output == "" {
		o.Output = mibdoc.Config.OutputDir
	}
	return o
}

// Meta is the metadata reported along with the build of o.
func (o Order) Meta() map[string]string {
	meta := map[string]string{"output": o.Output}
	if o.ID != "" {
		meta["id"] = o.ID
	}
	return meta
}

// Listener is the receiving end of a Job channel; runs until c is closed.
func (e *Engine) Listener(ctx context.Context, c <-chan Job, name string) {
	mibdoc.Debugf("Starting listener %s...", name)
	for job := range c {
		e.handle(ctx, job, name)
	}
}
