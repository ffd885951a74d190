/*
 * mibdoc build engine
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
	"fmt"
	"math/rand"
	"time"

	"github.com/telenornms/mibdoc"
	"github.com/telenornms/mibdoc/inventory"
	"github.com/telenornms/mibdoc/mib"
	"github.com/telenornms/mibdoc/site"
	"github.com/telenornms/mibdoc/smierte"
)

// Reporter receives stats for every reported build.
type Reporter interface {
	Send(st site.Stats, meta map[string]string) error
}

// Publisher mirrors an output directory somewhere else.
type Publisher interface {
	Upload(ctx context.Context, dir string) (int, error)
}

// Engine is the shared state of all listeners.
type Engine struct {
	Builder   site.Builder
	Reporter  Reporter  // nil refuses orders asking for a report
	Publisher Publisher // nil refuses orders asking for publishing
	// Load turns an order's modules into a Mib. nil means smierte.
	Load func(c smierte.Config) (*mib.Mib, error)
	// RetryDelay is the unit of the random wait before a failed order is
	// requeued. Zero requeues at once.
	RetryDelay time.Duration
}

// Delivery is how a Job is acknowledged; amqp091.Delivery satisfies it.
type Delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// Job is an order as received from the broker.
type Job struct {
	Order       Order
	Delivery    Delivery
	Redelivered bool
}

// Run executes a single order.
func (e *Engine) Run(ctx context.Context, o Order) (site.Stats, error) {
	o = o.withDefaults()
	if o.Report && e.Reporter == nil {
		return site.Stats{}, fmt.Errorf("order %s asks for a report, but reporting isn't configured", o)
	}
	if o.Publish && e.Publisher == nil {
		return site.Stats{}, fmt.Errorf("order %s asks for publishing, but publishing isn't configured", o)
	}
	dir, err := inventory.LockDir(o.Output)
	if err != nil {
		return site.Stats{}, fmt.Errorf("unable to acquire output lock: %w", err)
	}
	defer dir.Unlock()
	mibdoc.Debugf("%s - starting build", o)

	load := e.Load
	if load == nil {
		load = func(c smierte.Config) (*mib.Mib, error) { return c.Load() }
	}
	m, err := load(smierte.Config{Modules: o.Modules, Paths: o.Paths, CacheSize: mibdoc.Config.CacheSize})
	if err != nil {
		return site.Stats{}, fmt.Errorf("failed to load mibs: %w", err)
	}
	st, err := e.Builder.Build(ctx, m, dir.Path)
	if err != nil {
		return st, fmt.Errorf("build failed: %w", err)
	}
	if o.Report {
		if err := e.Reporter.Send(st, o.Meta()); err != nil {
			return st, fmt.Errorf("report failed: %w", err)
		}
	}
	if o.Publish {
		n, err := e.Publisher.Upload(ctx, dir.Path)
		if err != nil {
			return st, fmt.Errorf("publish failed: %w", err)
		}
		mibdoc.Debugf("%s - published %d files", o, n)
	}
	return st, nil
}

// handle runs a job and acks it. A failed job is requeued once; when it
// fails again it is dropped.
func (e *Engine) handle(ctx context.Context, job Job, name string) {
	now := time.Now()
	_, err := e.Run(ctx, job.Order)
	since := time.Since(now).Round(time.Millisecond * 10)
	if err != nil {
		requeue := !job.Redelivered
		mibdoc.Logf("[%2s]: %-15s FAIL %s: %s (requeue: %v)", name, job.Order, since.String(), err, requeue)
		if requeue && e.RetryDelay > 0 {
			d := e.RetryDelay + e.RetryDelay*time.Duration(rand.Intn(10))
			mibdoc.Debugf("Sleeping %v before NACK/requeue", d)
			select {
			case <-time.After(d):
			case <-ctx.Done():
			}
		}
		if err2 := job.Delivery.Nack(false, requeue); err2 != nil {
			mibdoc.Logf("NAck failed: %s", err2)
		}
		return
	}
	mibdoc.Logf("[%2s]: %-15s OK %s", name, job.Order, since.String())
	if err2 := job.Delivery.Ack(false); err2 != nil {
		mibdoc.Logf("Ack failed: %s", err2)
	}
}
