/*
 * mibdoc order dispatch
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
	"strconv"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/telenornms/mibdoc"
)

// ErrDeliveriesClosed is returned by Serve when the broker stops
// delivering.
var ErrDeliveriesClosed = errors.New("delivery channel closed, connection probably dead")

// Serve feeds orders from msgs to a pool of workers Listeners until ctx is
// done or msgs is closed. Orders that don't parse are rejected. Serve
// returns only after every worker has finished its current job, so the
// broker channel can be closed once it does.
func (e *Engine) Serve(ctx context.Context, workers int, msgs <-chan amqp.Delivery) error {
	if workers < 1 {
		workers = 1
	}
	c := make(chan Job)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			e.Listener(ctx, c, name)
		}(strconv.Itoa(i))
	}
	defer func() {
		close(c)
		wg.Wait()
		mibdoc.Debugf("All workers stopped")
	}()
	mibdoc.Logf("Started %d workers", workers)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return ErrDeliveriesClosed
			}
			o, err := Parse(d.Body)
			if err != nil {
				mibdoc.Logf("%s", err)
				if err := d.Reject(false); err != nil {
					mibdoc.Logf("Reject failed: %s", err)
				}
				continue
			}
			select {
			case c <- Job{Order: o, Delivery: d, Redelivered: d.Redelivered}:
			case <-ctx.Done():
				// nobody took it, hand it back
				if err := d.Nack(false, true); err != nil {
					mibdoc.Logf("NAck failed: %s", err)
				}
				return ctx.Err()
			}
		}
	}
}
