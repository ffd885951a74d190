/*
 * mibdoc order listener
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

package main

import (
	"fmt"
	"net/url"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/cobra"

	"github.com/telenornms/mibdoc"
	"github.com/telenornms/mibdoc/order"
)

func listenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Build sites on orders from the broker",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return fmt.Errorf("couldn't initialize engine: %w", err)
			}
			e.RetryDelay = time.Second
			return listen(cmd, e)
		},
	}
}

func listen(cmd *cobra.Command, e *order.Engine) error {
	ctx := cmd.Context()
	amUrl, err := url.Parse(mibdoc.Config.Broker)
	if err != nil {
		return fmt.Errorf("can't parse broker url: %w", err)
	}
	mibdoc.Debugf("Connecting to broker: %v", amUrl.Redacted())
	conn, err := amqp.Dial(mibdoc.Config.Broker)
	if err != nil {
		return fmt.Errorf("can't connect to broker: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("can't get channel: %w", err)
	}
	defer ch.Close()
	err = ch.Qos(mibdoc.Config.Workers+1, 0, true)
	if err != nil {
		return fmt.Errorf("can't set qos: %w", err)
	}

	q, err := ch.QueueDeclare(
		mibdoc.Config.Queue, // name
		false,               // durable
		false,               // delete when unused
		false,               // exclusive
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		return fmt.Errorf("can't declare queue: %w", err)
	}

	msgs, err := ch.Consume(
		q.Name, // queue
		"",     // consumer
		false,  // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return fmt.Errorf("can't register consumer: %w", err)
	}
	mibdoc.Logf("Listening for orders on %s", q.Name)
	// Serve waits for the workers, so they ack before ch and conn close
	return e.Serve(ctx, mibdoc.Config.Workers, msgs)
}
