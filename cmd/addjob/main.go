/*
 * mibdoc addjob
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
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/telenornms/mibdoc"
	"github.com/telenornms/mibdoc/order"
)

// addjob publishes order files to the build queue, once or every -every.
func main() {
	var configFile string
	var every time.Duration
	flag.StringVar(&configFile, "f", "", "config file (TOML)")
	flag.DurationVar(&every, "every", 0, "republish at this interval, 0 publishes once")
	flag.BoolVar(&mibdoc.Config.Debug, "debug", false, "enable debug")
	flag.Parse()
	_ = godotenv.Load()
	if err := mibdoc.ParseConfig(configFile); err != nil {
		mibdoc.Fatalf("Couldn't parse config: %s", err)
	}
	mibdoc.Init()
	if flag.NArg() < 1 {
		mibdoc.Fatalf("no order-file supplied")
	}

	var bs [][]byte
	for _, f := range flag.Args() {
		b, err := os.ReadFile(f)
		if err != nil {
			mibdoc.Fatalf("failed to read %s: %s", f, err)
		}
		if _, err := order.Parse(b); err != nil {
			mibdoc.Fatalf("%s: %s", f, err)
		}
		bs = append(bs, b)
	}

	conn, err := amqp.Dial(mibdoc.Config.Broker)
	if err != nil {
		mibdoc.Fatalf("failed to connect to rabbitMQ: %s", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		mibdoc.Fatalf("failed to connect to open a channel: %s", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		mibdoc.Config.Queue, // name
		false,               // durable
		false,               // delete when unused
		false,               // exclusive
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		mibdoc.Fatalf("failed to declare a queue: %s", err)
	}

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		for _, b := range bs {
			err = ch.PublishWithContext(ctx,
				"",     // exchange
				q.Name, // routing key
				false,  // mandatory
				false,  // immediate
				amqp.Publishing{
					ContentType: "application/json",
					Body:        b,
				})
			if err != nil {
				cancel()
				mibdoc.Fatalf("failed to publish a message: %s", err)
			}
			mibdoc.Logf("Sent %d bytes", len(b))
		}
		cancel()
		if every <= 0 {
			return
		}
		mibdoc.Logf("Sleeping %s", every)
		time.Sleep(every)
	}
}
