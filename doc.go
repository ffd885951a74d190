/*
 * mibdoc package documentation
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
Package mibdoc renders compiled MIB modules into a static, cross-linked HTML
site meant for browsing a device's management interface offline.

MIB files are compiled with gosmi by the smierte sub-package into the
read-only model in mib. The site package turns that model into pages: an
overview, one page per navigation category and one page per module, with a
stable anchor for every scalar, table, row, column and type.

Builds can be run from the command line, or queued as orders over AMQP and
handled by a pool of workers, optionally reporting statistics through
Skogul and mirroring the result to S3-compatible storage.
*/
package mibdoc
