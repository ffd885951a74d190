/*
 * mibdoc build reports
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
Package report sends a metric per finished build through skogul, so build
results end up wherever the rest of the metrics go.
*/
package report

import (
	"fmt"
	"time"

	"github.com/telenornms/skogul"
	sconfig "github.com/telenornms/skogul/config"

	"github.com/telenornms/mibdoc"
	"github.com/telenornms/mibdoc/site"
)

type sender interface {
	TransformAndSend(c *skogul.Container) error
}

// Reporter hands build stats to a single skogul handler.
type Reporter struct {
	handler sender
	name    string
}

// New reads the skogul configuration at path and picks the named handler.
func New(path string, handler string) (*Reporter, error) {
	sc, err := sconfig.Path(path)
	if err != nil {
		return nil, fmt.Errorf("skogul-config failed loading: %w", err)
	}
	h := sc.Handlers[handler]
	if h == nil {
		return nil, fmt.Errorf("missing %s handler in skogul config", handler)
	}
	mibdoc.Debugf("Reporting builds through skogul handler %s", handler)
	return &Reporter{handler: &h.Handler, name: handler}, nil
}

// Metric turns build stats into a skogul metric. meta is copied into the
// metric metadata as is.
func Metric(st site.Stats, meta map[string]string) *skogul.Metric {
	now := time.Now()
	m := skogul.Metric{Time: &now}
	m.Metadata = make(map[string]interface{})
	for k, v := range meta {
		m.Metadata[k] = v
	}
	m.Data = map[string]interface{}{
		"pages":       st.Pages,
		"modules":     st.Modules,
		"types":       st.Counts.Types,
		"scalars":     st.Counts.Scalars,
		"tables":      st.Counts.Tables,
		"columns":     st.Counts.Columns,
		"duration_ms": st.Duration.Milliseconds(),
	}
	return &m
}

// Send reports a single build.
func (r *Reporter) Send(st site.Stats, meta map[string]string) error {
	c := skogul.Container{}
	c.Metrics = append(c.Metrics, Metric(st, meta))
	if err := r.handler.TransformAndSend(&c); err != nil {
		return fmt.Errorf("send to %s failed: %w", r.name, err)
	}
	return nil
}
