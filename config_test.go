/*
 * mibdoc configuration tests
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

package mibdoc

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveConfig(t *testing.T) {
	t.Helper()
	saved := Config
	t.Cleanup(func() { Config = saved })
}

func TestParseConfig(t *testing.T) {
	saveConfig(t)
	file := filepath.Join(t.TempDir(), "mibdoc.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
workers = 4
mibmodules = ["IF-MIB"]
outputdir = "/srv/mibs"
nosuchkey = 1

[publish]
endpoint = "s3.example.net"
bucket = "mibs"
`), 0o644))
	t.Setenv("MIBDOC_S3_SECRET_KEY", "hunter2")

	require.NoError(t, ParseConfig(file))
	assert.Equal(t, 4, Config.Workers)
	assert.Equal(t, []string{"IF-MIB"}, Config.MibModules)
	assert.Equal(t, "/srv/mibs", Config.OutputDir)
	assert.Equal(t, "s3.example.net", Config.Publish.Endpoint)
	assert.Equal(t, "hunter2", Config.Publish.SecretKey)
	assert.Equal(t, DefaultStylesheet, Config.Stylesheet, "defaults survive")
}

func TestParseConfigErrors(t *testing.T) {
	saveConfig(t)
	assert.Error(t, ParseConfig(filepath.Join(t.TempDir(), "missing.toml")))

	file := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(file, []byte("workers = 0\n"), 0o644))
	assert.ErrorContains(t, ParseConfig(file), "workers")
}

func TestParseConfigEnvOnly(t *testing.T) {
	saveConfig(t)
	t.Setenv("MIBDOC_OUTPUT", "/tmp/out")
	t.Setenv("MIBDOC_BROKER", "amqp://u:p@broker/")
	require.NoError(t, ParseConfig(""))
	assert.Equal(t, "/tmp/out", Config.OutputDir)
	assert.Equal(t, "amqp://u:p@broker/", Config.Broker)
}

func TestDebugGating(t *testing.T) {
	saveConfig(t)
	var buf bytes.Buffer
	Config.Debug = false
	Init()
	SetOutput(&buf)
	Debugf("hidden %d", 1)
	Logf("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")

	buf.Reset()
	Config.Debug = true
	Init()
	SetOutput(&buf)
	Debugf("visible %d", 3)
	assert.Contains(t, buf.String(), "visible 3")

	Config.Debug = false
	Init()
}
