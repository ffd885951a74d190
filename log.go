/*
 * mibdoc log-wrappers
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

/*
log.go wraps a single charmbracelet logger so the rest of the code can do
regular calls to Log/Logf without caring about where the output goes.

Debug/Debugf evaluate Config.Debug before doing anything, which keeps
debug-logging in the per-page render loop cheap when it's disabled.
*/

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = newLogger(os.Stderr, log.InfoLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Init sets up the logger according to Config. Call it after the
// configuration is parsed.
func Init() {
	level := log.InfoLevel
	if Config.Debug {
		level = log.DebugLevel
	}
	logger = newLogger(os.Stderr, level)
	logger.SetReportCaller(Config.Debug)
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Log(v ...any) {
	logger.Helper()
	logger.Info(fmt.Sprint(v...))
}

func Logf(format string, v ...any) {
	logger.Helper()
	logger.Infof(format, v...)
}

func Warnf(format string, v ...any) {
	logger.Helper()
	logger.Warnf(format, v...)
}

func Fatal(v ...any) {
	logger.Helper()
	logger.Error(fmt.Sprint(v...))
	os.Exit(1)
}

func Fatalf(format string, v ...any) {
	logger.Helper()
	logger.Errorf(format, v...)
	os.Exit(1)
}

func Debug(v ...any) {
	if Config.Debug {
		logger.Helper()
		logger.Debug(fmt.Sprint(v...))
	}
}

func Debugf(format string, v ...any) {
	if Config.Debug {
		logger.Helper()
		logger.Debugf(format, v...)
	}
}
