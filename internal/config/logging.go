/*
 * logging.go, part of mdconf.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package config

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// AppName tags every record written by the loggers set up here.
const AppName = "groconf"

func nop() error { return nil }

// newHandler returns a handler for w, tagged with AppName. JSON records are
// meant for log files, text ones for a terminal.
func newHandler(w io.Writer, level slog.Level, json bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if json {
		h = slog.NewJSONHandler(w, opts)
	}
	return h.WithAttrs([]slog.Attr{slog.String("app", AppName)})
}

// SetupLogger returns a logger writing text to stderr and, if logFile is not
// empty, JSON records appended to logFile. A log file that can't be opened is
// reported and skipped. The returned function closes the log file.
func SetupLogger(logFile string, level slog.Level) (*slog.Logger, func() error) {
	stderr := newHandler(os.Stderr, level, false)
	if logFile == "" {
		return slog.New(stderr), nop
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger := slog.New(stderr)
		logger.Error("can't open log file, logging to stderr only", "file", logFile, "error", err)
		return logger, nop
	}
	return slog.New(slogmulti.Fanout(stderr, newHandler(file, level, true))), file.Close
}

// SetupLoggerWithWriters is SetupLogger with the text and JSON outputs given
// as writers.
func SetupLoggerWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slogmulti.Fanout(newHandler(stderr, level, false), newHandler(file, level, true)))
}
