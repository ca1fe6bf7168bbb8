// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	unitIndent  = 4  // spaces to indent unit entries
	nameWidth   = 28 // width for the unit name
	destWidth   = 32 // width for the destination path
	statusWidth = 14 // width for status text
)

// 🎯 UnitLine describes one upload unit result for display
type UnitLine struct {
	Name   string // unit name, "." for loose root files
	Dest   string // destination path in the repository
	Status string // succeeded/failed/skipped-empty/cancelled
	Files  int    // number of files handed to the gateway
	Detail string // error detail for failed units
}

// 📦 JobLine describes a job being started
type JobLine struct {
	ID         string
	Repository string
	Kind       string
	Source     string
	Target     string
}

// 🎯 Logger writes user-facing messages to a console, zerolog and a Sink
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	sink    *Sink
	mu      sync.Mutex
	job     *JobLine
	units   int
}

// 🏭 New creates a new logger. A nil console discards console output and a
// nil sink gets a fresh one with the default capacity.
func New(console io.Writer, zlog zerolog.Logger, sink *Sink) *Logger {
	if console == nil {
		console = io.Discard
	}
	if sink == nil {
		sink = NewSink(DefaultCapacity)
	}
	return &Logger{
		zlog:    zlog,
		console: console,
		sink:    sink,
	}
}

// Discard returns a logger that only records to its sink
func Discard() *Logger {
	return New(io.Discard, zerolog.Nop(), nil)
}

// Sink returns the sink backing this logger
func (l *Logger) Sink() *Sink {
	return l.sink
}

type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func unitSymbol(status string) (rune, color.Attribute) {
	switch status {
	case "succeeded":
		return '✓', color.FgGreen
	case "failed":
		return '✗', color.FgRed
	case "cancelled":
		return '⊘', color.FgYellow
	default:
		return '-', color.FgCyan
	}
}

// 📝 FormatUnit formats a unit result for the console
func FormatUnit(u UnitLine) string {
	symbol, symbolColor := unitSymbol(u.Status)

	line := fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", unitIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, u.Name),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", destWidth, "→ "+displayDest(u.Dest))),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, u.Status)))

	if u.Files > 0 {
		line += fmt.Sprintf(" %d files", u.Files)
	}
	if u.Detail != "" {
		line += " " + color.New(color.FgRed).Sprint(u.Detail)
	}
	return line
}

// unitMessage is the plain form stored in the sink
func unitMessage(u UnitLine) string {
	var prefix string
	switch u.Status {
	case "succeeded":
		prefix = "✅"
	case "failed":
		prefix = "❌"
	case "cancelled":
		prefix = "⚠️"
	default:
		prefix = "⏭️"
	}
	msg := fmt.Sprintf("%s %s → %s: %s", prefix, u.Name, displayDest(u.Dest), u.Status)
	if u.Files > 0 {
		msg += fmt.Sprintf(" (%d files)", u.Files)
	}
	if u.Detail != "" {
		msg += ": " + u.Detail
	}
	return msg
}

func displayDest(dest string) string {
	if dest == "" {
		return "/"
	}
	return dest
}

// 📝 LogUnit logs the result of one upload unit
func (l *Logger) LogUnit(ctx context.Context, u UnitLine) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.units++

	fmt.Fprintln(l.console, FormatUnit(u))

	level := LevelSuccess
	ev := l.zlog.Info()
	switch u.Status {
	case "failed":
		level = LevelError
		ev = l.zlog.Error()
	case "cancelled":
		level = LevelWarning
		ev = l.zlog.Warn()
	case "skipped-empty":
		level = LevelInfo
	}
	l.sink.Append(level, unitMessage(u))

	ev.Str("unit", u.Name).
		Str("dest", u.Dest).
		Str("status", u.Status).
		Int("files", u.Files).
		Str("detail", u.Detail).
		Msg("unit finished")
}

// 📝 StartJob prints the job header and resets the unit count
func (l *Logger) StartJob(ctx context.Context, job JobLine) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.job = &job
	l.units = 0

	fmt.Fprintf(l.console, "[pushing %s]\n", color.New(color.FgCyan).Sprint(job.Source))
	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(job.Repository),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(job.Kind))

	target := job.Target
	if target == "" {
		target = "/"
	}
	l.sink.Append(LevelInfo, fmt.Sprintf("🚀 Starting upload of %s to %s (%s) at %s", job.Source, job.Repository, job.Kind, target))

	l.zlog.Info().
		Str("job_id", job.ID).
		Str("repository", job.Repository).
		Str("kind", job.Kind).
		Str("source", job.Source).
		Str("target", job.Target).
		Msg("starting job")
}

// 📝 EndJob closes the current job
func (l *Logger) EndJob(ctx context.Context, state string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.job == nil {
		return
	}

	l.zlog.Info().
		Str("job_id", l.job.ID).
		Str("state", state).
		Int("units", l.units).
		Msg("job finished")

	l.job = nil
	l.units = 0
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("treepush")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.sink.Append(LevelInfo, msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.sink.Append(LevelSuccess, "✅ "+msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.sink.Append(LevelWarning, "⚠️ "+msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.sink.Append(LevelError, "❌ "+msg)
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.sink.Append(LevelInfo, msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
