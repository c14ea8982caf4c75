// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides the level-prefixed, optionally colored
// logger used throughout the pipeline. It wraps the standard log
// package rather than replacing it, adding only a level prefix and,
// when the output is a terminal, color.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level orders the severities a message can be logged at.
type Level int32

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var names = map[Level]string{Debug: "DEBUG", Info: "INFO", Warn: "WARN", Error: "ERROR"}

var colors = map[Level]*color.Color{
	Debug: color.New(color.FgHiBlack),
	Info:  color.New(color.FgCyan),
	Warn:  color.New(color.FgYellow),
	Error: color.New(color.FgRed, color.Bold),
}

// Logger writes level-prefixed, optionally colored lines through an
// underlying *log.Logger.
type Logger struct {
	out     *log.Logger
	color   bool
	minimum int32
}

// New builds a Logger writing to w. Color is enabled automatically
// when w is a terminal file descriptor.
func New(w io.Writer, minimum Level) *Logger {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{
		out:     log.New(w, "", log.LstdFlags),
		color:   useColor,
		minimum: int32(minimum),
	}
}

// SetMinimum changes the minimum level that will be emitted.
func (l *Logger) SetMinimum(level Level) { atomic.StoreInt32(&l.minimum, int32(level)) }

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if int32(level) < atomic.LoadInt32(&l.minimum) {
		return
	}
	prefix := fmt.Sprintf("[%s] ", names[level])
	if l.color {
		prefix = colors[level].Sprint(prefix)
	}
	l.out.Printf(prefix + fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.log(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(Info, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(Warn, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(Error, format, args...) }

// Default is the logger used by package-level convenience functions,
// writing to stderr at Info level.
var Default = New(os.Stderr, Info)

func Debugf(format string, args ...interface{}) { Default.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { Default.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { Default.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { Default.Errorf(format, args...) }
