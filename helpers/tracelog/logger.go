// Copyright © 2021 - 2023 SUSE LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//     http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tracelog provides a logger for debugging and tracing
// This logger will not print anything, unless TRACE_LEVEL is at least 1
package tracelog

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapr maps logr verbosity V(n) to the zap level -n, and zap levels are int8
const maxTraceLevel = 127

// TraceLevel returns the trace-level argument
func TraceLevel() int {
	return viper.GetInt("trace-level")
}

// LoggerFlags adds to viper flags
func LoggerFlags(pf *flag.FlagSet, argToEnv map[string]string) {
	pf.IntP("trace-level", "", 0, "Only print trace messages at or above this level (0 to 127, default 0, print nothing)")
	viper.BindPFlag("trace-level", pf.Lookup("trace-level"))
	argToEnv["trace-level"] = "TRACE_LEVEL"
}

// NewLogger creates a new logger with our setup. It only prints messages below
// TraceLevel(). The starting point for derived loggers is 1. So in the
// default configuration, TRACE_LEVEL=0, nothing is printed.
// TRACE_LEVEL=1 shows simple log statements, everything above like `details`,
// or V(3) needs a higher TRACE_LEVEL.
func NewLogger() logr.Logger {
	return NewLoggerTo(os.Stderr, TraceLevel())
}

// NewLoggerTo is NewLogger with an explicit destination and trace level.
func NewLoggerTo(out io.Writer, traceLevel int) logr.Logger {
	if traceLevel <= 0 {
		return logr.Discard()
	}
	if traceLevel > maxTraceLevel {
		traceLevel = maxTraceLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.LevelKey = "level"
	encoderConfig.NameKey = "logger"
	encoderConfig.CallerKey = ""
	encoderConfig.MessageKey = "msg"
	encoderConfig.ConsoleSeparator = " | "

	if viper.GetBool("no-colors") {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		encoderConfig.EncodeLevel = coloredLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(zapcore.Level(-traceLevel)),
	)

	return zapr.NewLogger(zap.New(core)).V(1) // NOTE: Increment of level, not absolute.
}

func coloredLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var lvl string
	switch {
	case l < zapcore.InfoLevel:
		lvl = color.BlueString("TRACE")
	case l == zapcore.InfoLevel:
		lvl = color.GreenString("INFO")
	case l == zapcore.WarnLevel:
		lvl = color.YellowString("WARN")
	case l == zapcore.ErrorLevel:
		lvl = color.RedString("ERROR")
	default:
		lvl = color.HiRedString(l.CapitalString())
	}
	enc.AppendString(lvl)
}
