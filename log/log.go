// Package log is the logrus facade used across jellytv. Emissions are dropped until Setup enables file logging.
package log

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/jellytv/jellytv/constant"
	"github.com/jellytv/jellytv/key"
	"github.com/jellytv/jellytv/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	enabled bool
	closer  io.Closer
)

// Setup configures output, format and level from the logs.* keys.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dir, constant.App+".log"),
		MaxSize:    viper.GetInt(key.LogsMaxSize),
		MaxBackups: viper.GetInt(key.LogsMaxBackups),
		LocalTime:  true,
	}
	closer = rotator

	return configure(rotator)
}

func configure(out io.Writer) error {
	logrus.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Close flushes and closes the log file, if one is open.
func Close() error {
	if closer == nil {
		return nil
	}
	return closer.Close()
}

// WithFields returns an entry carrying structured fields; it writes nowhere when logging is disabled.
func WithFields(fields logrus.Fields) *logrus.Entry {
	if !enabled {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		return logrus.NewEntry(discard).WithFields(fields)
	}
	return logrus.WithFields(fields)
}

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logrus.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
