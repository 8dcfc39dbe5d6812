package logs

import (
	"os"
	"strings"

	"github.com/cardtable-online/server/config"
	"github.com/charmbracelet/log"
)

var logger *log.Logger

// InitLog builds the process-wide logger. Level comes from config.
func InitLog(appName string) {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
	})
	level := "INFO"
	if config.Conf != nil {
		level = config.Conf.Log.Level
	}
	switch strings.ToUpper(level) {
	case "DEBUG":
		logger.SetLevel(log.DebugLevel)
	case "WARN":
		logger.SetLevel(log.WarnLevel)
	case "ERROR":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

func ensure() *log.Logger {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return logger
}

func Debug(format string, values ...any) {
	ensure().Debugf(format, values...)
}

func Info(format string, values ...any) {
	ensure().Infof(format, values...)
}

func Warn(format string, values ...any) {
	ensure().Warnf(format, values...)
}

func Error(format string, values ...any) {
	ensure().Errorf(format, values...)
}

func Fatal(format string, values ...any) {
	ensure().Fatalf(format, values...)
}
