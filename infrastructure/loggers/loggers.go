package loggers

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type MultiLogger struct {
	loggers  []*logrus.Logger
	level    logrus.Level
	fields   logrus.Fields
	exitFunc func(int)
}

func InitializeMultiLogger(logToStdout bool, level string) (*MultiLogger, error) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("error on parsing log level='%s': %v", level, err)
	}
	multiLogger := &MultiLogger{
		loggers:  make([]*logrus.Logger, 0),
		level:    logLevel,
		fields:   logrus.Fields{},
		exitFunc: os.Exit,
	}
	if logToStdout {
		multiLogger.AddOutput(os.Stdout)
	}
	return multiLogger, nil
}

func (multiLogger *MultiLogger) AddOutput(out io.Writer) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(multiLogger.level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	multiLogger.loggers = append(multiLogger.loggers, logger)
}

// WithField returns a logger that shares outputs with multiLogger and adds
// key=value to every line.
func (multiLogger *MultiLogger) WithField(key string, value any) *MultiLogger {
	fields := make(logrus.Fields, len(multiLogger.fields)+1)
	for k, v := range multiLogger.fields {
		fields[k] = v
	}
	fields[key] = value
	return &MultiLogger{loggers: multiLogger.loggers, level: multiLogger.level, fields: fields, exitFunc: multiLogger.exitFunc}
}

func (multiLogger *MultiLogger) Info(msg string, args ...any) {
	multiLogger.doLog(logrus.InfoLevel, msg, args...)
}

func (multiLogger *MultiLogger) Warn(msg string, args ...any) {
	multiLogger.doLog(logrus.WarnLevel, msg, args...)
}

func (multiLogger *MultiLogger) Debug(msg string, args ...any) {
	multiLogger.doLog(logrus.DebugLevel, msg, args...)
}

func (multiLogger *MultiLogger) Error(msg string, args ...any) {
	multiLogger.doLog(logrus.ErrorLevel, msg, args...)
}

func (multiLogger *MultiLogger) Fatal(msg string, args ...any) {
	multiLogger.doLog(logrus.FatalLevel, msg, args...)
}

func (multiLogger *MultiLogger) doLog(level logrus.Level, msg string, args ...any) {
	result := fmt.Sprintf(msg, args...)
	for _, logger := range multiLogger.loggers {
		// Entry.Log does not exit on fatal, so every output gets the line first
		logger.WithFields(multiLogger.fields).Log(level, result)
	}
	if level == logrus.FatalLevel {
		multiLogger.exitFunc(1)
	}
}
