package logger

import (
	"go.uber.org/zap"
)

var instance *zap.SugaredLogger = nil

// Initialize - sets up the logger singleton with the requested level.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	instance = logger.Sugar()
	return nil
}

// Get - returns the logger from the singleton
func Get() *zap.SugaredLogger {
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - flushes buffered log entries
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// Debug - wrapper over the Debug level logging method
func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

// Info - wrapper over the Info level logging method
func Info(args ...interface{}) {
	Get().Infoln(args...)
}

// Warn - wrapper over the Warn level logging method
func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

// Error - wrapper over the Error level logging method
func Error(args ...interface{}) {
	Get().Errorln(args...)
}

// Panic - wrapper over the Panic level logging method
func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
