// Пакет logger - общий для сервиса журнал поверх zap.SugaredLogger.
// До вызова Initialize все записи уходят в no-op логер, поэтому
// пакеты могут логировать не заботясь о порядке инициализации.
package logger

import (
	"go.uber.org/zap"
)

var log = zap.NewNop().Sugar()

// Initialize - настраивает журнал сервиса на заданный уровень.
// Повторный вызов пересоздаёт логер, это используется в тестах.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	base, err := cfg.Build()
	if err != nil {
		return err
	}

	log = base.Sugar()
	return nil
}

// Get - текущий логер сервиса
func Get() *zap.SugaredLogger {
	return log
}

// Sync - сброс буферов журнала, вызывается при остановке сервиса
func Sync() error {
	return log.Sync()
}

func Debug(args ...interface{}) {
	log.Debugln(args...)
}

func Info(args ...interface{}) {
	log.Infoln(args...)
}

func Warn(args ...interface{}) {
	log.Warnln(args...)
}

func Error(args ...interface{}) {
	log.Errorln(args...)
}

func Panic(args ...interface{}) {
	log.Panicln(args...)
}
