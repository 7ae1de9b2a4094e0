package logger

import (
	"go.uber.org/zap"
)

// Logger interface bütün servislərin istifadə etdiyi log metodlarını təyin edir.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New verilmiş namespace ilə zap əsaslı Logger yaradır.
func New(namespace string) Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.InitialFields = map[string]interface{}{
		"namespace": namespace,
	}

	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return &zapLogger{sugar: zl.Sugar()}
}

// NewNop testlərdə istifadə üçün heç nə yazmayan Logger qaytarır.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *zapLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *zapLogger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}
