package health

import "context"

// Pinger интерфейс проверки доступности зависимости
type Pinger interface {
	Ping(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
