package health

import (
	"context"
	"time"
)

const checkTimeout = 2 * time.Second

// Status результат проверки живости сервиса
type Status struct {
	Healthy      bool              `json:"healthy"`
	Dependencies map[string]string `json:"dependencies"`
}

// Service сервис проверки живости: опрашивает зарегистрированные зависимости
type Service struct {
	deps   map[string]Pinger
	logger Logger
}

// NewService создает сервис проверки живости
func NewService(logger Logger) *Service {
	return &Service{
		deps:   make(map[string]Pinger),
		logger: logger,
	}
}

// Register добавляет зависимость под именем name
func (s *Service) Register(name string, p Pinger) {
	s.deps[name] = p
}

// Check опрашивает все зависимости и агрегирует результат
func (s *Service) Check(ctx context.Context) *Status {
	status := &Status{
		Healthy:      true,
		Dependencies: make(map[string]string, len(s.deps)),
	}

	for name, dep := range s.deps {
		pingCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := dep.Ping(pingCtx)
		cancel()

		if err != nil {
			s.logger.Warn("Health: dependency %s is down: %v", name, err)
			status.Healthy = false
			status.Dependencies[name] = err.Error()
			continue
		}
		status.Dependencies[name] = "ok"
	}

	return status
}
