package get_mentor_slots

import (
	"context"
	"time"

	"github.com/mentorgig/session-service/internal/integrations/scheduleservice"
)

// ScheduleServiceClient интерфейс клиента для SchedulingService
type ScheduleServiceClient interface {
	ListOpenSlots(ctx context.Context, mentorID string, from time.Time) ([]scheduleservice.Slot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
