package book_slot

import (
	"context"
	"time"

	"github.com/mentorgig/session-service/internal/integrations/authservice"
	"github.com/mentorgig/session-service/internal/integrations/mailservice"
	"github.com/mentorgig/session-service/internal/integrations/profileservice"
	"github.com/mentorgig/session-service/internal/integrations/scheduleservice"
)

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	ResolveUser(ctx context.Context, token string) (*authservice.Principal, error)
}

// ScheduleServiceClient интерфейс клиента для SchedulingService
type ScheduleServiceClient interface {
	GetSlot(ctx context.Context, slotID string) (*scheduleservice.Slot, error)
	BookSlot(ctx context.Context, slotID, studentID, mentorID string) (bool, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetStudentProfile(ctx context.Context, studentID string) (*profileservice.Profile, error)
	GetMentorProfile(ctx context.Context, mentorID string) (*profileservice.Profile, error)
}

// MailServiceClient интерфейс клиента отправки писем-подтверждений
type MailServiceClient interface {
	SendBookingConfirmation(ctx context.Context, req *mailservice.ConfirmationRequest) error
}

// BookingGuard сторож "бронирование в процессе": у студента не может быть
// больше одной попытки бронирования одновременно (политика — отклонять)
type BookingGuard interface {
	Acquire(ctx context.Context, studentID, slotID string) (bool, error)
	Release(ctx context.Context, studentID string) error
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
