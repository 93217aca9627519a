package get_mentor_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentorgig/session-service/internal/domain"
	scheduleClient "github.com/mentorgig/session-service/internal/integrations/scheduleservice"
)

// UseCase use case получения свободных слотов ментора
type UseCase struct {
	scheduleClient ScheduleServiceClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleClient ScheduleServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleClient: scheduleClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Пустой список слотов — нормальный результат, а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMentorSlots: mentor=%s", req.MentorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMentorSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Запрашиваем у бэкенда свободные слоты с началом не раньше now
	slots, err := uc.scheduleClient.ListOpenSlots(ctx, req.MentorID, now)
	if err != nil {
		if errors.Is(err, scheduleClient.ErrMentorNotFound) {
			uc.logger.Warn("GetMentorSlots: mentor id=%s not found", req.MentorID)
			return nil, ErrMentorNotFound
		}
		uc.logger.Error("GetMentorSlots: failed to list slots for mentor id=%s: %v", req.MentorID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 4. Отбрасываем занятые и прошедшие слоты, не полагаясь на фильтрацию бэкенда
	eligible := make([]*domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		slot := &domain.TimeSlot{
			ID:        s.ID,
			MentorID:  s.MentorID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
		if s.IsBooked || !slot.StartsAfter(now) {
			continue
		}
		eligible = append(eligible, slot)
	}

	// 5. Сортировка по возрастанию времени начала применяется повторно,
	// чтобы порядок выдачи не зависел от порядка ответа бэкенда
	domain.SortSlotsByStart(eligible)

	result := make([]Slot, len(eligible))
	for i, s := range eligible {
		result[i] = Slot{
			ID:        s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
	}

	uc.logger.Info("GetMentorSlots: %d slots available for mentor=%s", len(result), req.MentorID)

	return &Response{
		MentorID: req.MentorID,
		Slots:    result,
	}, nil
}
