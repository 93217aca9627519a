package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mentorgig/session-service/internal/domain"
	authClient "github.com/mentorgig/session-service/internal/integrations/authservice"
	"github.com/mentorgig/session-service/internal/integrations/mailservice"
	scheduleClient "github.com/mentorgig/session-service/internal/integrations/scheduleservice"
)

// UseCase use case бронирования слота.
// Оркестрирует полный сценарий: аутентификация, атомарное бронирование
// на стороне бэкенда, получение профилей сторон и отправка писем
type UseCase struct {
	authClient     AuthServiceClient
	scheduleClient ScheduleServiceClient
	profileClient  ProfileServiceClient
	mailClient     MailServiceClient
	guard          BookingGuard
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	authClient AuthServiceClient,
	scheduleClient ScheduleServiceClient,
	profileClient ProfileServiceClient,
	mailClient MailServiceClient,
	guard BookingGuard,
	logger Logger,
) *UseCase {
	return &UseCase{
		authClient:     authClient,
		scheduleClient: scheduleClient,
		profileClient:  profileClient,
		mailClient:     mailClient,
		guard:          guard,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case бронирования слота.
//
// Ошибки до атомарного бронирования (шаги 1-5) прерывают попытку: сторож
// снимается, вызывающая сторона может повторить. После успешного бронирования
// слот уже закоммичен бэкендом, поэтому сбои получения профилей и отправки
// писем не считаются сбоем операции: они логируются, а в ответе EmailSent=false
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%s, mentor=%s", req.SlotID, req.MentorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим текущего аутентифицированного пользователя.
	// Без принципала атомарная процедура бронирования не вызывается
	principal, err := uc.authClient.ResolveUser(ctx, req.Token)
	if err != nil {
		if errors.Is(err, authClient.ErrUnauthenticated) {
			uc.logger.Warn("BookSlot: no authenticated user for slot=%s", req.SlotID)
			return nil, ErrUnauthenticated
		}
		uc.logger.Error("BookSlot: failed to resolve user: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve user: %v", ErrInternal, err)
	}

	// 3. Ставим сторож "бронирование в процессе".
	// Одновременно у студента может быть не больше одной попытки,
	// вторая отклоняется сразу
	acquired, err := uc.guard.Acquire(ctx, principal.ID, req.SlotID)
	if err != nil {
		uc.logger.Error("BookSlot: failed to acquire booking guard for student=%s: %v", principal.ID, err)
		return nil, fmt.Errorf("%w: failed to acquire booking guard: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("BookSlot: booking already in progress for student=%s", principal.ID)
		return nil, ErrBookingInProgress
	}
	defer func() {
		// Сторож снимается даже если контекст запроса уже отменён
		if err := uc.guard.Release(context.WithoutCancel(ctx), principal.ID); err != nil {
			uc.logger.Error("BookSlot: failed to release booking guard for student=%s: %v", principal.ID, err)
		}
	}()

	// 4. Получаем слот: его границы нужны для ответа и писем
	slot, err := uc.scheduleClient.GetSlot(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, scheduleClient.ErrSlotNotFound) {
			uc.logger.Warn("BookSlot: slot id=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("BookSlot: failed to get slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if slot.MentorID != req.MentorID {
		uc.logger.Warn("BookSlot: slot id=%s belongs to mentor=%s, not mentor=%s",
			req.SlotID, slot.MentorID, req.MentorID)
		return nil, fmt.Errorf("%w: slot does not belong to this mentor", ErrInvalidInput)
	}

	// 5. Вызываем атомарную процедуру бронирования.
	// Эксклюзивность гарантирует бэкенд: успехом считается только
	// истинный success, любой другой исход — неуспех попытки
	success, err := uc.scheduleClient.BookSlot(ctx, req.SlotID, principal.ID, req.MentorID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleClient.ErrSlotTaken):
			uc.logger.Warn("BookSlot: slot id=%s already taken", req.SlotID)
			return nil, ErrSlotTaken
		case errors.Is(err, scheduleClient.ErrSlotNotFound):
			uc.logger.Warn("BookSlot: slot id=%s disappeared before booking", req.SlotID)
			return nil, ErrSlotNotFound
		default:
			uc.logger.Error("BookSlot: booking procedure failed for slot=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
		}
	}
	if !success {
		uc.logger.Warn("BookSlot: booking procedure returned failure for slot=%s", req.SlotID)
		return nil, ErrBookingFailed
	}

	uc.logger.Info("BookSlot: slot=%s booked for student=%s", req.SlotID, principal.ID)

	// 6. Бронирование закоммичено. Дальше только best-effort уведомления
	emailSent := uc.notifyParticipants(ctx, req, principal.ID, slot)

	// 7. Формируем подтверждение — единственный сигнал завершения
	confirmation := &domain.BookingConfirmation{
		Reference: uuid.NewString(),
		SlotID:    req.SlotID,
		MentorID:  req.MentorID,
		StudentID: principal.ID,
		GigTitle:  req.GigTitle,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		EmailSent: emailSent,
		BookedAt:  uc.timeProvider.Now(),
	}

	return responseFromConfirmation(confirmation), nil
}

// notifyParticipants получает профили обеих сторон и отправляет письма.
// Возвращает true только если письма отправлены. Любой сбой логируется
// и не влияет на исход бронирования
func (uc *UseCase) notifyParticipants(
	ctx context.Context,
	req *Request,
	studentID string,
	slot *scheduleClient.Slot,
) bool {
	// Профили студента и ментора запрашиваются параллельно
	// и ожидаются совместно
	var studentProfile, mentorProfile *domain.Profile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := uc.profileClient.GetStudentProfile(gctx, studentID)
		if err != nil {
			return err
		}
		studentProfile = &domain.Profile{Email: p.Email, DisplayName: p.FullName}
		return nil
	})
	g.Go(func() error {
		p, err := uc.profileClient.GetMentorProfile(gctx, req.MentorID)
		if err != nil {
			return err
		}
		mentorProfile = &domain.Profile{Email: p.Email, DisplayName: p.FullName}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("BookSlot: failed to fetch participant profiles for slot=%s: %v", req.SlotID, err)
		return false
	}

	if !studentProfile.CanBeNotified() || !mentorProfile.CanBeNotified() {
		uc.logger.Warn("BookSlot: participant without email, skipping confirmation for slot=%s", req.SlotID)
		return false
	}

	err := uc.mailClient.SendBookingConfirmation(ctx, &mailservice.ConfirmationRequest{
		StudentEmail: studentProfile.Email,
		StudentName:  studentProfile.DisplayName,
		MentorEmail:  mentorProfile.Email,
		MentorName:   mentorProfile.DisplayName,
		GigTitle:     req.GigTitle,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
	})
	if err != nil {
		uc.logger.Error("BookSlot: failed to send confirmation emails for slot=%s: %v", req.SlotID, err)
		return false
	}

	return true
}
