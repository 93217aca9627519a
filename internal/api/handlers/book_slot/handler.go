package book_slot

import (
	"errors"
	"net/http"

	"github.com/mentorgig/session-service/internal/api/handlers"
	"github.com/mentorgig/session-service/internal/api/middleware"
	bookSlot "github.com/mentorgig/session-service/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid booking request"
	msgNotSignedIn        = "You must be signed in to book a session"
	msgBookingInProgress  = "A booking is already in progress"
	msgSlotNotFound       = "time slot not found"
	msgSlotTaken          = "This time slot has just been taken. Please pick another one."
	msgBookingFailed      = "Failed to book the session. Please try again."
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Токен достаёт middleware Auth; принципала резолвит use case
	token := middleware.TokenFromContext(r.Context())

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(token))
	if err != nil {
		// Обработка ошибок use case.
		// Любая ошибка оставляет попытку открытой для повтора:
		// подтверждение не отправляется, состояние не меняется
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: slot_id=%s, mentor_id=%s", req.SlotID, req.MentorID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookSlot.ErrUnauthenticated):
			h.logger.Warn("POST /bookings - Unauthenticated booking attempt: slot_id=%s", req.SlotID)
			handlers.RespondUnauthorized(w, msgNotSignedIn)

		case errors.Is(err, bookSlot.ErrBookingInProgress):
			h.logger.Warn("POST /bookings - Booking already in progress: slot_id=%s", req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgBookingInProgress)

		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot already taken: slot_id=%s", req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookSlot.ErrBookingFailed):
			h.logger.Error("POST /bookings - Booking procedure failed: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBookingFailed)

		default:
			h.logger.Error("POST /bookings - Failed to book slot: slot_id=%s, mentor_id=%s, error=%v",
				req.SlotID, req.MentorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ — сигнал завершения для вызывающей стороны
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Slot booked successfully: slot_id=%s, student_id=%s, email_sent=%t",
		result.SlotID, result.StudentID, result.EmailSent)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
