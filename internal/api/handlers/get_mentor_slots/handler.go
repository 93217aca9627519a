package get_mentor_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mentorgig/session-service/internal/api/handlers"
	getMentorSlots "github.com/mentorgig/session-service/internal/usecase/get_mentor_slots"
)

const (
	msgInvalidMentorID = "invalid mentor id"
	msgMentorNotFound  = "mentor not found"
	msgLoadFailed      = "Failed to load available time slots"
)

type Handler struct {
	useCase GetMentorSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetMentorSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/mentors/{mentorId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	mentorID := vars["mentorId"]

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getMentorSlots.Request{MentorID: mentorID})
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getMentorSlots.ErrInvalidInput):
			h.logger.Warn("GET /mentors/{id}/slots - Invalid mentor ID: mentor_id=%s", mentorID)
			handlers.RespondBadRequest(w, msgInvalidMentorID)

		case errors.Is(err, getMentorSlots.ErrMentorNotFound):
			h.logger.Warn("GET /mentors/{id}/slots - Mentor not found: mentor_id=%s", mentorID)
			handlers.RespondNotFound(w, msgMentorNotFound)

		default:
			h.logger.Error("GET /mentors/{id}/slots - Failed to load slots: mentor_id=%s, error=%v",
				mentorID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgLoadFailed)
		}
		return
	}

	// Формируем HTTP ответ; пустой список слотов — валидный ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /mentors/{id}/slots - Slots retrieved successfully: mentor_id=%s, slots_count=%d",
		mentorID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
