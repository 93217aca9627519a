package get_mentor_slots

import (
	"fmt"

	"github.com/mentorgig/session-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MentorID == "" {
		return fmt.Errorf("%w: mentorID is required", ErrInvalidInput)
	}

	if len(req.MentorID) > domain.MaxIDLength {
		return fmt.Errorf("%w: mentorID is too long", ErrInvalidInput)
	}

	return nil
}
