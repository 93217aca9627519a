package book_slot

import (
	"fmt"

	"github.com/mentorgig/session-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	if len(req.SlotID) > domain.MaxIDLength {
		return fmt.Errorf("%w: slotID is too long", ErrInvalidInput)
	}

	if req.MentorID == "" {
		return fmt.Errorf("%w: mentorID is required", ErrInvalidInput)
	}

	if len(req.MentorID) > domain.MaxIDLength {
		return fmt.Errorf("%w: mentorID is too long", ErrInvalidInput)
	}

	if len(req.GigTitle) > domain.MaxGigTitleLength {
		return fmt.Errorf("%w: gigTitle is too long", ErrInvalidInput)
	}

	return nil
}
