package get_mentor_slots

import (
	"github.com/mentorgig/session-service/internal/domain"
	getMentorSlots "github.com/mentorgig/session-service/internal/usecase/get_mentor_slots"
)

// MentorSlotsResponse HTTP response model
type MentorSlotsResponse struct {
	MentorID string `json:"mentorId"`
	Slots    []Slot `json:"slots"`
}

// Slot модель свободного слота
type Slot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`   // RFC 3339
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMentorSlots.Response) *MentorSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			ID:        slot.ID,
			StartTime: slot.StartTime.UTC().Format(domain.TimeLayout),
			EndTime:   slot.EndTime.UTC().Format(domain.TimeLayout),
		}
	}

	return &MentorSlotsResponse{
		MentorID: resp.MentorID,
		Slots:    slots,
	}
}
