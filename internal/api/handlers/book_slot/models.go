package book_slot

import (
	"github.com/mentorgig/session-service/internal/domain"
	bookSlot "github.com/mentorgig/session-service/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	SlotID   string `json:"slotId"`
	MentorID string `json:"mentorId"`
	GigTitle string `json:"gigTitle"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Reference string `json:"reference"`
	SlotID    string `json:"slotId"`
	MentorID  string `json:"mentorId"`
	StudentID string `json:"studentId"`
	GigTitle  string `json:"gigTitle"`
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`   // RFC 3339
	EmailSent bool   `json:"emailSent"`
	BookedAt  string `json:"bookedAt"` // RFC 3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest(token string) *bookSlot.Request {
	return &bookSlot.Request{
		Token:    token,
		SlotID:   r.SlotID,
		MentorID: r.MentorID,
		GigTitle: r.GigTitle,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookingResponse {
	return &BookingResponse{
		Reference: resp.Reference,
		SlotID:    resp.SlotID,
		MentorID:  resp.MentorID,
		StudentID: resp.StudentID,
		GigTitle:  resp.GigTitle,
		StartTime: resp.StartTime.UTC().Format(domain.TimeLayout),
		EndTime:   resp.EndTime.UTC().Format(domain.TimeLayout),
		EmailSent: resp.EmailSent,
		BookedAt:  resp.BookedAt.UTC().Format(domain.TimeLayout),
	}
}
