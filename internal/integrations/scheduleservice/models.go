package scheduleservice

import "time"

// Slot модель слота из SchedulingService
type Slot struct {
	ID        string    `json:"id"`
	MentorID  string    `json:"mentor_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	IsBooked  bool      `json:"is_booked"`
}

// BookSlotRequest тело запроса атомарной процедуры бронирования
type BookSlotRequest struct {
	StudentID string `json:"student_id"`
	MentorID  string `json:"mentor_id"`
}

// BookSlotResponse ответ атомарной процедуры бронирования
type BookSlotResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse модель ошибки от SchedulingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
