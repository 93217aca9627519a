package book_slot

import (
	"time"

	"github.com/mentorgig/session-service/internal/domain"
)

// Request модель запроса на бронирование слота
type Request struct {
	Token    string // Bearer-токен текущего пользователя
	SlotID   string // ID выбранного слота
	MentorID string // ID ментора
	GigTitle string // Название гига (контекст для писем)
}

// Response модель ответа с подтверждением бронирования.
// Возвращается ровно один раз за успешную попытку — это сигнал
// завершения для вызывающей стороны
type Response struct {
	Reference string    // Корреляционный идентификатор бронирования
	SlotID    string    // ID забронированного слота
	MentorID  string    // ID ментора
	StudentID string    // ID студента
	GigTitle  string    // Название гига
	StartTime time.Time // Начало сессии
	EndTime   time.Time // Конец сессии
	EmailSent bool      // false, если письма-подтверждения отправить не удалось
	BookedAt  time.Time // Момент завершения бронирования
}

// responseFromConfirmation конвертирует доменное подтверждение в ответ use case
func responseFromConfirmation(c *domain.BookingConfirmation) *Response {
	return &Response{
		Reference: c.Reference,
		SlotID:    c.SlotID,
		MentorID:  c.MentorID,
		StudentID: c.StudentID,
		GigTitle:  c.GigTitle,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		EmailSent: c.EmailSent,
		BookedAt:  c.BookedAt,
	}
}
