package get_mentor_slots

import "time"

// Request модель запроса на получение свободных слотов ментора
type Request struct {
	MentorID string // ID ментора
}

// Response модель ответа со списком свободных слотов
type Response struct {
	MentorID string // ID ментора
	Slots    []Slot // Свободные слоты по возрастанию времени начала
}

// Slot модель свободного слота
type Slot struct {
	ID        string    // ID слота
	StartTime time.Time // Начало слота
	EndTime   time.Time // Конец слота
}
