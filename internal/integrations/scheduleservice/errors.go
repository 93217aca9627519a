package scheduleservice

import "errors"

var (
	// ErrMentorNotFound возвращается, когда ментор не найден
	ErrMentorNotFound = errors.New("scheduleservice client: mentor not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("scheduleservice client: slot not found")

	// ErrSlotTaken возвращается, когда слот уже забронирован другим студентом
	ErrSlotTaken = errors.New("scheduleservice client: slot already taken")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")
)
