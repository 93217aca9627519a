package book_slot

import "errors"

var (
	// ErrUnauthenticated возвращается, когда текущий пользователь не аутентифицирован
	ErrUnauthenticated = errors.New("book_slot: user is not authenticated")

	// ErrBookingInProgress возвращается, когда у студента уже есть бронирование в процессе
	ErrBookingInProgress = errors.New("book_slot: another booking is already in progress")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotTaken возвращается, когда слот уже забронирован другим студентом
	ErrSlotTaken = errors.New("book_slot: slot is already taken")

	// ErrBookingFailed возвращается, когда атомарная процедура бронирования
	// вернула неуспех без уточнения причины
	ErrBookingFailed = errors.New("book_slot: booking procedure failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
