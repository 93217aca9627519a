package get_mentor_slots

import (
	"context"

	getMentorSlots "github.com/mentorgig/session-service/internal/usecase/get_mentor_slots"
)

type GetMentorSlotsUseCase interface {
	Execute(ctx context.Context, req *getMentorSlots.Request) (*getMentorSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
