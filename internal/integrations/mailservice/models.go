package mailservice

import "time"

// ConfirmationRequest данные для писем-подтверждений обеим сторонам
type ConfirmationRequest struct {
	StudentEmail string
	StudentName  string
	MentorEmail  string
	MentorName   string
	GigTitle     string
	StartTime    time.Time
	EndTime      time.Time
}
