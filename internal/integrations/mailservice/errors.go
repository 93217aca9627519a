package mailservice

import "errors"

var (
	// ErrSendFailed возвращается, когда письмо не удалось отправить
	ErrSendFailed = errors.New("mailservice client: failed to send email")
)
