package mailservice

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sender интерфейс отправки письма, за которым скрыт SendGrid.
// Позволяет подменить транспорт в тестах
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Client клиент отправки писем-подтверждений через SendGrid.
// Доставка писем по контракту best-effort: ошибки здесь логируются
// вызывающей стороной и не влияют на результат бронирования
type Client struct {
	sender    Sender
	fromEmail string
	fromName  string
	log       Logger
}

// NewClient создает новый экземпляр клиента отправки писем
func NewClient(apiKey, fromEmail, fromName string, log Logger) *Client {
	return &Client{
		sender:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		log:       log,
	}
}

// NewClientWithSender создает клиент с подменённым транспортом (для тестов)
func NewClientWithSender(sender Sender, fromEmail, fromName string, log Logger) *Client {
	return &Client{
		sender:    sender,
		fromEmail: fromEmail,
		fromName:  fromName,
		log:       log,
	}
}

// SendBookingConfirmation отправляет письма-подтверждения обеим сторонам
// бронирования. Возвращает ошибку, если не удалось отправить хотя бы одно
func (c *Client) SendBookingConfirmation(ctx context.Context, req *ConfirmationRequest) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)

	studentMsg := mail.NewSingleEmail(
		from,
		fmt.Sprintf("Session confirmed: %s", req.GigTitle),
		mail.NewEmail(req.StudentName, req.StudentEmail),
		studentBody(req),
		"",
	)

	mentorMsg := mail.NewSingleEmail(
		from,
		fmt.Sprintf("New session booked: %s", req.GigTitle),
		mail.NewEmail(req.MentorName, req.MentorEmail),
		mentorBody(req),
		"",
	)

	if err := c.send(ctx, studentMsg); err != nil {
		return fmt.Errorf("%w: student email to %s: %v", ErrSendFailed, req.StudentEmail, err)
	}

	if err := c.send(ctx, mentorMsg); err != nil {
		return fmt.Errorf("%w: mentor email to %s: %v", ErrSendFailed, req.MentorEmail, err)
	}

	c.log.Info("SendBookingConfirmation: emails dispatched to %s and %s", req.StudentEmail, req.MentorEmail)
	return nil
}

func (c *Client) send(ctx context.Context, msg *mail.SGMailV3) error {
	resp, err := c.sender.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func studentBody(req *ConfirmationRequest) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour session %q with %s is confirmed.\n\nStarts: %s\nEnds:   %s\n\nSee you there!",
		req.StudentName, req.GigTitle, req.MentorName,
		req.StartTime.Format(timeLayout), req.EndTime.Format(timeLayout),
	)
}

func mentorBody(req *ConfirmationRequest) string {
	return fmt.Sprintf(
		"Hi %s,\n\n%s booked your session %q.\n\nStarts: %s\nEnds:   %s",
		req.MentorName, req.StudentName, req.GigTitle,
		req.StartTime.Format(timeLayout), req.EndTime.Format(timeLayout),
	)
}

const timeLayout = "Mon, 02 Jan 2006 15:04 MST"
