package book_slot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mentorgig/session-service/internal/integrations/authservice"
	"github.com/mentorgig/session-service/internal/integrations/mailservice"
	"github.com/mentorgig/session-service/internal/integrations/profileservice"
	"github.com/mentorgig/session-service/internal/integrations/scheduleservice"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeAuthClient struct {
	principal *authservice.Principal
	err       error
}

func (f *fakeAuthClient) ResolveUser(context.Context, string) (*authservice.Principal, error) {
	return f.principal, f.err
}

type fakeScheduleClient struct {
	slot    *scheduleservice.Slot
	getErr  error
	success bool
	bookErr error

	bookCalls    int
	gotStudentID string

	// для теста конкурентных попыток: BookSlot сигналит о старте
	// и ждёт разрешения продолжить
	bookStarted chan struct{}
	bookProceed chan struct{}
}

func (f *fakeScheduleClient) GetSlot(context.Context, string) (*scheduleservice.Slot, error) {
	return f.slot, f.getErr
}

func (f *fakeScheduleClient) BookSlot(_ context.Context, slotID, studentID, mentorID string) (bool, error) {
	f.bookCalls++
	f.gotStudentID = studentID
	if f.bookStarted != nil {
		f.bookStarted <- struct{}{}
		<-f.bookProceed
	}
	return f.success, f.bookErr
}

type fakeProfileClient struct {
	student    *profileservice.Profile
	mentor     *profileservice.Profile
	studentErr error
	mentorErr  error
}

func (f *fakeProfileClient) GetStudentProfile(context.Context, string) (*profileservice.Profile, error) {
	return f.student, f.studentErr
}

func (f *fakeProfileClient) GetMentorProfile(context.Context, string) (*profileservice.Profile, error) {
	return f.mentor, f.mentorErr
}

type fakeMailClient struct {
	err   error
	calls int
	got   *mailservice.ConfirmationRequest
}

func (f *fakeMailClient) SendBookingConfirmation(_ context.Context, req *mailservice.ConfirmationRequest) error {
	f.calls++
	f.got = req
	return f.err
}

// fakeGuard повторяет семантику Redis-сторожа: не больше одной
// отметки на студента одновременно
type fakeGuard struct {
	mu       sync.Mutex
	inflight map[string]string

	acquireErr   error
	releaseCalls int
}

func newFakeGuard() *fakeGuard {
	return &fakeGuard{inflight: make(map[string]string)}
}

func (f *fakeGuard) Acquire(_ context.Context, studentID, slotID string) (bool, error) {
	if f.acquireErr != nil {
		return false, f.acquireErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.inflight[studentID]; busy {
		return false, nil
	}
	f.inflight[studentID] = slotID
	return true, nil
}

func (f *fakeGuard) Release(_ context.Context, studentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inflight, studentID)
	f.releaseCalls++
	return nil
}

var (
	testNow       = time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)
	slotStart     = time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	testPrincipal = &authservice.Principal{ID: "student-1", Email: "student@example.com"}
)

type fixture struct {
	auth     *fakeAuthClient
	schedule *fakeScheduleClient
	profiles *fakeProfileClient
	mail     *fakeMailClient
	guard    *fakeGuard
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		auth: &fakeAuthClient{principal: testPrincipal},
		schedule: &fakeScheduleClient{
			slot: &scheduleservice.Slot{
				ID:        "s1",
				MentorID:  "m1",
				StartTime: slotStart,
				EndTime:   slotStart.Add(time.Hour),
			},
			success: true,
		},
		profiles: &fakeProfileClient{
			student: &profileservice.Profile{Email: "student@example.com", FullName: "Sam Student"},
			mentor:  &profileservice.Profile{Email: "mentor@example.com", FullName: "Mia Mentor"},
		},
		mail:  &fakeMailClient{},
		guard: newFakeGuard(),
	}
	f.uc = NewUseCase(f.auth, f.schedule, f.profiles, f.mail, f.guard, testLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: testNow}
	return f
}

func validRequest() *Request {
	return &Request{
		Token:    "token-1",
		SlotID:   "s1",
		MentorID: "m1",
		GigTitle: "Go Mentoring",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Equal(t, "s1", resp.SlotID)
	require.Equal(t, "student-1", resp.StudentID)
	require.Equal(t, slotStart, resp.StartTime)
	require.True(t, resp.EmailSent)
	require.NotEmpty(t, resp.Reference)
	require.Equal(t, testNow, resp.BookedAt)

	require.Equal(t, 1, f.schedule.bookCalls)
	require.Equal(t, "student-1", f.schedule.gotStudentID)
	require.Equal(t, 1, f.mail.calls)
	require.Equal(t, "Go Mentoring", f.mail.got.GigTitle)
	require.Equal(t, "mentor@example.com", f.mail.got.MentorEmail)
	require.Equal(t, 1, f.guard.releaseCalls)
}

func TestExecute_Unauthenticated_NeverCallsBookingProcedure(t *testing.T) {
	f := newFixture()
	f.auth.principal = nil
	f.auth.err = authservice.ErrUnauthenticated

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Zero(t, f.schedule.bookCalls)
	require.Zero(t, f.mail.calls)
}

func TestExecute_MailFailure_StillCompletesOnce(t *testing.T) {
	f := newFixture()
	f.mail.err = mailservice.ErrSendFailed

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.False(t, resp.EmailSent)
	require.Equal(t, 1, f.schedule.bookCalls)
	require.Equal(t, 1, f.mail.calls)
}

func TestExecute_ProfileFailure_AfterCommitIsNotFatal(t *testing.T) {
	f := newFixture()
	f.profiles.mentorErr = profileservice.ErrProfileNotFound

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.False(t, resp.EmailSent)
	require.Zero(t, f.mail.calls)
}

func TestExecute_BookingProcedureFalsyResult(t *testing.T) {
	f := newFixture()
	f.schedule.success = false

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrBookingFailed)
	require.Zero(t, f.mail.calls)
	require.Equal(t, 1, f.guard.releaseCalls)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture()
	f.schedule.success = false
	f.schedule.bookErr = scheduleservice.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotTaken)
	require.Equal(t, 1, f.guard.releaseCalls)
}

func TestExecute_SlotBelongsToAnotherMentor(t *testing.T) {
	f := newFixture()
	f.schedule.slot.MentorID = "m2"

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInvalidInput)
	require.Zero(t, f.schedule.bookCalls)
}

func TestExecute_ValidationFailure(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.SlotID = ""

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
	require.Zero(t, f.schedule.bookCalls)
	require.Zero(t, f.guard.releaseCalls)
}

func TestExecute_GuardFailure(t *testing.T) {
	f := newFixture()
	f.guard.acquireErr = errors.New("redis down")

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
	require.Zero(t, f.schedule.bookCalls)
}

func TestExecute_ConcurrentAttemptRejected(t *testing.T) {
	f := newFixture()
	f.schedule.bookStarted = make(chan struct{})
	f.schedule.bookProceed = make(chan struct{})

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.uc.Execute(context.Background(), validRequest())
		firstDone <- err
	}()

	// Дожидаемся, пока первая попытка дойдёт до атомарной процедуры
	<-f.schedule.bookStarted

	// Вторая попытка того же студента отклоняется, пока первая в полёте
	second := validRequest()
	second.SlotID = "s2"
	_, err := f.uc.Execute(context.Background(), second)
	require.ErrorIs(t, err, ErrBookingInProgress)

	// Первая попытка завершается успешно
	close(f.schedule.bookProceed)
	require.NoError(t, <-firstDone)
	require.Equal(t, 1, f.schedule.bookCalls)
}
