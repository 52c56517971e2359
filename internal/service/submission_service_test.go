package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeSessionStore keeps sessions in memory so the coordinator's
// load-mutate-save cycle is observable.
type fakeSessionStore struct {
	sessions map[string]*models.AssessmentSession
	nextID   int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.AssessmentSession), nextID: 1}
}

func (f *fakeSessionStore) Create(_ context.Context, s *models.AssessmentSession) error {
	s.ID = time.Now().Format("20060102") + string(rune('a'+f.nextID))
	f.nextID++
	copied := *s
	f.sessions[s.ID] = &copied
	return nil
}

func (f *fakeSessionStore) FindByID(_ context.Context, id string) (*models.AssessmentSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("session not found")
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionStore) Save(_ context.Context, s *models.AssessmentSession) error {
	copied := *s
	f.sessions[s.ID] = &copied
	return nil
}

type fakeResultStore struct {
	stored []*models.StoredResult
}

func (f *fakeResultStore) Create(_ context.Context, r *models.StoredResult) error {
	f.stored = append(f.stored, r)
	return nil
}

func (f *fakeResultStore) FindBySession(_ context.Context, sessionID string) (*models.StoredResult, error) {
	for i := len(f.stored) - 1; i >= 0; i-- {
		if f.stored[i].SessionID == sessionID {
			return f.stored[i], nil
		}
	}
	return nil, nil
}

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Submit(ctx context.Context, record *models.SubmissionRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) Publish(eventType string, payload any) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}

func completedAnswers() models.AnswerSet {
	return models.AnswerSet{
		catalog.QGender:            models.LabelAnswer("Male"),
		catalog.QAge:               models.NumberAnswer(30),
		catalog.QHeight:            models.NumberAnswer(170),
		catalog.QWeight:            models.NumberAnswer(70),
		catalog.QSleepHours:        models.NumberAnswer(8),
		catalog.QActivityDays:      models.LabelAnswer("5+ days"),
		catalog.QNutritionServings: models.LabelAnswer("5+ servings"),
		catalog.QSmoking:           models.LabelAnswer("Never"),
		catalog.QStress:            models.LabelAnswer("Low"),
		catalog.QConditions:        models.LabelAnswer("None"),
		catalog.QWater:             models.LabelAnswer("2-3 liters"),
		catalog.QFastFood:          models.LabelAnswer("Rarely or never"),
		catalog.QCoffee:            models.LabelAnswer("1 cup"),
		catalog.QEnergyDrinks:      models.LabelAnswer("Never"),
	}
}

func submittingSession(store *fakeSessionStore, language string, answers models.AnswerSet) *models.AssessmentSession {
	session := &models.AssessmentSession{
		Phase:      models.PhaseSubmitting,
		Language:   language,
		Theme:      models.ThemeLight,
		UserName:   "tester",
		Answers:    answers,
		StartTime:  time.Now().Add(-3 * time.Minute),
		Submission: models.SubmissionIdle,
	}
	_ = store.Create(context.Background(), session)
	return session
}

func TestSubmitSuccess(t *testing.T) {
	store := newFakeSessionStore()
	results := &fakeResultStore{}
	transport := new(MockTransport)
	events := new(MockEventSink)
	session := submittingSession(store, models.LanguageEnglish, completedAnswers())

	transport.On("Submit", mock.Anything, mock.AnythingOfType("*models.SubmissionRecord")).Return(int64(77), nil).Once()
	events.On("Publish", "assessment.completed", mock.Anything).Return(nil).Once()

	svc := NewSubmissionService(store, results, transport, nil, events)
	outcome, err := svc.Submit(context.Background(), SubmitInput{
		SessionID: session.ID,
		Device:    models.DeviceInfo{Name: "linux", IP: "N/A", UserAgent: "ua"},
		Timezone:  "Asia/Amman",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionSuccess, outcome.Status)
	assert.Equal(t, int64(77), outcome.AssessmentID)
	assert.Equal(t, 100, outcome.Score.Score)
	assert.Equal(t, 24.22, outcome.Score.BMI)
	assert.Empty(t, outcome.Error)

	saved, _ := store.FindByID(context.Background(), session.ID)
	assert.Equal(t, models.PhaseResultsShown, saved.Phase)
	assert.Equal(t, models.SubmissionSuccess, saved.Submission)

	assert.Len(t, results.stored, 1)
	assert.Equal(t, models.SubmissionSuccess, results.stored[0].Status)

	transport.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestSubmitFailureKeepsLocalResultVisible(t *testing.T) {
	store := newFakeSessionStore()
	results := &fakeResultStore{}
	transport := new(MockTransport)
	events := new(MockEventSink)
	session := submittingSession(store, models.LanguageEnglish, completedAnswers())

	transport.On("Submit", mock.Anything, mock.Anything).Return(int64(0), errors.New("server error: 502 Bad Gateway")).Once()
	events.On("Publish", "assessment.submission.failed", mock.Anything).Return(nil).Once()

	svc := NewSubmissionService(store, results, transport, nil, events)
	outcome, err := svc.Submit(context.Background(), SubmitInput{SessionID: session.ID})

	// A transport failure is an outcome, not a service error.
	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionError, outcome.Status)
	assert.NotEmpty(t, outcome.Error)
	assert.Equal(t, 100, outcome.Score.Score)
	assert.NotEmpty(t, outcome.Feedback.BMI)

	saved, _ := store.FindByID(context.Background(), session.ID)
	assert.Equal(t, models.PhaseResultsShown, saved.Phase)
	assert.Equal(t, models.SubmissionError, saved.Submission)
	assert.NotEmpty(t, saved.SubmissionError)

	transport.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestSubmitRejectedWhilePending(t *testing.T) {
	store := newFakeSessionStore()
	session := submittingSession(store, models.LanguageEnglish, completedAnswers())
	session.Submission = models.SubmissionPending
	_ = store.Save(context.Background(), session)

	svc := NewSubmissionService(store, &fakeResultStore{}, new(MockTransport), nil, nil)
	_, err := svc.Submit(context.Background(), SubmitInput{SessionID: session.ID})

	assert.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestSubmitRejectedBeforeEndOfCatalog(t *testing.T) {
	store := newFakeSessionStore()
	session := submittingSession(store, models.LanguageEnglish, completedAnswers())
	session.Phase = models.PhaseAnswering
	_ = store.Save(context.Background(), session)

	svc := NewSubmissionService(store, &fakeResultStore{}, new(MockTransport), nil, nil)
	_, err := svc.Submit(context.Background(), SubmitInput{SessionID: session.ID})

	assert.ErrorIs(t, err, ErrNotReadyToSubmit)
}

func TestSubmitTranslatesArabicAnswers(t *testing.T) {
	store := newFakeSessionStore()
	answers := completedAnswers()
	answers[catalog.QGender] = models.LabelAnswer("ذكر")
	answers[catalog.QActivityDays] = models.LabelAnswer("5+ أيام")
	session := submittingSession(store, models.LanguageArabic, answers)

	transport := new(MockTransport)
	var sent *models.SubmissionRecord
	transport.On("Submit", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(*models.SubmissionRecord)
	}).Return(int64(5), nil).Once()

	svc := NewSubmissionService(store, &fakeResultStore{}, transport, nil, nil)
	_, err := svc.Submit(context.Background(), SubmitInput{SessionID: session.ID})
	assert.NoError(t, err)

	gender, _ := sent.Answers.Label(catalog.QGender)
	activity, _ := sent.Answers.Label(catalog.QActivityDays)
	assert.Equal(t, "Male", gender)
	assert.Equal(t, "5+ days", activity)
	assert.Equal(t, models.LanguageArabic, sent.TestInfo.Language)

	// The session's own answer set keeps the original labels.
	saved, _ := store.FindByID(context.Background(), session.ID)
	original, _ := saved.Answers.Label(catalog.QGender)
	assert.Equal(t, "ذكر", original)
}

func TestResultRecomputesAfterSubmission(t *testing.T) {
	store := newFakeSessionStore()
	session := submittingSession(store, models.LanguageEnglish, completedAnswers())
	session.Phase = models.PhaseResultsShown
	session.Submission = models.SubmissionError
	session.SubmissionError = "timeout"
	_ = store.Save(context.Background(), session)

	svc := NewSubmissionService(store, &fakeResultStore{}, new(MockTransport), nil, nil)
	outcome, err := svc.Result(context.Background(), session.ID)

	assert.NoError(t, err)
	assert.Equal(t, 100, outcome.Score.Score)
	assert.Equal(t, models.SubmissionError, outcome.Status)
	assert.Equal(t, "timeout", outcome.Error)
}

func TestResultUnavailableBeforeCompletion(t *testing.T) {
	store := newFakeSessionStore()
	session := submittingSession(store, models.LanguageEnglish, completedAnswers())
	session.Phase = models.PhaseAnswering
	_ = store.Save(context.Background(), session)

	svc := NewSubmissionService(store, &fakeResultStore{}, new(MockTransport), nil, nil)
	_, err := svc.Result(context.Background(), session.ID)
	assert.Error(t, err)
}
