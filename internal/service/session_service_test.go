package service

import (
	"context"
	"errors"
	"testing"

	"assessment-service/internal/catalog"
	"assessment-service/internal/flow"
	"assessment-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSessionService(events EventSink) (*SessionService, *fakeSessionStore) {
	store := newFakeSessionStore()
	return NewSessionService(store, flow.NewMachine(catalog.Questions()), events), store
}

func TestSessionLifecycle(t *testing.T) {
	events := new(MockEventSink)
	events.On("Publish", "assessment.session.started", mock.Anything).Return(nil).Once()
	svc, _ := newSessionService(events)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, models.LanguageArabic, models.ThemeDark)
	assert.NoError(t, err)
	assert.Equal(t, models.PhaseAwaitingConsent, session.Phase)
	assert.NotEmpty(t, session.SessionToken)
	assert.True(t, session.StartTime.IsZero())

	session, err = svc.AcceptConsent(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PhaseWelcome, session.Phase)
	assert.False(t, session.StartTime.IsZero())

	session, err = svc.Begin(ctx, session.ID, "Samir")
	assert.NoError(t, err)
	assert.Equal(t, models.PhaseAnswering, session.Phase)
	assert.Equal(t, "Samir", session.UserName)

	q := svc.CurrentQuestion(session)
	if assert.NotNil(t, q) {
		assert.Equal(t, catalog.QGender, q.ID)
		// Session is Arabic, so the localized view must be too.
		assert.Equal(t, "ما هو جنسك؟", q.Text)
		assert.Contains(t, q.Options, "ذكر")
	}

	events.AssertExpectations(t)
}

func TestAdvanceSurfacesValidationError(t *testing.T) {
	svc, _ := newSessionService(nil)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, models.LanguageEnglish, models.ThemeLight)
	session, _ = svc.AcceptConsent(ctx, session.ID)
	session, _ = svc.Begin(ctx, session.ID, "")

	_, err := svc.Advance(ctx, session.ID)
	var vErr *flow.ValidationError
	assert.True(t, errors.As(err, &vErr))

	// The failed advance must not be persisted.
	reloaded, _ := svc.GetSession(ctx, session.ID)
	assert.Equal(t, 0, reloaded.CurrentIndex)

	_, err = svc.RecordAnswer(ctx, session.ID, catalog.QGender, models.LabelAnswer("Female"))
	assert.NoError(t, err)
	advanced, err := svc.Advance(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, advanced.CurrentIndex)
}

func TestRetreatPersistsAndKeepsAnswers(t *testing.T) {
	svc, _ := newSessionService(nil)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, models.LanguageEnglish, models.ThemeLight)
	session, _ = svc.AcceptConsent(ctx, session.ID)
	session, _ = svc.Begin(ctx, session.ID, "")
	_, _ = svc.RecordAnswer(ctx, session.ID, catalog.QGender, models.LabelAnswer("Male"))
	_, _ = svc.Advance(ctx, session.ID)

	session, err := svc.Retreat(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, session.CurrentIndex)
	label, _ := session.Answers.Label(catalog.QGender)
	assert.Equal(t, "Male", label)
}

func TestRestartProducesFreshSession(t *testing.T) {
	svc, store := newSessionService(nil)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, models.LanguageEnglish, models.ThemeLight)
	session, _ = svc.AcceptConsent(ctx, session.ID)
	session, _ = svc.Begin(ctx, session.ID, "tester")
	_, _ = svc.RecordAnswer(ctx, session.ID, catalog.QGender, models.LabelAnswer("Male"))
	_, _ = svc.Advance(ctx, session.ID)

	// Simulate a finished, failed submission.
	stored, _ := store.FindByID(ctx, session.ID)
	stored.Phase = models.PhaseResultsShown
	stored.Submission = models.SubmissionError
	stored.SubmissionError = "boom"
	_ = store.Save(ctx, stored)

	session, err := svc.Restart(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PhaseWelcome, session.Phase)
	assert.Empty(t, session.Answers)
	assert.Equal(t, models.SubmissionIdle, session.Submission)
	assert.Empty(t, session.SubmissionError)
	assert.False(t, session.StartTime.IsZero())
	assert.True(t, session.EndTime.IsZero())
}

func TestConsentDeclinedMessageBilingual(t *testing.T) {
	assert.Equal(t, "Sorry, you must accept the privacy policy to continue.",
		ConsentDeclinedMessage(models.LanguageEnglish))
	assert.Equal(t, "عذراً، يجب الموافقة على سياسة الخصوصية للمتابعة.",
		ConsentDeclinedMessage(models.LanguageArabic))
}
