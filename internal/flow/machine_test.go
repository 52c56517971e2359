package flow

import (
	"errors"
	"testing"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

func newAnsweringSession(t *testing.T, m *Machine) *models.AssessmentSession {
	t.Helper()
	s := &models.AssessmentSession{
		Phase:      models.PhaseAwaitingConsent,
		Answers:    make(models.AnswerSet),
		Submission: models.SubmissionIdle,
	}
	if err := m.AcceptConsent(s); err != nil {
		t.Fatalf("AcceptConsent: %v", err)
	}
	if err := m.Begin(s, "tester"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	return s
}

func TestPhaseProgression(t *testing.T) {
	m := NewMachine(catalog.Questions())
	s := &models.AssessmentSession{Phase: models.PhaseAwaitingConsent}

	if err := m.Begin(s, "x"); err == nil {
		t.Error("Begin before consent should fail")
	}
	if err := m.AcceptConsent(s); err != nil {
		t.Fatalf("AcceptConsent: %v", err)
	}
	if err := m.AcceptConsent(s); err == nil {
		t.Error("second AcceptConsent should fail")
	}
	if err := m.Begin(s, "tester"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if s.Phase != models.PhaseAnswering || s.CurrentIndex != 0 {
		t.Errorf("expected answering at index 0, got %s/%d", s.Phase, s.CurrentIndex)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	m := NewMachine(catalog.Questions())
	s := newAnsweringSession(t, m)

	err := m.Advance(s)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Reason != ReasonRequired {
		t.Errorf("expected required reason, got %q", vErr.Reason)
	}
	if s.CurrentIndex != 0 {
		t.Errorf("index must not move on validation failure, got %d", s.CurrentIndex)
	}

	// A blank label does not count as an answer.
	if err := m.Record(s, catalog.QGender, models.LabelAnswer("  ")); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := m.Advance(s); !errors.As(err, &vErr) || vErr.Reason != ReasonRequired {
		t.Errorf("blank answer should still fail required check, got %v", err)
	}

	if err := m.Record(s, catalog.QGender, models.LabelAnswer("Male")); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := m.Advance(s); err != nil {
		t.Fatalf("Advance after answering: %v", err)
	}
	if s.CurrentIndex != 1 {
		t.Errorf("expected index 1, got %d", s.CurrentIndex)
	}
}

func TestRequiredCheckedBeforeValidator(t *testing.T) {
	m := NewMachine(catalog.Questions())
	s := newAnsweringSession(t, m)

	// Move to the age question, which has a numeric validator.
	if err := m.Record(s, catalog.QGender, models.LabelAnswer("Female")); err != nil {
		t.Fatal(err)
	}
	if err := m.Advance(s); err != nil {
		t.Fatal(err)
	}

	var vErr *ValidationError
	if err := m.Advance(s); !errors.As(err, &vErr) || vErr.Reason != ReasonRequired {
		t.Errorf("unanswered question must report required, not validator, got %v", err)
	}

	if err := m.Record(s, catalog.QAge, models.NumberAnswer(7)); err != nil {
		t.Fatal(err)
	}
	if err := m.Advance(s); !errors.As(err, &vErr) || vErr.Reason != ReasonInvalidValue {
		t.Errorf("out-of-range age must report the validator failure, got %v", err)
	}
	if s.CurrentIndex != 1 {
		t.Errorf("index must not move, got %d", s.CurrentIndex)
	}

	if err := m.Record(s, catalog.QAge, models.NumberAnswer(30)); err != nil {
		t.Fatal(err)
	}
	if err := m.Advance(s); err != nil {
		t.Fatalf("valid age should advance: %v", err)
	}
}

func TestRetreatNoOpAtZeroAndKeepsAnswers(t *testing.T) {
	m := NewMachine(catalog.Questions())
	s := newAnsweringSession(t, m)

	if err := m.Retreat(s); err != nil {
		t.Fatalf("Retreat at 0: %v", err)
	}
	if s.CurrentIndex != 0 {
		t.Errorf("retreat at index 0 must not move, got %d", s.CurrentIndex)
	}

	if err := m.Record(s, catalog.QGender, models.LabelAnswer("Male")); err != nil {
		t.Fatal(err)
	}
	if err := m.Advance(s); err != nil {
		t.Fatal(err)
	}
	if err := m.Retreat(s); err != nil {
		t.Fatal(err)
	}
	if s.CurrentIndex != 0 {
		t.Errorf("expected index back at 0, got %d", s.CurrentIndex)
	}
	if _, ok := s.Answers[catalog.QGender]; !ok {
		t.Error("retreat must not clear stored answers")
	}
}

func answerEverything(t *testing.T, m *Machine, s *models.AssessmentSession) {
	t.Helper()
	full := models.AnswerSet{
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
	for i := 0; i < catalog.Count(); i++ {
		q := m.Current(s)
		if q == nil {
			t.Fatalf("no current question at step %d", i)
		}
		if err := m.Record(s, q.ID, full[q.ID]); err != nil {
			t.Fatalf("Record %s: %v", q.ID, err)
		}
		if err := m.Advance(s); err != nil {
			t.Fatalf("Advance past %s: %v", q.ID, err)
		}
	}
}

func TestAdvancePastLastQuestionEntersSubmitting(t *testing.T) {
	m := NewMachine(catalog.Questions())
	s := newAnsweringSession(t, m)

	answerEverything(t, m, s)

	if s.Phase != models.PhaseSubmitting {
		t.Errorf("expected submitting phase, got %s", s.Phase)
	}
	// Index stays within the catalog bounds after the handoff.
	if s.CurrentIndex < 0 || s.CurrentIndex >= catalog.Count() {
		t.Errorf("index %d outside catalog bounds", s.CurrentIndex)
	}
	if err := m.Advance(s); err == nil {
		t.Error("advance while submitting should fail")
	}
}

func TestRestartClearsEverything(t *testing.T) {
	m := NewMachine(catalog.Questions())
	s := newAnsweringSession(t, m)
	answerEverything(t, m, s)

	s.Submission = models.SubmissionError
	s.SubmissionError = "upstream down"
	s.AssessmentID = 42

	m.Restart(s)

	if s.Phase != models.PhaseWelcome {
		t.Errorf("expected welcome phase, got %s", s.Phase)
	}
	if len(s.Answers) != 0 {
		t.Errorf("expected cleared answers, got %d entries", len(s.Answers))
	}
	if s.CurrentIndex != 0 || s.Submission != models.SubmissionIdle ||
		s.SubmissionError != "" || s.AssessmentID != 0 {
		t.Error("restart must reset index and submission outcome")
	}

	// A restarted session behaves like a fresh one.
	if err := m.Begin(s, "again"); err != nil {
		t.Fatalf("Begin after restart: %v", err)
	}
	var vErr *ValidationError
	if err := m.Advance(s); !errors.As(err, &vErr) {
		t.Errorf("fresh session must demand an answer at index 0, got %v", err)
	}
}

func TestRecordRejectsUnknownQuestion(t *testing.T) {
	m := NewMachine(catalog.Questions())
	s := newAnsweringSession(t, m)

	if err := m.Record(s, "nonsense", models.LabelAnswer("x")); err == nil {
		t.Error("recording an unknown question ID should fail")
	}
}
