package handlers

import (
	"context"
	"errors"
	"net/http"

	"assessment-service/internal/flow"
	"assessment-service/internal/models"
	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Sessions    *service.SessionService
	Submissions *service.SubmissionService
	Prefs       *service.PreferenceService
}

func NewSessionHandler(sessions *service.SessionService, submissions *service.SubmissionService, prefs *service.PreferenceService) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Submissions: submissions, Prefs: prefs}
}

// CreateSession opens a session in the consent phase. Language and theme
// default to the persisted preference flags when the request omits them.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
		Theme    string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Language == "" || req.Theme == "" {
		prefs, err := h.Prefs.Snapshot(context.Background())
		if err == nil {
			if req.Language == "" {
				req.Language = prefs.Language()
			}
			if req.Theme == "" {
				req.Theme = prefs.Theme()
			}
		}
	}
	if req.Language != models.LanguageArabic {
		req.Language = models.LanguageEnglish
	}
	if req.Theme != models.ThemeDark {
		req.Theme = models.ThemeLight
	}

	session, err := h.Sessions.CreateSession(context.Background(), req.Language, req.Theme)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.GetSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// Consent records the privacy decision. Declining keeps the session in
// place and returns the bilingual refusal message.
func (h *SessionHandler) Consent(c *gin.Context) {
	var req struct {
		Accept bool `json:"accept"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Accept {
		session, err := h.Sessions.GetSession(context.Background(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"accepted": false,
			"message":  service.ConsentDeclinedMessage(session.Language),
		})
		return
	}

	session, err := h.Sessions.AcceptConsent(context.Background(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// Start leaves the welcome screen; the user name is optional.
func (h *SessionHandler) Start(c *gin.Context) {
	var req struct {
		UserName string `json:"user_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Sessions.Begin(context.Background(), c.Param("id"), req.UserName)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// Answer stores one answer. The value may be a string label or a number;
// models.Answer decodes either form.
func (h *SessionHandler) Answer(c *gin.Context) {
	var req struct {
		QuestionID string        `json:"question_id" binding:"required"`
		Answer     models.Answer `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer format", "details": err.Error()})
		return
	}

	session, err := h.Sessions.RecordAnswer(context.Background(), c.Param("id"), req.QuestionID, req.Answer)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// Advance moves to the next question, or into the submitting phase after
// the last one. Validation failures return 422 with the failing question.
func (h *SessionHandler) Advance(c *gin.Context) {
	session, err := h.Sessions.Advance(context.Background(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

func (h *SessionHandler) Retreat(c *gin.Context) {
	session, err := h.Sessions.Retreat(context.Background(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

func (h *SessionHandler) Restart(c *gin.Context) {
	session, err := h.Sessions.Restart(context.Background(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// Submit hands the completed session to the submission coordinator. The
// response is 200 with the outcome whether the upstream call succeeded or
// not; its status field says which.
func (h *SessionHandler) Submit(c *gin.Context) {
	var req struct {
		DeviceName string   `json:"device_name"`
		Latitude   *float64 `json:"latitude"`
		Longitude  *float64 `json:"longitude"`
		Timezone   string   `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.Submissions.Submit(context.Background(), service.SubmitInput{
		SessionID: c.Param("id"),
		Device: models.DeviceInfo{
			Name:      req.DeviceName,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		},
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *SessionHandler) Result(c *gin.Context) {
	outcome, err := h.Submissions.Result(context.Background(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

type sessionView struct {
	Session  *models.AssessmentSession `json:"session"`
	Question *models.LocalizedQuestion `json:"question,omitempty"`
	Progress gin.H                     `json:"progress"`
}

func (h *SessionHandler) sessionView(session *models.AssessmentSession) sessionView {
	return sessionView{
		Session:  session,
		Question: h.Sessions.CurrentQuestion(session),
		Progress: gin.H{
			"index": session.CurrentIndex,
			"total": h.Sessions.Machine.Len(),
		},
	}
}

func (h *SessionHandler) writeError(c *gin.Context, err error) {
	var vErr *flow.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       vErr.Reason,
			"question_id": vErr.QuestionID,
		})
		return
	}
	var pErr *flow.PhaseError
	if errors.As(err, &pErr) {
		c.JSON(http.StatusConflict, gin.H{"error": pErr.Error()})
		return
	}
	if errors.Is(err, service.ErrSubmissionInFlight) || errors.Is(err, service.ErrNotReadyToSubmit) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
